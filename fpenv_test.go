package illustrate

import "testing"

func TestFPEnvGuard_SetsAndRestoresMode(t *testing.T) {
	g := NewFPEnvGuard(RoundUpward)
	if CurrentRoundingMode() != RoundUpward {
		t.Fatalf("expected RoundUpward, got %v", CurrentRoundingMode())
	}
	if diag := g.Release(); diag != "" {
		t.Errorf("expected no diagnostic on clean release, got %q", diag)
	}
	if GuardDepth() != 0 {
		t.Errorf("expected depth 0 after release, got %d", GuardDepth())
	}
}

func TestFPEnvGuard_NestsWithoutDeadlock(t *testing.T) {
	outer := NewFPEnvGuard(RoundToNearest)
	if GuardDepth() != 1 {
		t.Fatalf("expected depth 1, got %d", GuardDepth())
	}
	inner := NewFPEnvGuard(RoundDownward)
	if GuardDepth() != 2 {
		t.Fatalf("expected depth 2, got %d", GuardDepth())
	}
	// The inner guard does not reassign the shared mode; only depth==0 entry does.
	if CurrentRoundingMode() != RoundToNearest {
		t.Errorf("expected outer mode to still be in effect, got %v", CurrentRoundingMode())
	}
	inner.Release()
	if GuardDepth() != 1 {
		t.Errorf("expected depth 1 after inner release, got %d", GuardDepth())
	}
	outer.Release()
	if GuardDepth() != 0 {
		t.Errorf("expected depth 0 after outer release, got %d", GuardDepth())
	}
}

func TestFPEnvGuard_ReleaseIsIdempotent(t *testing.T) {
	g := NewFPEnvGuard(RoundToNearest)
	g.Release()
	if diag := g.Release(); diag != "" {
		t.Errorf("expected a second Release to be a no-op, got diagnostic %q", diag)
	}
	if GuardDepth() != 0 {
		t.Errorf("expected depth unaffected by a redundant release, got %d", GuardDepth())
	}
}

func TestEngineScope_PropagatesFnError(t *testing.T) {
	wantErr := "boom"
	_, err := EngineScope(RoundToNearest, func() error {
		return errString(wantErr)
	})
	if err == nil || err.Error() != wantErr {
		t.Errorf("expected error %q, got %v", wantErr, err)
	}
	if GuardDepth() != 0 {
		t.Errorf("expected the guard to be released even when fn errors, got depth %d", GuardDepth())
	}
}

type errString string

func (e errString) Error() string { return string(e) }
