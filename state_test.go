package relay

import "testing"

func TestState_String_Healthy(t *testing.T) {
	if s := StateHealthy.String(); s != "healthy" {
		t.Errorf("expected 'healthy', got %q", s)
	}
}

func TestState_String_Degraded(t *testing.T) {
	if s := StateDegraded.String(); s != "degraded" {
		t.Errorf("expected 'degraded', got %q", s)
	}
}

func TestState_String_Unknown(t *testing.T) {
	unknown := State(999)
	if s := unknown.String(); s != "unknown" {
		t.Errorf("expected 'unknown', got %q", s)
	}
}

func TestState_Values(t *testing.T) {
	// Verify iota ordering
	if StateHealthy != 0 {
		t.Errorf("expected StateHealthy=0, got %d", StateHealthy)
	}
	if StateDegraded != 1 {
		t.Errorf("expected StateDegraded=1, got %d", StateDegraded)
	}
}
