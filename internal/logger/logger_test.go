package logger

import "testing"

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]interface{}{"user", "admin", "password", "hunter2", "session_secret", "abc", "dangling"})

	expected := []interface{}{"user", "admin", "password", "[REDACTED]", "session_secret", "[REDACTED]", "dangling"}
	if len(got) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("index %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}

func TestNewSupportsBothModes(t *testing.T) {
	for _, mode := range []string{"production", "development", ""} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("mode %q: unexpected error %v", mode, err)
		}
		l.With("mode", mode).Debug("logger ready")
	}
}
