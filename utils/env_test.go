package utils

import (
	"testing"
	"time"
)

func TestEnvGettersFallBack(t *testing.T) {
	if got := GetEnvAsString("TEST_UNSET_VAR", "dflt"); got != "dflt" {
		t.Errorf("GetEnvAsString = %q, want dflt", got)
	}
	if got := GetEnvAsInt("TEST_UNSET_VAR", 42); got != 42 {
		t.Errorf("GetEnvAsInt = %d, want 42", got)
	}
	if got := GetEnvAsDuration("TEST_UNSET_VAR", time.Minute); got != time.Minute {
		t.Errorf("GetEnvAsDuration = %v, want 1m", got)
	}
}

func TestEnvGettersParse(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "7")
	t.Setenv("TEST_ENV_BAD_INT", "seven")
	t.Setenv("TEST_ENV_DURATION", "90s")
	t.Setenv("TEST_ENV_BOOL", "true")
	t.Setenv("TEST_ENV_UINT", "18446744073709551615")

	if got := GetEnvAsInt("TEST_ENV_INT", 0); got != 7 {
		t.Errorf("GetEnvAsInt = %d, want 7", got)
	}
	if got := GetEnvAsInt("TEST_ENV_BAD_INT", 3); got != 3 {
		t.Errorf("unparseable int should fall back, got %d", got)
	}
	if got := GetEnvAsDuration("TEST_ENV_DURATION", 0); got != 90*time.Second {
		t.Errorf("GetEnvAsDuration = %v, want 90s", got)
	}
	if got := GetEnvAsBool("TEST_ENV_BOOL", false); !got {
		t.Error("GetEnvAsBool = false, want true")
	}
	if got := GetEnvAsUint64("TEST_ENV_UINT", 0); got != 18446744073709551615 {
		t.Errorf("GetEnvAsUint64 = %d, want max uint64", got)
	}
}
