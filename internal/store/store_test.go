package store

import (
	"errors"
	"testing"
)

func TestValidateKey(t *testing.T) {
	valid := []string{
		"play.osr",
		"plays/2021/alpha.osr",
		"UPPER.OSR",
	}
	for _, key := range valid {
		if err := ValidateKey(key); err != nil {
			t.Errorf("ValidateKey(%q) = %v, want nil", key, err)
		}
	}

	invalid := []string{
		"",
		"play.osz",
		"play.osr.bak",
		"osr",
	}
	for _, key := range invalid {
		if err := ValidateKey(key); !errors.Is(err, ErrNotReplayFile) {
			t.Errorf("ValidateKey(%q) = %v, want ErrNotReplayFile", key, err)
		}
	}
}
