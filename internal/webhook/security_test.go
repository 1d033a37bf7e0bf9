package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	secret := "test-secret"
	body := []byte(`{"ref":"refs/heads/main"}`)

	t.Run("valid signature passes", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: secret})
		if err := v.ValidateSignature(body, sign(secret, body)); err != nil {
			t.Errorf("expected valid signature, got %v", err)
		}
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: secret})
		if err := v.ValidateSignature(body, sign("other-secret", body)); err == nil {
			t.Error("expected verification failure")
		}
	})

	t.Run("tampered body fails", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: secret})
		sig := sign(secret, body)
		if err := v.ValidateSignature([]byte(`{"ref":"refs/heads/evil"}`), sig); err == nil {
			t.Error("expected verification failure")
		}
	})

	t.Run("fails closed on empty secret", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: ""})
		if err := v.ValidateSignature(body, sign("", body)); err == nil {
			t.Error("expected failure with empty secret")
		}
	})

	t.Run("fails closed on empty signature", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: secret})
		if err := v.ValidateSignature(body, ""); err == nil {
			t.Error("expected failure with empty signature")
		}
	})

	t.Run("fails closed on empty body", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: secret})
		if err := v.ValidateSignature(nil, sign(secret, nil)); err == nil {
			t.Error("expected failure with empty body")
		}
	})

	t.Run("rejects missing sha256 prefix", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: secret})
		raw := sign(secret, body)[len("sha256="):]
		if err := v.ValidateSignature(body, raw); err == nil {
			t.Error("expected failure without prefix")
		}
	})

	t.Run("rejects non-hex digest without panicking", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: secret})
		if err := v.ValidateSignature(body, "sha256=not-hex-at-all"); err == nil {
			t.Error("expected failure for invalid hex")
		}
	})
}
