package crypto

import (
	"testing"
)

func TestEncryptDecryptToken(t *testing.T) {
	testCases := []struct {
		name      string
		plaintext string
		secret    string
	}{
		{
			name:      "Valid decryption",
			plaintext: "mysecrettoken",
			secret:    "1234567890abcdef",
		},
		{
			name:      "Empty plaintext",
			plaintext: "",
			secret:    "emptysecret",
		},
		{
			name:      "Long plaintext",
			plaintext: "this is a much longer plaintext to test the block cipher across several blocks",
			secret:    "longsecret",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encrypted, err := EncryptToken(tc.plaintext, tc.secret)
			if err != nil {
				t.Fatalf("EncryptToken failed: %v", err)
			}

			decrypted, err := DecryptToken(encrypted, tc.secret)
			if err != nil {
				t.Fatalf("DecryptToken failed: %v", err)
			}
			if decrypted != tc.plaintext {
				t.Errorf("Decrypted text mismatch. Expected: %q, Got: %q", tc.plaintext, decrypted)
			}
		})
	}
}

func TestEncryptTokenUsesFreshNonce(t *testing.T) {
	a, err := EncryptToken("token", "secret")
	if err != nil {
		t.Fatalf("EncryptToken failed: %v", err)
	}
	b, err := EncryptToken("token", "secret")
	if err != nil {
		t.Fatalf("EncryptToken failed: %v", err)
	}
	if a == b {
		t.Error("Expected two encryptions of the same token to differ")
	}
}

func TestDecryptTokenErrors(t *testing.T) {
	encrypted, err := EncryptToken("mysecrettoken", "right")
	if err != nil {
		t.Fatalf("EncryptToken failed: %v", err)
	}

	testCases := []struct {
		name      string
		encrypted string
		secret    string
	}{
		{name: "Wrong secret", encrypted: encrypted, secret: "wrong"},
		{name: "Empty secret", encrypted: encrypted, secret: ""},
		{name: "Invalid base64", encrypted: "not base64!", secret: "right"},
		{name: "Too short", encrypted: "AAAA", secret: "right"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecryptToken(tc.encrypted, tc.secret); err == nil {
				t.Error("Expected an error, but got nil")
			}
		})
	}
}
