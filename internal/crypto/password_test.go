package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_NeverEqualsPlaintext(t *testing.T) {
	h := NewPasswordHasher()

	encoded, err := h.HashPassword("super-secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, "super-secret-password", encoded)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"), "expected PHC argon2id prefix, got %q", encoded)
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h := NewPasswordHasher()

	first, err := h.HashPassword("same-password")
	require.NoError(t, err)
	second, err := h.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ by salt")
}

func TestVerifyPassword_RoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	encoded, err := h.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	ok, err := h.VerifyPassword("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	h := NewPasswordHasher()

	encoded, err := h.HashPassword("right")
	require.NoError(t, err)

	ok, err := h.VerifyPassword("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedHash_TableTest(t *testing.T) {
	h := NewPasswordHasher()

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "plaintext leftover", encoded: "password123"},
		{name: "wrong algorithm", encoded: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "missing sections", encoded: "$argon2id$v=19$m=65536,t=1,p=4"},
		{name: "bad salt base64", encoded: "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.VerifyPassword("anything", tt.encoded)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrMalformedHash)
		})
	}
}
