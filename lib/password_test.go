package lib

import (
	"paintvault_server/structs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testArgonParams = structs.ArgonParams{
	Memory:  64 * 1024,
	Time:    1,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

func TestHashAndVerifyPassword(t *testing.T) {
	salt := []byte("0123456789abcdef")
	encoded := HashPassword("correct horse battery staple", salt, testArgonParams)

	ok, err := VerifyPassword("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeArgon2Hash(t *testing.T) {
	salt := []byte("0123456789abcdef")
	encoded := HashPassword("secret", salt, testArgonParams)

	parts, err := DecodeArgon2Hash(encoded)
	require.NoError(t, err)
	assert.Equal(t, testArgonParams.Memory, parts.Memory)
	assert.Equal(t, testArgonParams.Time, parts.Time)
	assert.Equal(t, testArgonParams.Threads, parts.Threads)
	assert.Equal(t, salt, parts.Salt)
	assert.Len(t, parts.Hash, int(testArgonParams.KeyLen))
}

func TestDecodeArgon2HashRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not a hash", input: "hunter2"},
		{name: "wrong algorithm", input: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "too few parts", input: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeArgon2Hash(tt.input)
			assert.Error(t, err)
		})
	}
}
