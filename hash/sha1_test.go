package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSHA1(t *testing.T) {
	tests := []struct {
		input    []byte
		expected string
	}{
		{
			input:    []byte("Hello, World!"),
			expected: "0a0a9f2a6772942557ab5355d76af442f8f65e01",
		},
		{
			input:    []byte(""),
			expected: "da39a3ee5e6b4b0d3255bfef95601890afd80709",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			result := ComputeSHA1(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCommitHashFraming(t *testing.T) {
	// sha1("commit 3\x00foo"), the canonical framing for commit objects
	assert.Equal(t, "bc9968d75e48de59f0870ffb71f5e160bbbdcf52", CommitHash("foo"))
	assert.Equal(t, ComputeSHA1([]byte("commit 3\x00foo")), CommitHash("foo"))
}

func TestCommitHashUsesUnframedLength(t *testing.T) {
	// The length prefix counts the object text only, never the frame.
	text := "tree abc\n"
	assert.Equal(t, ComputeSHA1([]byte("commit 9\x00"+text)), CommitHash(text))
}

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		prefix   string
		expected bool
	}{
		{"", true},
		{"0", true},
		{"deadbeef", true},
		{"0123456789abcdef", true},
		{"12g4", false},
		{"ABC", false},
		{"12 4", false},
		{"café", false},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidatePrefix(tt.prefix))
		})
	}
}

func TestValidateHash(t *testing.T) {
	tests := []struct {
		hash     string
		expected bool
	}{
		{"0a0a9f2a6772942557ab5355d76af442f8f65e01", true},
		{"invalid", false},
		{"0a0a9f2a6772942557ab5355d76af442f8f65e0", false},
		{"0a0a9f2a6772942557ab5355d76af442f8f65e011", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.hash, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateHash(tt.hash))
		})
	}
}

func TestShortHash(t *testing.T) {
	fullHash := "0a0a9f2a6772942557ab5355d76af442f8f65e01"

	assert.Equal(t, "0a0a9f2", ShortHash(fullHash, 7))
	assert.Equal(t, fullHash, ShortHash(fullHash, 40))
	assert.Equal(t, fullHash, ShortHash(fullHash, 50))
	assert.Equal(t, fullHash, ShortHash(fullHash, 0))
}
