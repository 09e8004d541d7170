package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

func TestModerator_Mask(t *testing.T) {
	req := require.New(t)
	dictionary := []string{"badger", "snake", "damn"}
	mod, err := NewModerator(dictionary, nil, replacementChar)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and length preservation",
			input:    "The badger is here",
			expected: "The ****** is here",
			words:    []string{"badger"},
		},
		{
			name:     "Multiple occurrences reported once",
			input:    "badger badger badger",
			expected: "****** ****** ******",
			words:    []string{"badger"},
		},
		{
			name:     "Case-insensitive match",
			input:    "Well DAMN it",
			expected: "Well **** it",
			words:    []string{"damn"},
		},
		{
			name:     "Banned term inside a larger word left alone",
			input:    "the snakeskin bag",
			expected: "the snakeskin bag",
			words:    nil,
		},
		{
			name:     "Word adjacent to punctuation",
			input:    "I saw a badger!",
			expected: "I saw a ******!",
			words:    []string{"badger"},
		},
		{
			name:     "Accented text around the match (UTF-8)",
			input:    "Un été avec un badger",
			expected: "Un été avec un ******",
			words:    []string{"badger"},
		},
		{
			name:     "Nothing to mask",
			input:    "chat-pipeline is fine",
			expected: "chat-pipeline is fine",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Mask(tt.input)
			req.Equal(tt.expected, content, "input=%q", tt.input)
			req.Equal(tt.words, words)
		})
	}
}

func TestModerator_WhitelistWins(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator([]string{"damn", "hell"}, []string{"hell"}, replacementChar)
	req.NoError(err)

	content, words := mod.Mask("damn, what the hell")
	req.Equal("****, what the hell", content)
	req.Equal([]string{"damn"}, words)
}

func TestModerator_EmptyListPassesThrough(t *testing.T) {
	req := require.New(t)

	// An operator clearing the list is a normal reconfiguration, not an
	// error.
	mod, err := NewModerator([]string{" ", ""}, nil, replacementChar)
	req.NoError(err)

	content, words := mod.Mask("anything at all")
	req.Equal("anything at all", content)
	req.Nil(words)
}
