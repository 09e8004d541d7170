package markdown

import (
	"testing"

	"chat-pipeline/settings"

	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	req := require.New(t)
	r := NewRenderer()
	cfg := &settings.Snapshot{
		Version: 1,
		Markdown: settings.Markdown{
			Colors:    true,
			Emoticons: true,
		},
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Bold",
			input:    "a **bold** word",
			expected: "a <strong>bold</strong> word",
		},
		{
			name:     "Italic with underscores",
			input:    "an _italic_ word",
			expected: "an <em>italic</em> word",
		},
		{
			name:     "Underscore inside identifier left alone",
			input:    "see user_name_here",
			expected: "see user_name_here",
		},
		{
			name:     "Strikethrough",
			input:    "~~gone~~",
			expected: "<del>gone</del>",
		},
		{
			name:     "Plain URL becomes a link",
			input:    "see https://example.com/a?b=1 now",
			expected: `see <a href="https://example.com/a?b=1">https://example.com/a?b=1</a> now`,
		},
		{
			name:     "Inline code is untouched by emphasis rules",
			input:    "run `a **b** c`",
			expected: "run <code>a **b** c</code>",
		},
		{
			name:     "Fenced code block with language",
			input:    "```go\nfmt.Println()\n```",
			expected: `<pre><code class="language-go">fmt.Println()` + "\n</code></pre>",
		},
		{
			name:     "Hex color chip",
			input:    "try #A1B2C3 here",
			expected: `try <span class="color" style="color:#A1B2C3">#A1B2C3</span> here`,
		},
		{
			name:     "Emoticon at token boundary",
			input:    "hello :) world",
			expected: "hello \U0001F642 world",
		},
		{
			name:     "Emoticon glued to a word left alone",
			input:    "https://example.com/x?q=:)",
			expected: `<a href="https://example.com/x?q=:)">https://example.com/x?q=:)</a>`,
		},
		{
			name:     "Newlines become breaks",
			input:    "one\ntwo",
			expected: "one<br/>two",
		},
		{
			name:     "Unbalanced markup degrades to literal text",
			input:    "broken **bold",
			expected: "broken **bold",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, r.Render(tt.input, cfg), "input=%q", tt.input)
		})
	}
}

func TestRenderer_Idempotent(t *testing.T) {
	req := require.New(t)
	r := NewRenderer()
	cfg := &settings.Snapshot{
		Version: 1,
		Markdown: settings.Markdown{
			Colors:      true,
			Emoticons:   true,
			KatexDollar: true,
		},
	}

	inputs := []string{
		"a **bold** word with https://example.com/path and #FF0000",
		"mixed _em_ and ~~del~~ and `code **x**`",
		"math $x^2 + y^2$ stays raw",
		"plain text, nothing to do",
	}
	for _, input := range inputs {
		once := r.Render(input, cfg)
		twice := r.Render(once, cfg)
		req.Equal(once, twice, "re-rendering must be a no-op for %q", input)
	}
}

func TestRenderer_KatexSpansPreserved(t *testing.T) {
	req := require.New(t)
	r := NewRenderer()
	cfg := &settings.Snapshot{
		Version: 1,
		Markdown: settings.Markdown{
			KatexDollar:      true,
			KatexParenthesis: true,
		},
	}

	// Emphasis markers inside math delimiters must survive verbatim.
	req.Equal(`$a_b **c**$`, r.Render(`$a_b **c**$`, cfg))
	req.Equal(`\(x_1 + x_2\)`, r.Render(`\(x_1 + x_2\)`, cfg))
}

func TestRenderer_CustomDomains(t *testing.T) {
	req := require.New(t)
	r := NewRenderer()
	cfg := &settings.Snapshot{
		Version: 3,
		Markdown: settings.Markdown{
			CustomDomains: []string{"wiki.corp.example"},
		},
	}

	out := r.Render("see wiki.corp.example/page now", cfg)
	req.Equal(`see <a href="https://wiki.corp.example/page">wiki.corp.example/page</a> now`, out)

	// A new snapshot version without the domain drops the pattern.
	out = r.Render("see wiki.corp.example/page now", &settings.Snapshot{Version: 4})
	req.Equal("see wiki.corp.example/page now", out)
}
