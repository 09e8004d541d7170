// Package markdown rewrites raw chat text into its rendered form.
// Rendering is a pure function of (raw text, snapshot): malformed
// markup degrades to literal text, and re-rendering rendered output
// leaves it unchanged. Escaping untrusted text is the display layer's
// job, not this package's.
package markdown

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"chat-pipeline/domain"
	"chat-pipeline/pipeline"
	"chat-pipeline/settings"
)

var (
	codeBlockRe  = regexp.MustCompile("(?s)```(\\w+)?\\n?(.*?)```")
	inlineCodeRe = regexp.MustCompile("`([^`\n]+)`")
	boldRe       = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	italicRe     = regexp.MustCompile(`(^|[^\w*])_([^_\n]+)_($|[^\w*])`)
	strikeRe     = regexp.MustCompile(`~~([^~\n]+)~~`)
	urlRe        = regexp.MustCompile(`(^|\s)(https?://[^\s<]+)`)
	colorRe      = regexp.MustCompile(`(^|\s)(#[0-9a-fA-F]{6})\b`)
	katexDollar  = regexp.MustCompile(`\$([^$\n]+)\$`)
	katexParen   = regexp.MustCompile(`\\\(([^\n]+?)\\\)`)

	// renderedCodeRe recognizes code spans already produced by an earlier
	// render, so running the renderer over its own output is a no-op.
	renderedCodeRe = regexp.MustCompile(`(?s)<pre><code[^>]*>.*?</code></pre>|<code>[^<\n]*</code>`)
)

// emoticons maps ASCII emoticons to emoji. Replacement happens at
// token boundaries only, so ":)" inside a URL query is left alone.
var emoticons = map[string]string{
	":)": "\U0001F642",
	":(": "\U0001F641",
	":D": "\U0001F603",
	";)": "\U0001F609",
	":P": "\U0001F61B",
	":O": "\U0001F62E",
}

// Renderer is the markdown stage. It keeps compiled custom-domain
// patterns cached per snapshot version; everything else is stateless.
type Renderer struct {
	mu        sync.Mutex
	version   uint64
	domainRes []*regexp.Regexp
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string { return "markdown" }

// Apply populates the rendered text. The raw text is preserved
// unmodified for audit and edit purposes.
func (r *Renderer) Apply(_ context.Context, msg domain.Message, run pipeline.Run) domain.Message {
	msg.Rendered = r.Render(msg.Content, run.Config)
	return msg
}

// Render rewrites raw text using the snapshot's markdown rules.
func (r *Renderer) Render(text string, cfg *settings.Snapshot) string {
	if text == "" {
		return ""
	}

	// Code and math spans are lifted out first so emphasis and link
	// rules never fire inside them.
	var blocks, codes, maths, kept []string
	text = renderedCodeRe.ReplaceAllStringFunc(text, func(match string) string {
		kept = append(kept, match)
		return placeholder("KEPT", len(kept)-1)
	})
	text = codeBlockRe.ReplaceAllStringFunc(text, func(match string) string {
		blocks = append(blocks, match)
		return placeholder("BLOCK", len(blocks)-1)
	})
	text = inlineCodeRe.ReplaceAllStringFunc(text, func(match string) string {
		codes = append(codes, match)
		return placeholder("CODE", len(codes)-1)
	})
	if cfg.Markdown.KatexDollar {
		text = katexDollar.ReplaceAllStringFunc(text, func(match string) string {
			maths = append(maths, match)
			return placeholder("MATH", len(maths)-1)
		})
	}
	if cfg.Markdown.KatexParenthesis {
		text = katexParen.ReplaceAllStringFunc(text, func(match string) string {
			maths = append(maths, match)
			return placeholder("MATH", len(maths)-1)
		})
	}

	text = boldRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicRe.ReplaceAllString(text, "$1<em>$2</em>$3")
	text = strikeRe.ReplaceAllString(text, "<del>$1</del>")

	text = urlRe.ReplaceAllString(text, `$1<a href="$2">$2</a>`)
	for _, re := range r.domainPatterns(cfg) {
		text = re.ReplaceAllString(text, `$1<a href="https://$2">$2</a>`)
	}

	if cfg.Markdown.Colors {
		text = colorRe.ReplaceAllString(text, `$1<span class="color" style="color:$2">$2</span>`)
	}
	if cfg.Markdown.Emoticons {
		for face, emoji := range emoticons {
			re := emoticonPattern(face)
			text = re.ReplaceAllString(text, "${1}"+emoji+"${2}")
		}
	}

	// Line breaks are substituted before the protected spans go back:
	// preformatted code keeps its real newlines.
	text = strings.ReplaceAll(text, "\n", "<br/>")

	// Math spans go back verbatim; the client-side formula renderer
	// needs the original delimiters.
	for i, m := range maths {
		text = strings.Replace(text, placeholder("MATH", i), m, 1)
	}
	for i, c := range codes {
		parts := inlineCodeRe.FindStringSubmatch(c)
		text = strings.Replace(text, placeholder("CODE", i), "<code>"+parts[1]+"</code>", 1)
	}
	for i, b := range blocks {
		parts := codeBlockRe.FindStringSubmatch(b)
		rendered := "<pre><code>" + parts[2] + "</code></pre>"
		if parts[1] != "" {
			rendered = `<pre><code class="language-` + parts[1] + `">` + parts[2] + "</code></pre>"
		}
		text = strings.Replace(text, placeholder("BLOCK", i), rendered, 1)
	}
	for i, k := range kept {
		text = strings.Replace(text, placeholder("KEPT", i), k, 1)
	}

	return text
}

// domainPatterns compiles link patterns for the configured custom
// domains, cached until the snapshot version moves. A missing
// custom-domain config simply yields no extra patterns.
func (r *Renderer) domainPatterns(cfg *settings.Snapshot) []*regexp.Regexp {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.version == cfg.Version && cfg.Version != 0 {
		return r.domainRes
	}
	r.domainRes = nil
	for _, d := range cfg.Markdown.CustomDomains {
		re, err := regexp.Compile(`(^|\s)(` + regexp.QuoteMeta(d) + `(?:/[^\s<]*)?)`)
		if err != nil {
			continue
		}
		r.domainRes = append(r.domainRes, re)
	}
	r.version = cfg.Version
	return r.domainRes
}

var emoticonRes sync.Map // face -> *regexp.Regexp

func emoticonPattern(face string) *regexp.Regexp {
	if re, ok := emoticonRes.Load(face); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(^|\s)` + regexp.QuoteMeta(face) + `($|\s)`)
	emoticonRes.Store(face, re)
	return re
}

func placeholder(kind string, idx int) string {
	return "\x00" + kind + strconv.Itoa(idx) + "\x00"
}
