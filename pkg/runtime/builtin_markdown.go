// builtin_markdown.go - Markdown builtins
//
// The language is embedded in a markdown viewer, so scripts produce markdown
// text. markdownEscape and markdownHeaderId are the pure text helpers;
// markdownHTML renders markdown through goldmark with the GFM table and
// strikethrough extensions the viewer uses.
package runtime

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/barescript-org/barescript/pkg/script"
)

// markdownSpecials are the characters markdownEscape protects
const markdownSpecials = "\\[]()<>\"'*_~`#=+|-"

// builtinMarkdownEscape backslash-escapes markdown formatting characters
func builtinMarkdownEscape(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("markdownEscape", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	var builder strings.Builder
	for _, r := range s {
		if r < 128 && strings.ContainsRune(markdownSpecials, r) {
			builder.WriteByte('\\')
		}
		builder.WriteRune(r)
	}
	return script.NewString(builder.String()), nil
}

// builtinMarkdownHeaderID computes the anchor id of a markdown header:
// lowercase, alphanumerics and hyphens only, spaces become hyphens
func builtinMarkdownHeaderID(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("markdownHeaderId", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	var builder strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == ' ':
			builder.WriteRune(r)
		}
	}
	id := strings.TrimSpace(builder.String())
	var collapsed strings.Builder
	lastSpace := false
	for _, r := range id {
		if r == ' ' {
			if !lastSpace {
				collapsed.WriteByte('-')
			}
			lastSpace = true
			continue
		}
		lastSpace = false
		collapsed.WriteRune(r)
	}
	return script.NewString(collapsed.String()), nil
}

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// builtinMarkdownHTML renders markdown text to HTML
func builtinMarkdownHTML(ex *script.ExecState, args []script.Value) (script.Value, error) {
	s, err := needString("markdownHTML", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	var buf bytes.Buffer
	if cerr := markdownRenderer.Convert([]byte(s), &buf); cerr != nil {
		return script.NewNull(), cerr
	}
	return script.NewString(buf.String()), nil
}
