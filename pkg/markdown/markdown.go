// Package markdown extracts fenced code blocks from markdown documents.
//
// The CLI executes the script blocks of a markdown document in document
// order; this package walks the goldmark AST to find them with their
// language and starting line numbers, so parse errors in embedded scripts
// report document line numbers.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CodeBlock is one fenced code block of a markdown document
type CodeBlock struct {
	Language  string
	Text      string
	StartLine int
}

// scriptLanguages are the fence info strings that mark executable script
// blocks
var scriptLanguages = map[string]bool{
	"barescript": true,
	"calcscript": true,
}

// CodeBlocks returns every fenced code block of a markdown document, in
// document order
func CodeBlocks(source []byte) []CodeBlock {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var blocks []CodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		language := ""
		if fenced.Info != nil {
			language = string(fenced.Language(source))
		}

		lines := fenced.Lines()
		startLine := 0
		var builder strings.Builder
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			if i == 0 {
				startLine = lineNumber(source, segment.Start)
			}
			builder.Write(segment.Value(source))
		}

		blocks = append(blocks, CodeBlock{
			Language:  language,
			Text:      builder.String(),
			StartLine: startLine,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// ScriptBlocks returns only the executable script blocks of a document
func ScriptBlocks(source []byte) []CodeBlock {
	var blocks []CodeBlock
	for _, block := range CodeBlocks(source) {
		if scriptLanguages[strings.ToLower(block.Language)] {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// lineNumber converts a byte offset into a 1-based line number
func lineNumber(source []byte, offset int) int {
	line := 1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}
	return line
}
