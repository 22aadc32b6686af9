package export

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockListItem
)

type run struct {
	text string
	bold bool
}

// block is one rendered paragraph. Soft line breaks inside the source
// paragraph are kept as separate lines.
type block struct {
	kind   blockKind
	level  int
	marker string
	lines  [][]run
}

func (b block) plain() []string {
	out := make([]string, 0, len(b.lines))
	for _, l := range b.lines {
		var sb strings.Builder
		for _, r := range l {
			sb.WriteString(r.text)
		}
		out = append(out, sb.String())
	}
	return out
}

var md = goldmark.New()

// parseBlocks turns model output into headings, paragraphs and list items.
func parseBlocks(src string) []block {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var blocks []block
	collectBlocks(doc, source, "", &blocks)

	for i, b := range blocks {
		if b.kind == blockParagraph && len(b.lines) == 1 {
			switch strings.TrimSpace(b.plain()[0]) {
			case detailedHeading, keyPointsHeading:
				blocks[i].kind = blockHeading
				blocks[i].level = 1
			}
		}
	}
	return blocks
}

func collectBlocks(n ast.Node, source []byte, marker string, out *[]block) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Heading:
			*out = append(*out, block{kind: blockHeading, level: node.Level, lines: inlineLines(node, source)})
		case *ast.Paragraph, *ast.TextBlock:
			b := block{kind: blockParagraph, lines: inlineLines(node, source)}
			if marker != "" {
				b.kind, b.marker = blockListItem, marker
				marker = ""
			}
			*out = append(*out, b)
		case *ast.ListItem:
			collectBlocks(node, source, itemMarker(node), out)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			b := block{kind: blockParagraph}
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.lines = append(b.lines, []run{{text: strings.TrimRight(string(seg.Value(source)), "\n")}})
			}
			*out = append(*out, b)
		case *ast.ThematicBreak, *ast.HTMLBlock:
		default:
			collectBlocks(node, source, "", out)
		}
	}
}

func itemMarker(item *ast.ListItem) string {
	list, ok := item.Parent().(*ast.List)
	if !ok || !list.IsOrdered() {
		return "•"
	}
	n := list.Start
	for s := item.PreviousSibling(); s != nil; s = s.PreviousSibling() {
		n++
	}
	return strconv.Itoa(n) + "."
}

func inlineLines(n ast.Node, source []byte) [][]run {
	lines := [][]run{nil}
	appendInline(n, source, false, &lines)

	// drop empty trailing lines
	for len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func appendInline(n ast.Node, source []byte, bold bool, lines *[][]run) {
	add := func(s string, bold bool) {
		if s == "" {
			return
		}
		cur := &(*lines)[len(*lines)-1]
		if k := len(*cur); k > 0 && (*cur)[k-1].bold == bold {
			(*cur)[k-1].text += s
			return
		}
		*cur = append(*cur, run{text: s, bold: bold})
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			add(string(node.Segment.Value(source)), bold)
			if node.SoftLineBreak() || node.HardLineBreak() {
				*lines = append(*lines, nil)
			}
		case *ast.String:
			add(string(node.Value), bold)
		case *ast.Emphasis:
			appendInline(node, source, bold || node.Level >= 2, lines)
		case *ast.AutoLink:
			add(string(node.URL(source)), bold)
		case *ast.RawHTML:
		default:
			appendInline(node, source, bold, lines)
		}
	}
}
