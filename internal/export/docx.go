package export

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

// writeDOCX renders doc with one paragraph per source line.
func (e *implExporter) writeDOCX(path string, doc Document) error {
	d, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	if doc.Title != "" {
		e.addStyledRun(d.AddParagraph(""), doc.Title, true, 16)
	}

	for _, b := range parseBlocks(doc.Body) {
		switch b.kind {
		case blockHeading:
			size := uint64(headingSize(b.level, e.fontSize))
			for _, line := range b.plain() {
				e.addStyledRun(d.AddParagraph(""), line, true, size)
			}
		default:
			for i, line := range b.lines {
				p := d.AddParagraph("")
				if b.kind == blockListItem && i == 0 {
					e.addStyledRun(p, b.marker+" ", false, uint64(e.fontSize))
				}
				for _, r := range line {
					e.addStyledRun(p, r.text, r.bold, uint64(e.fontSize))
				}
			}
		}
	}

	return d.SaveTo(path)
}

func (e *implExporter) addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	if text == "" {
		return
	}
	run := p.AddText(text).Font(e.fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func headingSize(level, base int) int {
	switch level {
	case 1:
		return base + 3
	case 2:
		return base + 2
	case 3:
		return base + 1
	default:
		return base
	}
}
