package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet = regexp.MustCompile(`^[•\-\*]\s+(.+)$`)
)

// WriteDocx renders a bullet-point report into a styled docx file.
func WriteDocx(title, report, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	titleRun := doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000")
	titleRun.Bold(true)
	doc.AddParagraph("")

	for _, line := range strings.Split(report, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		p := doc.AddParagraph("")
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(p, "• "+m[1])
			continue
		}
		addRichText(p, trimmed)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// addRichText writes a line, bolding any **spans**.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
