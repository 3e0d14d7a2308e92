// Package report renders a summary to a docx document for watch-mode
// output directories.
package report

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/call-digest/internal/summarizer"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 13
	headingSize = 15
	titleSize   = 16
)

// WriteDocx writes the summary as a styled docx file at outputPath.
func WriteDocx(title string, summary *summarizer.Summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	addRun(doc.AddParagraph(""), "Key Points", true, headingSize)
	for _, point := range summary.KeyPoints {
		addRun(doc.AddParagraph(""), "• "+point, false, fontSize)
	}

	doc.AddParagraph("")
	addRun(doc.AddParagraph(""), "Action Items", true, headingSize)
	for i, item := range summary.ActionItems {
		p := doc.AddParagraph("")
		addRun(p, fmt.Sprintf("%d. %s", i+1, item.Title), true, fontSize)

		addRun(doc.AddParagraph(""), "Task: "+item.Task, false, fontSize)
		if item.Description != "" {
			addRun(doc.AddParagraph(""), "Description: "+item.Description, false, fontSize)
		}
		if item.Deadline != "" {
			addRun(doc.AddParagraph(""), "Deadline: "+item.Deadline, false, fontSize)
		}
		doc.AddParagraph("")
	}

	return doc.SaveTo(outputPath)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
