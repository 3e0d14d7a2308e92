package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/call-digest/internal/summarizer"
)

func TestWriteDocx(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "call.docx")

	summary := &summarizer.Summary{
		KeyPoints: []string{"GST registration discussed", "Documents still pending"},
		ActionItems: []summarizer.ActionItem{
			{Title: "Collect PAN", Task: "Get PAN card copy", Description: "Needed for filing", Deadline: "Friday"},
			{Title: "Follow up", Task: "Call the client"},
		},
	}

	if err := WriteDocx("call", summary, outputPath); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestWriteDocxEmptySummary(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "empty.docx")

	if err := WriteDocx("empty", &summarizer.Summary{}, outputPath); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}
}
