package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/summary-flow/internal/pipeline"
)

func TestWriteJSONSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary_result.json")

	result := pipeline.Result{Content: "• point one\n• point two"}
	if err := WriteJSON(result, path); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var snap map[string]string
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatal(err)
	}
	if snap["content"] != "• point one\n• point two" {
		t.Errorf("content = %q", snap["content"])
	}
	if _, ok := snap["error"]; ok {
		t.Error("error field present on a success snapshot")
	}
}

func TestWriteJSONFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary_result.json")

	result := pipeline.Result{Failure: "download failed"}
	if err := WriteJSON(result, path); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var snap map[string]string
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatal(err)
	}
	if snap["error"] != "download failed" {
		t.Errorf("error = %q", snap["error"])
	}
}

func TestWriteDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")

	report := "• **First** point\n• Second point\n\nClosing remark"
	if err := WriteDocx("Video Summary", report, path); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("docx not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
}
