package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/csvtab/csvtab/pkg/table"
)

func TestWriteXLSX(t *testing.T) {
	tbl := table.Table{
		{"Alex", "M", "41"},
		{"Bert", "M", "42"},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteXLSX(tbl, path, "biostats"); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell     string
		expected string
	}{
		{"A1", "Alex"},
		{"C1", "41"},
		{"B2", "M"},
		{"C2", "42"},
	}

	for _, tt := range tests {
		got, err := f.GetCellValue("biostats", tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", tt.cell, err)
		}
		if got != tt.expected {
			t.Errorf("cell %s = %q, want %q", tt.cell, got, tt.expected)
		}
	}

	props, err := f.GetDocProps()
	if err != nil {
		t.Fatalf("GetDocProps failed: %v", err)
	}
	if props.Identifier == "" {
		t.Error("workbook identifier should be set")
	}
	if props.Creator != "csvtab" {
		t.Errorf("creator = %q, want csvtab", props.Creator)
	}
}

func TestWriteXLSX_DefaultSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteXLSX(table.Table{{"x"}}, path, ""); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Sheet1", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if got != "x" {
		t.Errorf("A1 = %q, want x", got)
	}
}
