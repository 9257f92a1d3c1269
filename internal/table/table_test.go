package table

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestExtractFirstColumnCSV(t *testing.T) {
	path := writeCSV(t, "name,count\nA,1\n,2\n B ,3\n")

	items, err := ExtractFirstColumn(path)
	if err != nil {
		t.Fatalf("ExtractFirstColumn: %v", err)
	}
	want := []string{"A", "B"}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("items = %v, want %v", items, want)
	}
}

func TestExtractFirstColumnCSVRaggedRows(t *testing.T) {
	path := writeCSV(t, "name\nA,extra,columns\nB\n")

	items, err := ExtractFirstColumn(path)
	if err != nil {
		t.Fatalf("ExtractFirstColumn: %v", err)
	}
	want := []string{"A", "B"}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("items = %v, want %v", items, want)
	}
}

func TestExtractFirstColumnEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := ExtractFirstColumn(path)
	if !errors.Is(err, ErrNoColumns) {
		t.Fatalf("err = %v, want ErrNoColumns", err)
	}
}

func TestExtractFirstColumnHeaderOnly(t *testing.T) {
	path := writeCSV(t, "name,count\n")

	_, err := ExtractFirstColumn(path)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}

func TestExtractFirstColumnBlankValuesOnly(t *testing.T) {
	path := writeCSV(t, "name\n\"   \"\n\"\"\n")

	_, err := ExtractFirstColumn(path)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}

func TestExtractFirstColumnMissingFile(t *testing.T) {
	if _, err := ExtractFirstColumn(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestExtractFirstColumnXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	cells := map[string]any{
		"A1": "name", "B1": "count",
		"A2": "  A  ",
		"A3": "   ",
		"A4": "B", "B4": 7,
		"A5": 42,
	}
	for axis, value := range cells {
		if err := f.SetCellValue("Sheet1", axis, value); err != nil {
			t.Fatalf("SetCellValue(%s): %v", axis, err)
		}
	}

	path := filepath.Join(t.TempDir(), "items.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	items, err := ExtractFirstColumn(path)
	if err != nil {
		t.Fatalf("ExtractFirstColumn: %v", err)
	}
	want := []string{"A", "B", "42"}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("items = %v, want %v", items, want)
	}
}

func TestExtractFirstColumnXLSXEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	_, err := ExtractFirstColumn(path)
	if !errors.Is(err, ErrNoColumns) {
		t.Fatalf("err = %v, want ErrNoColumns", err)
	}
}
