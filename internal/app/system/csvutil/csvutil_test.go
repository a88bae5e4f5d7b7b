package csvutil_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/campushub/internal/app/system/csvutil"
)

func TestPreScanCollegesCSV_Basic(t *testing.T) {
	input := "Acme College,Springfield\nTech Institute,Riverton\n"
	rows, errs, err := csvutil.PreScanCollegesCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("unexpected row errors: %v", errs)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "Acme College" || rows[0].Location != "Springfield" {
		t.Errorf("row 0: %+v", rows[0])
	}
}

func TestPreScanCollegesCSV_HeaderSkipped(t *testing.T) {
	input := "Name,Location\nAcme College,Springfield\n"
	rows, _, err := csvutil.PreScanCollegesCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header skipped, got %d rows", len(rows))
	}
}

func TestPreScanCollegesCSV_BOMHandling(t *testing.T) {
	input := "\ufeffAcme College,Springfield\n"
	rows, errs, err := csvutil.PreScanCollegesCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("unexpected row errors with BOM: %v", errs)
	}
	if len(rows) != 1 || rows[0].Name != "Acme College" {
		t.Fatalf("BOM row not parsed: %+v", rows)
	}
}

func TestPreScanCollegesCSV_MissingName(t *testing.T) {
	input := "Acme College,Springfield\n,Lost Town\n"
	rows, errs, err := csvutil.PreScanCollegesCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 good row, got %d", len(rows))
	}
	if len(errs) != 1 || errs[0].Line != 2 {
		t.Errorf("expected error on line 2, got %v", errs)
	}
}

func TestPreScanCollegesCSV_BlankRowsIgnored(t *testing.T) {
	input := "Acme College,Springfield\n,\n\nTech Institute,Riverton\n"
	rows, errs, err := csvutil.PreScanCollegesCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("unexpected row errors: %v", errs)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestPreScanCollegesCSV_MissingLocationAllowed(t *testing.T) {
	input := "Acme College\n"
	rows, errs, err := csvutil.PreScanCollegesCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("unexpected row errors: %v", errs)
	}
	if len(rows) != 1 || rows[0].Location != "" {
		t.Fatalf("single-column row should parse: %+v", rows)
	}
}
