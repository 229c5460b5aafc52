package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantArea  *models.PrintArea
	}{
		{"Figure!$A$1:$J$42", "Figure", &models.PrintArea{R1: 1, C1: 1, R2: 42, C2: 10}},
		{"'My Figure'!$B$2:$C$3", "My Figure", &models.PrintArea{R1: 2, C1: 2, R2: 3, C2: 3}},
		{"'Bob''s'!$A$1:$A$1,'Bob''s'!$C$1:$C$2", "Bob's", &models.PrintArea{R1: 1, C1: 1, R2: 1, C2: 1}},
		{"$A$1:$B$2", "", nil},
		{"Figure!$A$1", "Figure", nil},
	}

	for _, tt := range tests {
		sheet, area := parsePrintAreaReference(tt.ref)
		if sheet != tt.wantSheet {
			t.Errorf("parsePrintAreaReference(%q) sheet = %q, expected %q", tt.ref, sheet, tt.wantSheet)
		}
		if (area == nil) != (tt.wantArea == nil) || (area != nil && *area != *tt.wantArea) {
			t.Errorf("parsePrintAreaReference(%q) area = %v, expected %v", tt.ref, area, tt.wantArea)
		}
	}
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: "Sheet1!$A$1:$D$20",
		Scope:    "Sheet1",
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	areas := ExtractPrintAreas(f)

	area, ok := areas["Sheet1"]
	if !ok {
		t.Fatalf("Expected a print area on Sheet1, got %v", areas)
	}
	if area != (models.PrintArea{R1: 1, C1: 1, R2: 20, C2: 4}) {
		t.Errorf("Unexpected print area: %+v", area)
	}
}
