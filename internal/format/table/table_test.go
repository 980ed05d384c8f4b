package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Name", "Chair"},
		{"Price", "10.00"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	want := []string{
		"Name   Chair",
		"Price  10.00",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{
		{"a", "1.00"},
		{"b", "100.00"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	if got[0] != "a    1.00" || got[1] != "b  100.00" {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatPadsShortRows(t *testing.T) {
	rows := [][]string{
		{"Name", "Chair"},
		{"Description"},
	}
	got := Format(rows, nil)
	if got[0] != "Name         Chair" {
		t.Fatalf("unexpected first row %q", got[0])
	}
	if got[1] != "Description  " {
		t.Fatalf("unexpected second row %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestFitTruncates(t *testing.T) {
	rows := [][]string{{"Name", "A very long product name"}}
	got := Fit(rows, nil, 10)
	if len([]rune(got[0])) > 10 {
		t.Fatalf("expected truncated row, got %q", got[0])
	}
	if untouched := Fit(rows, nil, 0); untouched[0] != "Name  A very long product name" {
		t.Fatalf("unexpected untruncated row %q", untouched[0])
	}
}
