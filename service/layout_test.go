package service

import (
	"strings"
	"testing"

	"ticketdesk/model"
)

func sampleLayout() []string {
	return []string{
		"V [1][2] [1][2][3] [1][2]",
		"",
		"S [1][2] [1][2][3] [1][2]",
		"S [1][2] [1][2][3] [1][2]",
		"",
		"T [1][2] [1][2][3] [1][2]",
	}
}

func TestParseLayoutGeometry(t *testing.T) {
	v, err := ParseLayout("default", sampleLayout())
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if v.Name != "default" {
		t.Errorf("name = %q, want default", v.Name)
	}
	if v.Rows != 6 {
		t.Errorf("rows = %d, want 6", v.Rows)
	}
	if v.LeftCols != 2 || v.MiddleCols != 3 || v.RightCols != 2 {
		t.Errorf("bands = %d/%d/%d, want 2/3/2", v.LeftCols, v.MiddleCols, v.RightCols)
	}
	if got, want := v.Width(), 13; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
	if got, want := v.TotalSeats(), 28; got != want {
		t.Errorf("total seats = %d, want %d", got, want)
	}
	if v.BookedSeats() != 0 {
		t.Errorf("booked seats = %d, want 0", v.BookedSeats())
	}
}

func TestParseLayoutSpacerRows(t *testing.T) {
	v, err := ParseLayout("default", sampleLayout())
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	for _, row := range []int{1, 4} {
		for col := 0; col < v.Width(); col++ {
			if v.Cell(row, col) != ' ' {
				t.Fatalf("spacer row %d col %d = %q, want blank", row, col, v.Cell(row, col))
			}
		}
	}
	if v.Cell(0, 0) != 'V' || v.Cell(2, 0) != 'S' || v.Cell(5, 0) != 'T' {
		t.Errorf("zone markers = %c/%c/%c, want V/S/T", v.Cell(0, 0), v.Cell(2, 0), v.Cell(5, 0))
	}
	if v.Cell(0, v.Width()-1) != 'V' {
		t.Errorf("right marker = %c, want V", v.Cell(0, v.Width()-1))
	}
}

func TestRenderLayoutNumbering(t *testing.T) {
	v, err := ParseLayout("default", sampleLayout())
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	lines := strings.Split(strings.TrimRight(RenderLayout(v), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("rendered %d lines, want 6", len(lines))
	}
	wantPrefix := []string{"V1", "", "S1", "S2", "", "T1"}
	for i, want := range wantPrefix {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want)
		}
		if want != "" && !strings.HasSuffix(lines[i], want) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], want)
		}
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	v, err := ParseLayout("default", sampleLayout())
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if err := v.Book(model.ZoneSeating, 2, 5); err != nil {
		t.Fatalf("Book: %v", err)
	}

	rendered := strings.Split(strings.TrimRight(RenderLayout(v), "\n"), "\n")
	back, err := ParseLayout("default", rendered)
	if err != nil {
		t.Fatalf("ParseLayout of rendered output: %v", err)
	}
	if back.Rows != v.Rows || back.Width() != v.Width() {
		t.Fatalf("round trip geometry %dx%d, want %dx%d", back.Rows, back.Width(), v.Rows, v.Width())
	}
	for i := 0; i < v.Rows; i++ {
		for j := 0; j < v.Width(); j++ {
			if back.Cell(i, j) != v.Cell(i, j) {
				t.Fatalf("round trip cell (%d,%d) = %q, want %q", i, j, back.Cell(i, j), v.Cell(i, j))
			}
		}
	}
}

func TestParseLayoutBadInput(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"empty file", nil},
		{"short header", []string{"S [1][2]"}},
		{"short row", []string{"V [1][2] [1][2] [1][2]", "S [1] [1][2] [1][2]"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLayout("x", tc.lines)
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if !IsFormatError(err) {
				t.Errorf("err = %v, want a format error", err)
			}
		})
	}
}
