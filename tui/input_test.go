package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ticketdesk/model"
)

func typeKeys(f *promptForm, text string) bool {
	done := false
	for _, r := range text {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == '\n' {
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		}
		done = f.handleKey(msg)
	}
	return done
}

func TestPromptFormCollectsAnswers(t *testing.T) {
	f := newBookingForm()
	if done := typeKeys(f, "S2\n14\n"); done {
		t.Fatal("form finished before the last answer")
	}
	if done := typeKeys(f, "3\n"); !done {
		t.Fatal("form did not finish after the last answer")
	}
	want := []string{"S2", "14", "3"}
	for i, w := range want {
		if got := f.value(i); got != w {
			t.Errorf("answer %d = %q, want %q", i, got, w)
		}
	}
}

func TestPromptFormIgnoresEmptySubmit(t *testing.T) {
	f := newForm("only")
	if done := f.handleKey(tea.KeyMsg{Type: tea.KeyEnter}); done {
		t.Fatal("empty answer was accepted")
	}
	if done := typeKeys(f, "x\n"); !done {
		t.Fatal("non-empty answer was rejected")
	}
}

func TestPromptFormBackspace(t *testing.T) {
	f := newForm("only")
	typeKeys(f, "abc")
	f.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := f.value(0); got != "ab" {
		t.Errorf("after backspace = %q, want ab", got)
	}
	f.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	f.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	f.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := f.value(0); got != "" {
		t.Errorf("backspace on empty input = %q, want empty", got)
	}
}

func TestParseAisle(t *testing.T) {
	cases := []struct {
		in   string
		zone model.Zone
		row  int
		ok   bool
	}{
		{"S2", model.ZoneSeating, 2, true},
		{" v1 ", model.ZoneVIP, 1, true},
		{"t10", model.ZoneStanding, 10, true},
		{"S", 0, 0, false},
		{"X2", 0, 0, false},
		{"Sx", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		zone, row, err := parseAisle(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("parseAisle(%q) err = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && (zone != tc.zone || row != tc.row) {
			t.Errorf("parseAisle(%q) = %v row %d, want %v row %d", tc.in, zone, row, tc.zone, tc.row)
		}
	}
}
