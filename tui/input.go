package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// promptForm walks the user through a sequence of one-line answers.
type promptForm struct {
	labels  []string
	answers []string
	step    int
}

func newBookingForm() *promptForm {
	return newForm(
		"Aisle number (zone letter + row, e.g. S2)",
		"First seat number",
		"Number of seats",
	)
}

func newPriceForm() *promptForm {
	return newForm(
		"Zone (SEATING, STANDING or VIP)",
		"Left section price",
		"Middle section price",
		"Right section price",
	)
}

func newForm(labels ...string) *promptForm {
	return &promptForm{
		labels:  labels,
		answers: make([]string, len(labels)),
	}
}

func (f *promptForm) value(i int) string {
	return f.answers[i]
}

// handleKey consumes a key press and reports whether the final
// answer has been submitted.
func (f *promptForm) handleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter:
		if strings.TrimSpace(f.answers[f.step]) == "" {
			return false
		}
		f.step++
		return f.step >= len(f.labels)
	case tea.KeyBackspace:
		cur := f.answers[f.step]
		if cur != "" {
			f.answers[f.step] = cur[:len(cur)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		f.answers[f.step] += string(msg.Runes)
	}
	return false
}

func (f *promptForm) view() string {
	var b strings.Builder
	label := lipgloss.NewStyle().Bold(true)
	done := lipgloss.NewStyle().Faint(true)
	for i := 0; i < f.step; i++ {
		b.WriteString(done.Render(f.labels[i]+": "+f.answers[i]) + "\n")
	}
	b.WriteString(label.Render(f.labels[f.step]+": ") + f.answers[f.step] + "█")
	return b.String()
}
