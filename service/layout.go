package service

import (
	"fmt"
	"strconv"
	"strings"

	"ticketdesk/model"
)

var bracketStripper = strings.NewReplacer("[", "", "]", "")

// ParseLayout builds a venue grid from the lines of a layout file.
//
// The first line fixes the geometry: a zone marker token and three
// bracketed band tokens, where each seat occupies two characters of the
// token once the opening brackets are removed. Blank lines are spacer
// rows and stay blank in the grid. The parsed text is both the display
// format and the replay source of truth: RenderLayout of the result
// parses back to the same occupancy.
func ParseLayout(name string, lines []string) (*model.Venue, error) {
	if len(lines) == 0 {
		return nil, &FormatError{Line: 1, Reason: "layout file is empty"}
	}
	head := strings.Fields(lines[0])
	if len(head) < 4 {
		return nil, &FormatError{
			Line:   1,
			Reason: fmt.Sprintf("want a zone marker and three seat bands, got %d fields", len(head)),
		}
	}
	left := len(strings.ReplaceAll(head[1], "[", "")) / 2
	middle := len(strings.ReplaceAll(head[2], "[", "")) / 2
	right := len(strings.ReplaceAll(head[3], "[", "")) / 2

	v := model.NewVenue(len(lines), left, middle, right)
	v.Name = name

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			return nil, &FormatError{Line: i + 1, Reason: "row has fewer bands than the header"}
		}
		v.SetCell(i, 0, parts[0][0])
		v.SetCell(i, v.Width()-1, parts[0][0])
		if err := placeBand(v, i, 2, left, parts[1]); err != nil {
			return nil, err
		}
		if err := placeBand(v, i, left+3, middle, parts[2]); err != nil {
			return nil, err
		}
		if err := placeBand(v, i, left+middle+4, right, parts[3]); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func placeBand(v *model.Venue, row, offset, width int, token string) error {
	chars := bracketStripper.Replace(token)
	if len(chars) < width {
		return &FormatError{
			Line:   row + 1,
			Reason: fmt.Sprintf("band %q holds %d seats, want %d", token, len(chars), width),
		}
	}
	for i := 0; i < width; i++ {
		v.SetCell(row, offset+i, chars[i])
	}
	return nil
}

// RenderLayout prints the grid in the layout file's visual format:
// marker plus row number on both ends of each row, brackets around every
// non-blank cell. Row numbers are zone-local and reset after every
// spacer row.
func RenderLayout(v *model.Venue) string {
	var b strings.Builder
	width := v.Width()
	num := 1
	for i := 0; i < v.Rows; i++ {
		if v.Cell(i, 0) == ' ' {
			num = 1
			b.WriteByte('\n')
			continue
		}
		b.WriteByte(v.Cell(i, 0))
		b.WriteString(strconv.Itoa(num))
		for j := 1; j < width-1; j++ {
			if c := v.Cell(i, j); c != ' ' {
				b.WriteByte('[')
				b.WriteByte(c)
				b.WriteByte(']')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte(v.Cell(i, width-1))
		b.WriteString(strconv.Itoa(num))
		b.WriteByte('\n')
		num++
	}
	return b.String()
}
