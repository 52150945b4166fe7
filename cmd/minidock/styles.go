package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/tsawler/minidock/docx"
	"github.com/tsawler/minidock/model"
)

var styleColumns = []string{"ID", "NAME", "KIND", "BASED ON", "FONT", "SIZE", "FLAGS", "ALIGN"}

// writeStyleTable prints every style in the table after cascade
// resolution, one row per style, with columns padded to their display
// width so CJK style names line up.
func writeStyleTable(w io.Writer, styles map[string]model.Style) error {
	table := docx.StyleTable(styles)
	cache := docx.NewCache()

	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := [][]string{styleColumns}
	for _, id := range ids {
		s := docx.Resolve(table, cache, id)
		rows = append(rows, []string{
			s.ID,
			s.Name,
			s.Kind.String(),
			s.BasedOn,
			s.FontFamily,
			formatSize(s.FontSize),
			styleFlags(s),
			s.Justification.String(),
		})
	}

	widths := make([]int, len(styleColumns))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func formatSize(pt float64) string {
	if pt == 0 {
		return ""
	}
	return strconv.FormatFloat(pt, 'f', -1, 64)
}

// styleFlags abbreviates the character flags: B I U S sub sup.
func styleFlags(s model.Style) string {
	var flags []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{s.Bold, "B"},
		{s.Italic, "I"},
		{s.Underline, "U"},
		{s.Strike, "S"},
		{s.Subscript, "sub"},
		{s.Superscript, "sup"},
	} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	return strings.Join(flags, ",")
}
