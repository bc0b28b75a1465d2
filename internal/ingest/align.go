package ingest

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// AlignColumns pads tab-separated fields so every column starts at the
// same display offset. Lines without tabs pass through untouched.
func AlignColumns(lines []string, gap int) []string {
	if gap < 1 {
		gap = 1
	}
	var widths []int
	rows := make([][]string, len(lines))
	for i, l := range lines {
		if !strings.Contains(l, "\t") {
			continue
		}
		fields := strings.Split(l, "\t")
		rows[i] = fields
		// the last field is never padded, so it does not widen its column
		for j, f := range fields[:len(fields)-1] {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], runewidth.StringWidth(f))
		}
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		fields := rows[i]
		if fields == nil {
			out[i] = l
			continue
		}
		var b strings.Builder
		for j, f := range fields {
			if j == len(fields)-1 {
				b.WriteString(f)
				break
			}
			b.WriteString(runewidth.FillRight(f, widths[j]+gap))
		}
		out[i] = b.String()
	}
	return out
}
