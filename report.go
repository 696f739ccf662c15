package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Minimum column widths; a wider label or value widens the whole box.
const (
	reportLabelWidth = 16
	reportValueWidth = 22
	// "| " + label + ": " + value + " |"
	reportWidth = 2 + reportLabelWidth + 2 + reportValueWidth + 2
)

// writeReport prints s as a fixed-width box: every line, borders included,
// has the same width. Every statistic is rounded to three decimals with an
// explicit sign.
func writeReport(w io.Writer, s Summary) error {
	pct := strconv.FormatFloat(math.Round(s.Confidence*1e4)/100, 'f', -1, 64) + "%"
	rows := []struct{ label, value string }{
		{"qty of data", fmt.Sprintf("%+d", s.Count)},
		{"mean", signed(s.Mean)},
		{"ci lower (" + pct + ")", signed(s.CILower)},
		{"ci upper (" + pct + ")", signed(s.CIUpper)},
		{"ci width", signed(s.CIUpper - s.CILower)},
		{"median", signed(s.Median)},
		{"mode", fmt.Sprintf("%s (count: %d)", signed(s.Mode), s.ModeCount)},
		{"range", signed(s.Range)},
		{"iq range", signed(s.IQR)},
		{"std dev", signed(s.StdDev)},
		{"std err", signed(s.StdErr)},
	}

	labelWidth, valueWidth := reportLabelWidth, reportValueWidth
	for _, r := range rows {
		labelWidth = max(labelWidth, len(r.label))
		valueWidth = max(valueWidth, len(r.value))
	}
	width := 2 + labelWidth + 2 + valueWidth + 2

	var b strings.Builder
	border := strings.Repeat("-", width)
	b.WriteString(border + "\n")
	b.WriteString("|" + center("DESCRIPTIVE  STATISTICS", width-2) + "|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %*s: %-*s |\n", labelWidth, r.label, valueWidth, r.value)
	}
	b.WriteString(border + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func signed(v float64) string {
	return fmt.Sprintf("%+.3f", v)
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
