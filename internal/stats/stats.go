package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const sparkChars = " .:-=+*#%@"

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = min(max(idx, 0), len(sparkChars)-1)
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderDistribution prints the class distribution report.
func RenderDistribution(w io.Writer, report Report) error {
	if report.Chars == 0 {
		_, err := fmt.Fprintln(w, "No characters generated.")
		return err
	}
	rerollPct := float64(report.Rerolls) / float64(report.Chars) * 100
	summary := []string{
		"Summary",
		fmt.Sprintf("Samples: %d", report.Samples),
		fmt.Sprintf("Characters: %d", report.Chars),
		fmt.Sprintf("Rerolls: %d (%.2f%% of positions)", report.Rerolls, rerollPct),
		fmt.Sprintf("Longest same-class run: %d", report.LongestRun),
		"",
		"Classes",
	}

	headers := []string{"Class", "Chars", "Share", "Expected"}
	rows := make([][]string, 0, len(report.Classes))
	for _, c := range report.Classes {
		rows = append(rows, []string{
			c.Name,
			fmt.Sprintf("%d", c.Chars),
			fmt.Sprintf("%.2f%%", c.Share*100),
			fmt.Sprintf("%.2f%%", c.Expected*100),
		})
	}
	lines := append(summary, formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true})...)

	if len(report.RunLengths) > 0 {
		runs := make([]float64, len(report.RunLengths))
		for i, n := range report.RunLengths {
			runs[i] = float64(n)
		}
		lines = append(lines, "", fmt.Sprintf("Run lengths 1..%d: [%s]", len(runs), Sparkline(runs)))
	}
	if len(report.TopChars) > 0 {
		parts := make([]string, 0, len(report.TopChars))
		for _, c := range report.TopChars {
			parts = append(parts, fmt.Sprintf("%s=%d", c.Char, c.Count))
		}
		lines = append(lines, fmt.Sprintf("Top characters: %s", strings.Join(parts, " ")))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
