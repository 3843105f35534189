// Package stats contains generator distribution calculations and reporting.
package stats

import (
	"fmt"

	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/model"
)

// Report contains precomputed data for distribution rendering.
type Report struct {
	Samples    int
	Chars      int
	Classes    []model.ClassShare
	Rerolls    int
	LongestRun int
	// RunLengths[k] counts same-class runs of length k+1.
	RunLengths []int
	TopChars   []model.CharCount
}

// BuildReport generates cfg.Samples passwords and summarizes them.
func BuildReport(gen *generator.Generator, cfg model.StatsConfig) (Report, error) {
	if cfg.Samples <= 0 {
		return Report{}, fmt.Errorf("samples must be > 0")
	}
	passwords := make([]generator.Password, 0, cfg.Samples)
	for i := 0; i < cfg.Samples; i++ {
		p, err := gen.Trace(cfg.Config)
		if err != nil {
			return Report{}, err
		}
		passwords = append(passwords, p)
	}
	return Analyze(generator.NewClassSet(cfg.Config), passwords, cfg.TopN), nil
}

// Analyze summarizes class usage across passwords generated with set.
func Analyze(set generator.ClassSet, passwords []generator.Password, topN int) Report {
	report := Report{Samples: len(passwords)}
	perClass := make([]int, set.Len())
	charCounts := map[byte]int{}

	for _, p := range passwords {
		report.Rerolls += p.Rerolls
		report.Chars += len(p.Classes)
		for i := 0; i < len(p.Value); i++ {
			charCounts[p.Value[i]]++
		}
		run := 0
		for i, id := range p.Classes {
			if id >= 0 && id < len(perClass) {
				perClass[id]++
			}
			if i > 0 && p.Classes[i-1] == id {
				run++
			} else {
				report.RunLengths = addRun(report.RunLengths, run)
				run = 1
			}
		}
		report.RunLengths = addRun(report.RunLengths, run)
	}
	report.LongestRun = len(report.RunLengths)

	expected := 1.0 / float64(set.Len())
	for id, class := range set.Classes() {
		share := 0.0
		if report.Chars > 0 {
			share = float64(perClass[id]) / float64(report.Chars)
		}
		report.Classes = append(report.Classes, model.ClassShare{
			Name:     class.Name,
			Chars:    perClass[id],
			Share:    share,
			Expected: expected,
		})
	}
	report.TopChars = TopChars(charCounts, topN)
	return report
}

func addRun(runs []int, length int) []int {
	if length <= 0 {
		return runs
	}
	for len(runs) < length {
		runs = append(runs, 0)
	}
	runs[length-1]++
	return runs
}
