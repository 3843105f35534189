// Package model defines shared data structures.
package model

// Config defines password generation settings.
type Config struct {
	Length          int
	Upper           bool
	Lower           bool
	Digits          bool
	BasicSymbols    bool
	ExtraSymbols    bool
	AvoidRepetition bool
}

// HasClass reports whether any character class flag is set.
func (c Config) HasClass() bool {
	return c.Upper || c.Lower || c.Digits || c.BasicSymbols || c.ExtraSymbols
}

// RunConfig defines CLI run settings around a single Config.
type RunConfig struct {
	Config
	Count int
	Seed  *int64
}

// StatsConfig defines options for the distribution report.
type StatsConfig struct {
	Config
	Samples int
	TopN    int
}

// ClassShare summarizes how often a class was drawn.
type ClassShare struct {
	Name     string
	Chars    int
	Share    float64
	Expected float64
}

// CharCount counts occurrences of a literal character.
type CharCount struct {
	Char  string
	Count int
}
