package generator

import "github.com/verte-zerg/passgen/internal/model"

const (
	upperAlphabet       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerAlphabet       = "abcdefghijklmnopqrstuvwxyz"
	digitAlphabet       = "0123456789"
	basicSymbolAlphabet = "-+=*/><[]{}()"
	extraSymbolAlphabet = "?!@#$%&_|;:"
)

// Class is a named alphabet a single character may be drawn from.
type Class struct {
	Name     string
	Alphabet string
}

var (
	upperClass       = Class{Name: "upper", Alphabet: upperAlphabet}
	lowerClass       = Class{Name: "lower", Alphabet: lowerAlphabet}
	digitClass       = Class{Name: "digits", Alphabet: digitAlphabet}
	basicSymbolClass = Class{Name: "basic-symbols", Alphabet: basicSymbolAlphabet}
	extraSymbolClass = Class{Name: "extra-symbols", Alphabet: extraSymbolAlphabet}
)

// AllClasses returns every known class in selection order.
func AllClasses() []Class {
	return []Class{upperClass, lowerClass, digitClass, basicSymbolClass, extraSymbolClass}
}

// ClassSet is the ordered set of classes enabled for one run.
// A class id is its index in the set.
type ClassSet struct {
	classes []Class
}

// NewClassSet builds the enabled classes from cfg, falling back to
// upper, lower and digits when no class flag is set.
func NewClassSet(cfg model.Config) ClassSet {
	if !cfg.HasClass() {
		return ClassSet{classes: []Class{upperClass, lowerClass, digitClass}}
	}
	classes := make([]Class, 0, 5)
	if cfg.Upper {
		classes = append(classes, upperClass)
	}
	if cfg.Lower {
		classes = append(classes, lowerClass)
	}
	if cfg.Digits {
		classes = append(classes, digitClass)
	}
	if cfg.BasicSymbols {
		classes = append(classes, basicSymbolClass)
	}
	if cfg.ExtraSymbols {
		classes = append(classes, extraSymbolClass)
	}
	return ClassSet{classes: classes}
}

// Len returns the number of enabled classes.
func (s ClassSet) Len() int {
	return len(s.classes)
}

// Classes returns a copy of the enabled classes.
func (s ClassSet) Classes() []Class {
	out := make([]Class, len(s.classes))
	copy(out, s.classes)
	return out
}

// At returns the class with the given id.
func (s ClassSet) At(id int) Class {
	return s.classes[id]
}

// Select picks a class uniformly over class ids, ignoring alphabet sizes.
// A single-class set never consumes randomness.
func (s ClassSet) Select(src Source) (Class, int) {
	if len(s.classes) == 0 {
		panic("generator: empty class set")
	}
	if len(s.classes) == 1 {
		return s.classes[0], 0
	}
	id := src.Intn(len(s.classes))
	return s.classes[id], id
}

// Sample draws one character uniformly from alphabet.
func Sample(src Source, alphabet string) byte {
	if alphabet == "" {
		panic("generator: empty alphabet")
	}
	return alphabet[src.Intn(len(alphabet))]
}
