// Package generator builds randomized passwords from character classes.
package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/passgen/internal/model"
)

// ErrInvalidLength is returned for a negative password length.
var ErrInvalidLength = errors.New("invalid password length")

// Generator produces passwords from a random source.
type Generator struct {
	src Source
}

// Password is a generated password with the class id used at each position.
type Password struct {
	Value   string
	Classes []int
	Rerolls int
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{src: NewCryptoSource()}
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src Source) *Generator {
	return &Generator{src: src}
}

// Generate returns a password of exactly cfg.Length characters.
func (g *Generator) Generate(cfg model.Config) (string, error) {
	p, err := g.Trace(cfg)
	if err != nil {
		return "", err
	}
	return p.Value, nil
}

// Trace generates a password and reports the class chosen for every position.
// When cfg.AvoidRepetition is set, a class already used in two of the last three
// positions gets its character redrawn once from the same alphabet; the class
// itself is kept and the second draw is accepted as is.
func (g *Generator) Trace(cfg model.Config) (Password, error) {
	if cfg.Length < 0 {
		return Password{}, fmt.Errorf("%w: %d", ErrInvalidLength, cfg.Length)
	}

	set := NewClassSet(cfg)
	hist := newGuard()

	var sb strings.Builder
	sb.Grow(cfg.Length)
	classes := make([]int, 0, cfg.Length)
	rerolls := 0

	for i := 0; i < cfg.Length; i++ {
		class, id := set.Select(g.src)
		ch := Sample(g.src, class.Alphabet)
		if cfg.AvoidRepetition && hist.shouldReroll(id) {
			ch = Sample(g.src, class.Alphabet)
			rerolls++
		}
		sb.WriteByte(ch)
		classes = append(classes, id)
		hist.record(id)
	}

	return Password{
		Value:   sb.String(),
		Classes: classes,
		Rerolls: rerolls,
	}, nil
}
