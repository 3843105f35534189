package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/passgen/internal/model"
)

func classNames(set ClassSet) []string {
	names := make([]string, 0, set.Len())
	for _, c := range set.Classes() {
		names = append(names, c.Name)
	}
	return names
}

func TestNewClassSet(t *testing.T) {
	tests := []struct {
		name string
		cfg  model.Config
		want []string
	}{
		{name: "fallback", cfg: model.Config{}, want: []string{"upper", "lower", "digits"}},
		{name: "fallback_ignores_avoid", cfg: model.Config{AvoidRepetition: true}, want: []string{"upper", "lower", "digits"}},
		{name: "digits_only", cfg: model.Config{Digits: true}, want: []string{"digits"}},
		{
			name: "all",
			cfg:  model.Config{Upper: true, Lower: true, Digits: true, BasicSymbols: true, ExtraSymbols: true},
			want: []string{"upper", "lower", "digits", "basic-symbols", "extra-symbols"},
		},
		{name: "symbols_keep_order", cfg: model.Config{ExtraSymbols: true, Upper: true}, want: []string{"upper", "extra-symbols"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set := NewClassSet(tc.cfg)
			assert.Equal(t, tc.want, classNames(set))
			for _, c := range set.Classes() {
				assert.NotEmpty(t, c.Alphabet)
			}
		})
	}
}

func TestAllClassesAlphabets(t *testing.T) {
	classes := AllClasses()
	require.Len(t, classes, 5)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", classes[0].Alphabet)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", classes[1].Alphabet)
	assert.Equal(t, "0123456789", classes[2].Alphabet)
	assert.Equal(t, "-+=*/><[]{}()", classes[3].Alphabet)
	assert.Equal(t, "?!@#$%&_|;:", classes[4].Alphabet)

	classes[0].Alphabet = "x"
	assert.Equal(t, upperAlphabet, AllClasses()[0].Alphabet)
}

func TestSelectSingleClassConsumesNoRandomness(t *testing.T) {
	src := &scriptedSource{values: []int{3}}
	set := NewClassSet(model.Config{BasicSymbols: true})
	for range make([]struct{}, 5) {
		class, id := set.Select(src)
		assert.Equal(t, 0, id)
		assert.Equal(t, "basic-symbols", class.Name)
	}
	assert.Empty(t, src.calls)
}

func TestSelectUniformOverClasses(t *testing.T) {
	src := &scriptedSource{values: []int{0, 1, 2, 3}}
	set := NewClassSet(model.Config{Upper: true, Digits: true, BasicSymbols: true, ExtraSymbols: true})
	var ids []int
	for range make([]struct{}, 4) {
		_, id := set.Select(src)
		ids = append(ids, id)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, ids)
	assert.Equal(t, []int{4, 4, 4, 4}, src.calls)
}

func TestSelectNotWeightedByAlphabetSize(t *testing.T) {
	// Digits (10 chars) and lower (26 chars) should be picked about equally often.
	set := NewClassSet(model.Config{Lower: true, Digits: true})
	src := NewSeededSource(99)
	counts := make([]int, set.Len())
	const draws = 20000
	for range make([]struct{}, draws) {
		_, id := set.Select(src)
		counts[id]++
	}
	for _, c := range counts {
		assert.InDelta(t, draws/2, c, draws*0.05)
	}
}

func TestSampleUsesWholeAlphabet(t *testing.T) {
	src := &scriptedSource{values: []int{0, 9, 4}}
	assert.Equal(t, byte('0'), Sample(src, digitAlphabet))
	assert.Equal(t, byte('9'), Sample(src, digitAlphabet))
	assert.Equal(t, byte('4'), Sample(src, digitAlphabet))
	assert.Equal(t, []int{10, 10, 10}, src.calls)
}

func TestSampleEmptyAlphabetPanics(t *testing.T) {
	assert.Panics(t, func() {
		Sample(&scriptedSource{}, "")
	})
}
