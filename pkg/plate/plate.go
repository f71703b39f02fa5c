// Package plate generates synthetic Swedish license plates.
//
// Plates follow the format introduced in 2019: three letters, a space, two
// digits and a final character. The final position only uses letters that
// cannot be confused with digits or other letters.
package plate

import (
	"carlot/pkg/domain"
	"math/rand/v2"
	"strings"
	"sync"
)

const (
	// FirstLetters is the alphabet of the first three positions.
	FirstLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZÅÄÖ"
	// Digits is the alphabet of the two digit positions.
	Digits = "0123456789"
	// LastLetters is the alphabet of the final position. I, O, Q, V and the
	// Swedish vowels are excluded.
	LastLetters = "ABCDEFGHJKLMNPRSTUWXYZ"
)

// Generator produces license plates.
//
//go:generate mockgen -package mockplate -source=plate.go -destination=mock/mockplate.go *
type Generator interface {
	Generate() domain.LicensePlate
}

// Option configures a Swedish generator.
type Option func(*Swedish)

// WithRand makes the generator draw from r instead of the global source.
// Useful for deterministic output in tests.
func WithRand(r *rand.Rand) Option {
	return func(s *Swedish) {
		s.rnd = r
	}
}

// Swedish generates plates in the current Swedish format. It is safe for
// concurrent use.
type Swedish struct {
	first []rune
	last  []rune
	digit []rune

	mu  sync.Mutex
	rnd *rand.Rand
}

var _ Generator = (*Swedish)(nil)

// NewSwedish returns a generator for Swedish plates.
func NewSwedish(opts ...Option) *Swedish {
	s := &Swedish{
		first: []rune(FirstLetters),
		last:  []rune(LastLetters),
		digit: []rune(Digits),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Generate returns a plate such as "ÅBC 12D".
func (s *Swedish) Generate() domain.LicensePlate {
	var b strings.Builder
	b.Grow(12)

	s.mu.Lock()
	s.pick(&b, s.first, 3)
	b.WriteByte(' ')
	s.pick(&b, s.digit, 2)
	s.pick(&b, s.last, 1)
	s.mu.Unlock()

	return domain.LicensePlate(b.String())
}

func (s *Swedish) pick(b *strings.Builder, alphabet []rune, n int) {
	for range n {
		b.WriteRune(alphabet[s.intN(len(alphabet))])
	}
}

func (s *Swedish) intN(n int) int {
	if s.rnd != nil {
		return s.rnd.IntN(n)
	}

	return rand.IntN(n) //nolint: gosec
}
