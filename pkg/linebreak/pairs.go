package linebreak

import (
	"github.com/cockroachdb/errors"
)

// Pair is an opening and closing bracket that can change the indentation.
type Pair struct {
	Open  rune
	Close rune
}

// DefaultPairs returns (), [] and {} in that order.
func DefaultPairs() []Pair {
	return []Pair{{'(', ')'}, {'[', ']'}, {'{', '}'}}
}

// ParsePairs turns strings such as "()" into pairs. Every string must hold
// exactly two runes.
func ParsePairs(specs []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(specs))
	for _, s := range specs {
		r := []rune(s)
		if len(r) != 2 {
			return nil, errors.Newf("invalid delimiter pair %q: need exactly an opening and a closing character", s)
		}
		if r[0] == r[1] {
			return nil, errors.Newf("invalid delimiter pair %q: opening and closing characters must differ", s)
		}
		pairs = append(pairs, Pair{Open: r[0], Close: r[1]})
	}
	return pairs, nil
}

// String returns the pair as its two characters.
func (p Pair) String() string {
	return string([]rune{p.Open, p.Close})
}

func opener(pairs []Pair, r rune) int {
	for i, p := range pairs {
		if p.Open == r {
			return i
		}
	}
	return -1
}

func closer(pairs []Pair, r rune) int {
	for i, p := range pairs {
		if p.Close == r {
			return i
		}
	}
	return -1
}
