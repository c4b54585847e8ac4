package libdiff

import (
	"unicode"
	"unicode/utf8"
)

type tokenClass int

const (
	wordClass tokenClass = iota
	spaceClass
	punctClass
)

func classOf(r rune) tokenClass {
	switch {
	case unicode.IsSpace(r):
		return spaceClass
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r):
		return wordClass
	default:
		return punctClass
	}
}

// Tokenize splits s into maximal runs of word characters, whitespace and
// everything else. Concatenating the tokens gives back s.
func Tokenize(s string) []string {
	var res []string
	start := 0
	var cur tokenClass
	for i, r := range s {
		c := classOf(r)
		if i == 0 {
			cur = c
			continue
		}
		if c != cur {
			res = append(res, s[start:i])
			start = i
			cur = c
		}
	}
	if start < len(s) {
		res = append(res, s[start:])
	}
	return res
}

// The synthetic alphabet lives in the private use areas so that the
// character diff's semantic scoring sees every token the same way.
const (
	bmpPUAStart        = 0xE000
	bmpPUASize         = 0xF8FF - 0xE000 + 1
	plane15Start       = 0xF0000
	plane16Start       = 0x100000
	planePUASize       = 0xFFFD + 1
	maxSyntheticTokens = bmpPUASize + 2*planePUASize
)

func syntheticRune(i int) rune {
	if i < bmpPUASize {
		return rune(bmpPUAStart + i)
	}
	i -= bmpPUASize
	if i < planePUASize {
		return rune(plane15Start + i)
	}
	i -= planePUASize
	return rune(plane16Start + i)
}

// tokenTable maps each distinct token to one synthetic rune and back. A
// table belongs to a single text diff.
type tokenTable struct {
	runes  map[string]rune
	tokens map[rune]string
	limit  int
}

func newTokenTable(limit int) *tokenTable {
	return &tokenTable{
		runes:  map[string]rune{},
		tokens: map[rune]string{},
		limit:  min(limit, maxSyntheticTokens),
	}
}

// encode returns the synthetic string for toks. It returns false if the
// table would need more distinct tokens than its limit.
func (t *tokenTable) encode(toks []string) ([]rune, bool) {
	res := make([]rune, len(toks))
	for i, tok := range toks {
		r, ok := t.runes[tok]
		if !ok {
			if len(t.runes) >= t.limit {
				return nil, false
			}
			r = syntheticRune(len(t.runes))
			t.runes[tok] = r
			t.tokens[r] = tok
		}
		res[i] = r
	}
	return res, true
}

// decode returns the tokens encoded in s.
func (t *tokenTable) decode(s string) []string {
	res := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		res = append(res, t.tokens[r])
	}
	return res
}

// decodedLen returns the byte length of the text encoded in s.
func (t *tokenTable) decodedLen(s string) int {
	n := 0
	for _, r := range s {
		n += len(t.tokens[r])
	}
	return n
}
