// Package heading assigns outline depths to the parenthesized markers that
// open paragraphs of statute text: (a), (1), (A), (i), (I).
package heading

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Category is the history-free shape of a heading token.
type Category int

const (
	Unclassified Category = iota
	LowerLetter
	Number
	UpperLetter
	LowerRoman
	UpperRoman
)

func (c Category) String() string {
	switch c {
	case LowerLetter:
		return "lower_letter"
	case Number:
		return "number"
	case UpperLetter:
		return "upper_letter"
	case LowerRoman:
		return "lower_roman"
	case UpperRoman:
		return "upper_roman"
	}
	return "unclassified"
}

// Level is the nesting depth a category occupies in a statute outline.
func (c Category) Level() int {
	switch c {
	case LowerLetter:
		return 1
	case Number:
		return 2
	case UpperLetter:
		return 3
	case LowerRoman:
		return 4
	case UpperRoman:
		return 5
	}
	return 0
}

// romanDigit is one of the seven roman numeral characters.
type romanDigit int

const (
	romanI romanDigit = iota
	romanV
	romanX
	romanL
	romanC
	romanD
	romanM
	numRomanDigits
)

var romanValues = [numRomanDigits]int{
	romanI: 1,
	romanV: 5,
	romanX: 10,
	romanL: 50,
	romanC: 100,
	romanD: 500,
	romanM: 1000,
}

// digitOf maps an uppercase roman character to its digit.
func digitOf(r rune) (romanDigit, bool) {
	switch r {
	case 'I':
		return romanI, true
	case 'V':
		return romanV, true
	case 'X':
		return romanX, true
	case 'L':
		return romanL, true
	case 'C':
		return romanC, true
	case 'D':
		return romanD, true
	case 'M':
		return romanM, true
	}
	return 0, false
}

// IsNumber reports whether the whole token parses as a base-10 integer.
func IsNumber(tok string) bool {
	_, err := strconv.Atoi(tok)
	return err == nil
}

// IsLowerLetter reports whether tok is a single lowercase letter.
// Compound markers such as "ia" are never letters.
func IsLowerLetter(tok string) bool {
	r, ok := singleRune(tok)
	return ok && unicode.IsLower(r)
}

// IsUpperLetter reports whether tok is a single uppercase letter.
func IsUpperLetter(tok string) bool {
	r, ok := singleRune(tok)
	return ok && unicode.IsUpper(r)
}

func singleRune(tok string) (rune, bool) {
	if IsNumber(tok) || utf8.RuneCountInString(tok) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(tok)
	return r, unicode.IsLetter(r)
}

// IsLowerRoman reports whether every character of tok is one of m, d, c, l, x, v, i.
func IsLowerRoman(tok string) bool {
	return isRoman(tok, unicode.IsLower)
}

// IsUpperRoman reports whether every character of tok is one of M, D, C, L, X, V, I.
func IsUpperRoman(tok string) bool {
	return isRoman(tok, unicode.IsUpper)
}

func isRoman(tok string, inCase func(rune) bool) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !inCase(r) {
			return false
		}
		if _, ok := digitOf(unicode.ToUpper(r)); !ok {
			return false
		}
	}
	return true
}

// RomanValue converts a roman numeral of either case to an integer.
// A pair whose first digit is smaller than the second counts as their
// difference. Characters outside the numeral alphabet count as zero.
func RomanValue(tok string) int {
	vals := make([]int, 0, len(tok))
	for _, r := range tok {
		d, ok := digitOf(unicode.ToUpper(r))
		if !ok {
			vals = append(vals, 0)
			continue
		}
		vals = append(vals, romanValues[d])
	}

	sum := 0
	for i := 0; i < len(vals); i++ {
		if i+1 < len(vals) && vals[i] < vals[i+1] {
			sum += vals[i+1] - vals[i]
			i++
			continue
		}
		sum += vals[i]
	}
	return sum
}

// Classify returns the category of tok without regard to history.
// Single roman characters ("i", "V") report their letter category; whether
// they read as numerals depends on where the document is, which the
// Resolver decides.
func Classify(tok string) Category {
	switch {
	case IsLowerLetter(tok):
		return LowerLetter
	case IsNumber(tok):
		return Number
	case IsUpperLetter(tok):
		return UpperLetter
	case IsLowerRoman(tok):
		return LowerRoman
	case IsUpperRoman(tok):
		return UpperRoman
	}
	return Unclassified
}
