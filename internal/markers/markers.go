// Package markers pulls the parenthesized outline markers off the front of a
// paragraph of statute text.
//
// Extraction is best-effort: text that is not already split into paragraphs,
// or markers glued to punctuation ("(a)," or "(a)text"), yield no tokens and
// the paragraph is simply treated as unmarked.
package markers

import "strings"

const nbsp = "\u00a0"

// Normalize replaces non-breaking spaces with ordinary spaces.
func Normalize(text string) string {
	return strings.ReplaceAll(text, nbsp, " ")
}

// IsMarker reports whether word is a parenthesized marker such as "(a)".
func IsMarker(word string) bool {
	if len(word) < 3 {
		return false
	}
	return word[0] == '(' && word[len(word)-1] == ')'
}

// Strip removes every parenthesis from word.
func Strip(word string) string {
	return strings.NewReplacer("(", "", ")", "").Replace(word)
}

// Leading returns the stripped markers that open text, in order.
// "(e) (1) The board shall" yields ["e", "1"].
func Leading(text string) []string {
	words := strings.Split(Normalize(text), " ")
	i := 0
	for i < len(words) && words[i] == "" {
		i++
	}

	var out []string
	for ; i < len(words) && IsMarker(words[i]); i++ {
		out = append(out, Strip(words[i]))
	}
	return out
}

// StartsWithMarker reports whether the first word of line is a marker.
func StartsWithMarker(line string) bool {
	fields := strings.Fields(Normalize(line))
	return len(fields) > 0 && IsMarker(fields[0])
}
