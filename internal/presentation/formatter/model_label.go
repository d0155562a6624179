package formatter

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// trailingTagPattern matches ":tag" or ":(tag)" running to the end of the name.
var trailingTagPattern = regexp.MustCompile(`:\(?(.+?)\)?$`)

// ModelLabel turns a model identifier into the label shown in the model
// picker, e.g. "gpt-4o:latest" becomes "Gpt 4o (Latest)".
//
// Hyphens become spaces, a trailing tag moves into parentheses, and every
// word gets its first character upper-cased. Words that open with "(" have the
// character after the parenthesis upper-cased instead. The remainder of each
// word is left as is.
func ModelLabel(text string) string {
	if text == "" {
		return ""
	}

	label := strings.ReplaceAll(text, "-", " ")
	if loc := trailingTagPattern.FindStringSubmatchIndex(label); loc != nil {
		label = label[:loc[0]] + " (" + label[loc[2]:loc[3]] + ")"
	}

	words := strings.Split(label, " ")
	for i, word := range words {
		words[i] = capitalizeWord(word)
	}
	return strings.Join(words, " ")
}

// ModelLabels formats names in order.
func ModelLabels(names []string) []string {
	labels := make([]string, 0, len(names))
	for _, name := range names {
		labels = append(labels, ModelLabel(name))
	}
	return labels
}

func capitalizeWord(word string) string {
	if word == "" {
		return word
	}
	if word[0] == '(' {
		if len(word) < 2 {
			return word
		}
		return "(" + upperFirst(word[1:])
	}
	return upperFirst(word)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	// cases.Caser holds state, so a fresh one per call keeps this safe for concurrent use.
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
