package textutil

import "strings"

// CaretIsOnFirstLine reports whether caret sits on the first line of text.
// caret counts runes; offsets past the end clamp to the full text.
func CaretIsOnFirstLine(text string, caret int) bool {
	if text == "" || caret <= 0 {
		return true
	}
	return !strings.ContainsRune(prefix(text, caret), '\n')
}

// CaretIsOnLastLine reports whether no line break follows caret.
func CaretIsOnLastLine(text string, caret int) bool {
	if text == "" {
		return true
	}
	if caret < 0 {
		caret = 0
	}
	runes := []rune(text)
	if caret >= len(runes) {
		return true
	}
	return !strings.ContainsRune(string(runes[caret:]), '\n')
}

func prefix(text string, limit int) string {
	runes := []rune(text)
	if limit >= len(runes) {
		return text
	}
	return string(runes[:limit])
}
