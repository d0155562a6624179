package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaretIsOnFirstLine(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		caret int
		want  bool
	}{
		{name: "empty text", text: "", caret: 5, want: true},
		{name: "caret at start", text: "a\nb", caret: 0, want: true},
		{name: "negative caret", text: "a\nb", caret: -3, want: true},
		{name: "single line", text: "hello world", caret: 6, want: true},
		{name: "before newline", text: "ab\ncd", caret: 2, want: true},
		{name: "right after newline", text: "ab\ncd", caret: 3, want: false},
		{name: "second line", text: "ab\ncd", caret: 5, want: false},
		{name: "caret past end", text: "ab\ncd", caret: 99, want: false},
		{name: "caret past end single line", text: "abcd", caret: 99, want: true},
		{name: "multibyte runes", text: "héllo\nwörld", caret: 5, want: true},
		{name: "multibyte runes second line", text: "héllo\nwörld", caret: 7, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CaretIsOnFirstLine(tc.text, tc.caret))
		})
	}
}

func TestCaretIsOnLastLine(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		caret int
		want  bool
	}{
		{name: "empty text", text: "", caret: 0, want: true},
		{name: "single line", text: "abc", caret: 1, want: true},
		{name: "first of two lines", text: "ab\ncd", caret: 1, want: false},
		{name: "on the newline", text: "ab\ncd", caret: 2, want: false},
		{name: "second line", text: "ab\ncd", caret: 3, want: true},
		{name: "at end", text: "ab\ncd", caret: 5, want: true},
		{name: "negative caret", text: "ab\ncd", caret: -1, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CaretIsOnLastLine(tc.text, tc.caret))
		})
	}
}
