package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelLabel(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "tag moves into parentheses", input: "gpt-4o:latest", want: "Gpt 4o (Latest)"},
		{name: "parenthesized tag not duplicated", input: "mistral:(alpha)", want: "Mistral (Alpha)"},
		{name: "no tag", input: "llama3", want: "Llama3"},
		{name: "hyphens only", input: "deepseek-r1-distill", want: "Deepseek R1 Distill"},
		{name: "remainder untouched", input: "qwen2.5-coder:7b-instruct", want: "Qwen2.5 Coder (7b Instruct)"},
		{name: "mixed case kept", input: "phi3:miniQ4", want: "Phi3 (MiniQ4)"},
		{name: "leftmost colon wins", input: "a:b:c", want: "A (B:c)"},
		{name: "consecutive spaces preserved", input: "a--b", want: "A  B"},
		{name: "already capitalized", input: "Llama:Latest", want: "Llama (Latest)"},
		{name: "trailing colon alone", input: "model:", want: "Model:"},
		{name: "bare parenthesis word", input: "x ( y", want: "X ( Y"},
		{name: "namespaced model", input: "library/llama3:8b", want: "Library/llama3 (8b)"},
		{name: "unicode upper-casing", input: "ßeta", want: "SSeta"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ModelLabel(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, ModelLabel(tc.input))
		})
	}
}

func TestModelLabels(t *testing.T) {
	got := ModelLabels([]string{"llama3:latest", "", "nomic-embed-text"})
	assert.Equal(t, []string{"Llama3 (Latest)", "", "Nomic Embed Text"}, got)
	assert.Empty(t, ModelLabels(nil))
}
