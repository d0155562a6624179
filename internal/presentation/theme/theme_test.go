package theme

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContrastFromHex(t *testing.T) {
	cases := []struct {
		name string
		hex  string
		want Contrast
	}{
		{name: "empty", hex: "", want: ContrastLight},
		{name: "too short", hex: "#fff", want: ContrastLight},
		{name: "white is bright", hex: "#ffffff", want: ContrastDark},
		{name: "black is dim", hex: "#000000", want: ContrastLight},
		{name: "pure green", hex: "#00ff00", want: ContrastDark},
		{name: "pure red", hex: "#ff0000", want: ContrastLight},
		{name: "upper case digits", hex: "#EEEEEE", want: ContrastDark},
		{name: "exactly threshold stays light", hex: "#808080", want: ContrastLight},
		{name: "just above threshold", hex: "#818181", want: ContrastDark},
		{name: "extra characters ignored", hex: "#ffffffaa", want: ContrastDark},
		{name: "first character skipped", hex: "xffffff", want: ContrastDark},
		{name: "non hex channel", hex: "#zzffff", want: ContrastLight},
		{name: "partial pair", hex: "#fgfgfg", want: ContrastLight},
		{name: "multibyte first character skipped whole", hex: "éffffff", want: ContrastDark},
		{name: "short in characters despite byte length", hex: "#ééé", want: ContrastLight},
		{name: "multibyte channel", hex: "#ééffff", want: ContrastLight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ContrastFromHex(tc.hex)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, ContrastFromHex(tc.hex))
		})
	}
}

func TestParseHexPrefix(t *testing.T) {
	assert.Equal(t, 255.0, parseHexPrefix("ff"))
	assert.Equal(t, 15.0, parseHexPrefix("fg"))
	assert.Equal(t, 15.0, parseHexPrefix(" f"))
	assert.Equal(t, -15.0, parseHexPrefix("-f"))
	assert.True(t, math.IsNaN(parseHexPrefix("0x")))
	assert.True(t, math.IsNaN(parseHexPrefix("zz")))
	assert.True(t, math.IsNaN(parseHexPrefix("")))
}

func TestLuma(t *testing.T) {
	assert.InDelta(t, 255.0, Luma(255, 255, 255), 1e-9)
	assert.InDelta(t, 0.0, Luma(0, 0, 0), 1e-9)
	assert.InDelta(t, 0.7152*255, Luma(0, 255, 0), 1e-9)
}

func TestIconPath(t *testing.T) {
	cases := []struct {
		name     string
		flags    IconFlags
		contrast Contrast
		want     string
	}{
		{
			name:     "filled dark beats outlined",
			flags:    IconFlags{UseFilledDarkIcon: true, UseOutlinedIcon: true},
			contrast: ContrastLight,
			want:     "assets/logo-filled-dark.svg",
		},
		{
			name:     "fallback follows contrast",
			flags:    IconFlags{},
			contrast: ContrastDark,
			want:     "assets/logo-filled-dark.svg",
		},
		{
			name:     "fallback light",
			contrast: ContrastLight,
			want:     "assets/logo-filled-light.svg",
		},
		{
			name:     "filled light beats outlined variants",
			flags:    IconFlags{UseFilledLightIcon: true, UseOutlinedDarkIcon: true},
			contrast: ContrastDark,
			want:     "assets/logo-filled-light.svg",
		},
		{
			name:     "outlined dark beats outlined light",
			flags:    IconFlags{UseOutlinedDarkIcon: true, UseOutlinedLightIcon: true},
			contrast: ContrastLight,
			want:     "assets/logo-outlined-dark.svg",
		},
		{
			name:     "outlined light ignores contrast",
			flags:    IconFlags{UseOutlinedLightIcon: true},
			contrast: ContrastDark,
			want:     "assets/logo-outlined-light.svg",
		},
		{
			name:     "generic outlined follows contrast",
			flags:    IconFlags{UseOutlinedIcon: true},
			contrast: ContrastDark,
			want:     "assets/logo-outlined-dark.svg",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IconPath(tc.flags, tc.contrast))
		})
	}
}

func TestIconFlagsFromMap(t *testing.T) {
	flags, err := IconFlagsFromMap(map[string]bool{
		"useOutlinedIcon":   true,
		"useFilledDarkIcon": false,
		"debugLogs":         true,
	})
	require.NoError(t, err)
	assert.Equal(t, IconFlags{UseOutlinedIcon: true}, flags)

	empty, err := IconFlagsFromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, IconFlags{}, empty)
}

func TestIconFlagsMapRoundTrip(t *testing.T) {
	original := IconFlags{UseFilledLightIcon: true, UseOutlinedIcon: true}

	values := original.Map()
	assert.Len(t, values, 5)
	assert.True(t, values["useFilledLightIcon"])

	decoded, err := IconFlagsFromMap(values)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
