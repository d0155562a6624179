package theme

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

const (
	IconFilledDark    = "assets/logo-filled-dark.svg"
	IconFilledLight   = "assets/logo-filled-light.svg"
	IconOutlinedDark  = "assets/logo-outlined-dark.svg"
	IconOutlinedLight = "assets/logo-outlined-light.svg"
)

// IconFlags holds the icon style switches from the widget settings.
type IconFlags struct {
	UseFilledDarkIcon    bool `mapstructure:"useFilledDarkIcon" yaml:"useFilledDarkIcon"`
	UseFilledLightIcon   bool `mapstructure:"useFilledLightIcon" yaml:"useFilledLightIcon"`
	UseOutlinedDarkIcon  bool `mapstructure:"useOutlinedDarkIcon" yaml:"useOutlinedDarkIcon"`
	UseOutlinedLightIcon bool `mapstructure:"useOutlinedLightIcon" yaml:"useOutlinedLightIcon"`
	UseOutlinedIcon      bool `mapstructure:"useOutlinedIcon" yaml:"useOutlinedIcon"`
}

// IconFlagsFromMap decodes flags keyed by their setting names. Unknown keys
// are ignored.
func IconFlagsFromMap(values map[string]bool) (IconFlags, error) {
	var flags IconFlags
	if err := mapstructure.Decode(values, &flags); err != nil {
		return IconFlags{}, fmt.Errorf("decode icon flags: %w", err)
	}
	return flags, nil
}

// IconPath picks the widget icon asset. Explicit variants win in the order
// filled dark, filled light, outlined dark, outlined light; the generic
// outlined switch and the default filled icon follow the background contrast.
func IconPath(flags IconFlags, contrast Contrast) string {
	switch {
	case flags.UseFilledDarkIcon:
		return IconFilledDark
	case flags.UseFilledLightIcon:
		return IconFilledLight
	case flags.UseOutlinedDarkIcon:
		return IconOutlinedDark
	case flags.UseOutlinedLightIcon:
		return IconOutlinedLight
	case flags.UseOutlinedIcon:
		return fmt.Sprintf("assets/logo-outlined-%s.svg", contrast)
	}
	return fmt.Sprintf("assets/logo-filled-%s.svg", contrast)
}

// Map returns the flags keyed by their setting names.
func (f IconFlags) Map() map[string]bool {
	return map[string]bool{
		"useFilledDarkIcon":    f.UseFilledDarkIcon,
		"useFilledLightIcon":   f.UseFilledLightIcon,
		"useOutlinedDarkIcon":  f.UseOutlinedDarkIcon,
		"useOutlinedLightIcon": f.UseOutlinedLightIcon,
		"useOutlinedIcon":      f.UseOutlinedIcon,
	}
}
