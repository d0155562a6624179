package main

import (
	"fmt"
	"strconv"
	"strings"

	"kollama/internal/config"
	"kollama/internal/ollama"
	"kollama/internal/presentation/theme"
	"kollama/internal/textutil"

	"github.com/spf13/cobra"
)

func newURLCommand(a *app) *cobra.Command {
	var base string
	var plain bool

	cmd := &cobra.Command{
		Use:   "url [endpoint]",
		Short: "Print the server URL for an endpoint",
		Long:  "Print the /api/ URL for an endpoint on the configured server. With --plain the endpoint is joined without the /api/ prefix.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if base == "" {
				base = a.cfg.ServerURL
			}
			endpoint := ""
			if len(args) == 1 {
				endpoint = args[0]
			}

			var url string
			if plain {
				url = ollama.BuildServerURL(base, endpoint)
			} else {
				url = ollama.ServerURL(base, endpoint)
			}
			a.diagnostics.Debug("url %q -> %s", endpoint, url)
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Server base URL (default from settings)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Join without the /api/ prefix")
	return cmd
}

func newEndpointsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List the API URLs the widget calls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, endpoint := range ollama.Endpoints {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", endpoint, a.cfg.APIURL(endpoint))
			}
			return nil
		},
	}
}

func newLabelCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "label [model...]",
		Short: "Format model names as picker labels",
		Long:  "Format model names the way the model picker shows them. Without arguments the configured model is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if a.cfg.Model == "" {
					return fmt.Errorf("no model given and none configured")
				}
				args = []string{a.cfg.Model}
			}
			for _, label := range a.labels.Labels(args) {
				fmt.Fprintln(cmd.OutOrStdout(), label)
			}
			return nil
		},
	}
}

func newContrastCommand(a *app) *cobra.Command {
	var swatch bool

	cmd := &cobra.Command{
		Use:   "contrast [#rrggbb]",
		Short: "Classify a background color as dark or light",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex := a.cfg.BackgroundColor
			if len(args) == 1 {
				hex = args[0]
			}
			contrast := theme.ContrastFromHex(hex)
			a.diagnostics.Debug("contrast %q -> %s", hex, contrast)
			if swatch && hex != "" {
				fmt.Fprintln(cmd.OutOrStdout(), renderSwatch(hex, contrast, string(contrast)))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), contrast)
			return nil
		},
	}

	cmd.Flags().BoolVar(&swatch, "swatch", false, "Render the result on the background color")
	return cmd
}

func newIconCommand(a *app) *cobra.Command {
	var background string
	var overrides map[string]string

	cmd := &cobra.Command{
		Use:   "icon",
		Short: "Print the icon asset for the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := a.cfg.IconFlags.Map()
			for key, raw := range overrides {
				enabled, err := strconv.ParseBool(strings.TrimSpace(raw))
				if err != nil {
					return fmt.Errorf("flag %s: %w", key, err)
				}
				values[key] = enabled
			}
			flags, err := theme.IconFlagsFromMap(values)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("background") {
				background = a.cfg.BackgroundColor
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.IconPath(flags, theme.ContrastFromHex(background)))
			return nil
		},
	}

	cmd.Flags().StringVar(&background, "background", "", "Background color as #rrggbb (default from settings)")
	cmd.Flags().StringToStringVar(&overrides, "flag", nil, "Icon switch override, e.g. useOutlinedIcon=true")
	return cmd
}

func newCaretCommand(a *app) *cobra.Command {
	var text string
	var pos int
	var last bool

	cmd := &cobra.Command{
		Use:   "caret",
		Short: "Report whether a caret sits on the first (or last) line of text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text = strings.ReplaceAll(text, `\n`, "\n")
			var result bool
			if last {
				result = textutil.CaretIsOnLastLine(text, pos)
			} else {
				result = textutil.CaretIsOnFirstLine(text, pos)
			}
			a.diagnostics.Debug("caret %d (last=%t) -> %t", pos, last, result)
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", `Text to inspect; "\n" is read as a line break`)
	cmd.Flags().IntVar(&pos, "pos", 0, "Caret offset in characters")
	cmd.Flags().BoolVar(&last, "last", false, "Check the last line instead of the first")
	return cmd
}

func newLogCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log <level> [message...]",
		Short: "Write a message through the widget logger",
		Long:  "Write a message through the widget logger. warn and error always print; debug and info print only with debugLogs enabled.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				values = append(values, arg)
			}
			a.console.Log(args[0], values...)
			return nil
		},
	}
}

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect widget settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configFile
			if path == "" {
				resolved, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = resolved
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return cmd
}
