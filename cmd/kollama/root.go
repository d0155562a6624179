package main

import (
	"fmt"
	"os"

	"kollama/internal/config"
	"kollama/internal/logging"
	"kollama/internal/presentation/formatter"
	"kollama/internal/security/redaction"
	"kollama/internal/shared/utils"

	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand once configuration is loaded.
type app struct {
	configFile string
	debug      bool
	logLevel   string
	logToFile  bool

	cfg         config.Configuration
	diagnostics logging.Logger
	logFile     *os.File
	console     *logging.DebugLogger
	labels      *formatter.LabelCache
}

func newRootCommand() *cobra.Command {
	a := &app{labels: formatter.NewLabelCache(0)}

	rootCmd := &cobra.Command{
		Use:           "kollama",
		Short:         "Helpers behind the Ollama desktop widget",
		Long:          "Build Ollama API URLs, format model labels and resolve widget theming from the widget settings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Settings file (default $HOME/.kollama/kollama.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable debug logs")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Diagnostics level: debug, info, warn or error (default warn, debug with debug logs)")
	rootCmd.PersistentFlags().BoolVar(&a.logToFile, "log-file", false, "Also write diagnostics to kollama-debug.log in $KOLLAMA_LOG_DIR or $HOME")

	rootCmd.AddCommand(newURLCommand(a))
	rootCmd.AddCommand(newEndpointsCommand(a))
	rootCmd.AddCommand(newLabelCommand(a))
	rootCmd.AddCommand(newContrastCommand(a))
	rootCmd.AddCommand(newIconCommand(a))
	rootCmd.AddCommand(newCaretCommand(a))
	rootCmd.AddCommand(newLogCommand(a))
	rootCmd.AddCommand(newConfigCommand(a))

	return rootCmd
}

func (a *app) initialize(cmd *cobra.Command) error {
	v, err := config.NewViper(a.configFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlag(config.KeyDebugLogs, cmd.Root().PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("bind debug flag: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := a.diagnosticLevel()
	if err != nil {
		return err
	}
	a.diagnostics = logging.FromUtils(utils.New(cmd.ErrOrStderr(), level).WithComponent("kollama"))
	if a.logToFile {
		file, err := utils.OpenLogFile()
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = file
		a.diagnostics = logging.Multi(a.diagnostics, logging.FromUtils(utils.New(file, level).WithComponent("kollama")))
	}

	a.console = logging.NewDebugLogger(
		logging.WithFlags(&a.cfg),
		logging.WithConsole(logging.NewTerminalConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())),
		logging.WithDiagnostics(a.diagnostics),
	)
	a.diagnostics.Debug("settings loaded: server=%s model=%q", redaction.RedactURL(cfg.ServerURL), cfg.Model)
	return nil
}

// diagnosticLevel resolves --log-level, falling back to debug when debug logs
// are enabled and warn otherwise.
func (a *app) diagnosticLevel() (utils.LogLevel, error) {
	if a.logLevel != "" {
		level, ok := utils.ParseLevel(a.logLevel)
		if !ok {
			return utils.WARN, fmt.Errorf("invalid log level %q", a.logLevel)
		}
		return level, nil
	}
	if a.cfg.DebugLogs {
		return utils.DEBUG, nil
	}
	return utils.WARN, nil
}

func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
