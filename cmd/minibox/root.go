package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rcarmo/go-minibox/pkg/applets"
	"github.com/rcarmo/go-minibox/pkg/config"
	"github.com/rcarmo/go-minibox/pkg/core"
	"github.com/rcarmo/go-minibox/pkg/logging"
	"github.com/rcarmo/go-minibox/pkg/registry"
	"github.com/rcarmo/go-minibox/pkg/sandbox"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// app holds the state shared by the root command and every applet command.
type app struct {
	stdio    *core.Stdio
	cfgFile  string
	logLevel string
	registry *registry.Registry
}

// setup loads the configuration and wires logging, the sandbox and the
// applet table from it.
func (a *app) setup() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := logging.New(a.stdio.Err, logging.Options{
		Level:  level,
		Format: cfg.Log.Format,
		Prefix: config.AppName,
	})
	if err != nil {
		return err
	}
	a.stdio.Log = logger

	if rules, ok := cfg.SandboxRules(); ok {
		if err := sandbox.Configure(rules); err != nil {
			return fmt.Errorf("sandbox: %w", err)
		}
		logger.Debug("sandbox enabled", "rules", len(rules.Rules), "cwd", rules.AllowCwd)
	}

	sub, err := cfg.Subtraction()
	if err != nil {
		return err
	}
	a.registry = applets.Default(applets.Options{
		ChmodSubtraction: sub,
		GrepPOSIX:        cfg.Grep.POSIX,
	})
	return nil
}

// exec runs one applet and converts a failure into an ExitError.
func (a *app) exec(name string, args []string) error {
	if code := a.registry.Exec(a.stdio, name, args); code != core.ExitSuccess {
		return &ExitError{Code: code}
	}
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	// Only names and usage lines are read from this table; the configured
	// one is built in setup.
	table := applets.Default(applets.Options{})

	root := &cobra.Command{
		Use:   config.AppName + " <command> [args...]",
		Short: "A minimal set of POSIX file utilities",
		Long: titleStyle.Render(config.AppName) + subtitleStyle.Render(" - a minimal set of POSIX file utilities") + `

Each command also runs when the binary is invoked through a link named after it.

` + subtitleStyle.Render("Commands:") + "\n" + usageList(table),
		Args:             cobra.ArbitraryArgs,
		TraverseChildren: true,
		SilenceErrors:    true,
		SilenceUsage:     true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := a.setup(); err != nil {
				return &ExitError{Code: core.ExitInvalidCommand, Err: err}
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				printCommandList(a.stdio, table)
				return &ExitError{Code: core.ExitInvalidCommand}
			}
			return a.exec(args[0], args[1:])
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.stdio.Out)
	root.SetErr(a.stdio.Err)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "diagnostic level: debug, info, warn, error (default from config, warn)")
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/minibox/config.yaml)")

	for _, name := range table.Names() {
		applet, _ := table.Lookup(name)
		root.AddCommand(&cobra.Command{
			Use:                applet.Usage,
			Short:              "Run " + name,
			DisableFlagParsing: true,
			RunE: func(_ *cobra.Command, args []string) error {
				return a.exec(name, args)
			},
		})
	}
	return root
}

func usageList(r *registry.Registry) string {
	var b strings.Builder
	for _, name := range r.Names() {
		applet, _ := r.Lookup(name)
		fmt.Fprintf(&b, "  %s\n", applet.Usage)
	}
	return b.String()
}

func printCommandList(stdio *core.Stdio, r *registry.Registry) {
	stdio.Println("Currently defined functions:")
	stdio.Println(" " + strings.Join(r.Names(), " "))
}
