package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sirkon/fieldguard/internal/config"
	"github.com/sirkon/fieldguard/internal/engine"
	"github.com/sirkon/fieldguard/internal/rules"
)

// app is state shared by subcommands.
type app struct {
	configPath string
	dir        string
	verbose    bool
	colorMode  string

	log *slog.Logger
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fgctl",
		Short: "Check assignments to annotated struct fields",
		Long: `fgctl loads Go packages and reports assignments to struct fields annotated
with //fieldguard:<Marker> directives or fieldguard struct tags made outside
of places their rules permit.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: nearest "+config.FileName+")")
	rootCmd.PersistentFlags().StringVarP(&a.dir, "dir", "C", "", "directory to load packages and look up the config from")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")

	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "on", "off"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newRulesCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	switch a.colorMode {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("unknown color mode %q", a.colorMode)
	}

	path := a.configPath
	if path == "" {
		start, err := a.searchDir()
		if err != nil {
			return err
		}
		path = config.Find(start)
	}
	if path == "" {
		a.log.Debug("no config file found, using builtin rules")
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("config loaded", slog.String("path", path))

	return nil
}

// searchDir is where config lookup starts: the --dir directory when given,
// the working directory otherwise.
func (a *app) searchDir() (string, error) {
	if a.dir != "" {
		dir, err := filepath.Abs(a.dir)
		if err != nil {
			return "", fmt.Errorf("resolve directory %s: %w", a.dir, err)
		}
		return dir, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return wd, nil
}

func (a *app) engine() (*engine.Engine, error) {
	return a.cfg.Engine(rules.Builtin(), a.log)
}
