package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dori/weezy/internal/app"
	"github.com/dori/weezy/internal/config"
	"github.com/dori/weezy/internal/logging"
	"github.com/dori/weezy/internal/ui"
	"github.com/dori/weezy/internal/ui/theme"
)

var version = "0.1.0"

// cli holds the persistent flags and what they resolve to
type cli struct {
	configPath string
	debug      bool

	cfg config.Config
	log *zap.Logger
}

// NewRootCmd builds the weezy command tree
func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "weezy",
		Short: "Weezy - your enterprise workspace in the terminal",
		Long: `Weezy brings your files, knowledge base assistant, tasks and
storage overview into one terminal dashboard.

Run without arguments to start the dashboard.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI("", "")
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/weezy/config.yaml)")
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "write debug logs to the log file")

	root.AddCommand(
		NewTUICmd(c),
		NewFilesCmd(c),
		NewTasksCmd(c),
		NewAskCmd(c),
		NewVersionCmd(),
	)
	return root
}

// setup loads the config and builds the logger before any subcommand runs
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.debug {
		cfg.Debug = true
	}

	log, err := logging.New(logging.Options{Debug: cfg.Debug, File: cfg.LogFile})
	if err != nil {
		return err
	}
	log.Debug("config loaded", zap.String("file", cfg.File), zap.String("command", cmd.Name()))

	c.cfg = cfg
	c.log = log
	return nil
}

// open loads the catalog without taking the instance lock
func (c *cli) open() (*app.App, error) {
	return app.New(c.cfg, c.log)
}

// NewTUICmd starts the dashboard with optional overrides
func NewTUICmd(c *cli) *cobra.Command {
	var view, themeName string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the dashboard",
		Long: fmt.Sprintf(`Start the interactive dashboard.

Views:  %s
Themes: %s`, strings.Join(config.Views, ", "), strings.Join(theme.Names(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(view, themeName)
		},
	}

	cmd.Flags().StringVar(&view, "view", "", "starting view")
	cmd.Flags().StringVar(&themeName, "theme", "", "color theme")
	return cmd
}

func (c *cli) runTUI(view, themeName string) error {
	cfg := c.cfg
	if view != "" {
		cfg.StartView = strings.ToLower(view)
	}
	if themeName != "" {
		cfg.Theme = strings.ToLower(themeName)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	application, err := app.New(cfg, c.log, app.WithInstanceLock())
	if err != nil {
		return err
	}
	defer application.Close()

	p := tea.NewProgram(
		ui.NewRootModel(application),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

// NewVersionCmd prints the version
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "weezy v%s\n", version)
		},
	}
}
