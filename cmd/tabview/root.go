package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tabview/internal/config"
	"tabview/internal/logging"
	"tabview/internal/tabs"
	"tabview/internal/trace"
	"tabview/internal/ui"
)

var version = "0.1.0"

type options struct {
	configPath string
	tabsFile   string
	noMouse    bool
	inline     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "tabview",
		Short: "Two-level tab selector in the terminal",
		Long: `tabview shows a row of main tabs, a row of sub-tabs for the active main tab,
and a panel echoing the current selection.

Click a tab, or use ←/→ to move, tab to switch rows, ? for all keys.

The tab map comes from --tabs (a YAML mapping of main tab to a list of
sub-tabs, in display order) or the built-in sample.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tabview/config.yaml)")
	root.PersistentFlags().StringVar(&opts.tabsFile, "tabs", "", "YAML tab map file (overrides tabs.file)")
	root.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse clicks")
	root.Flags().BoolVar(&opts.inline, "inline", false, "render inline instead of the alternate screen")

	root.AddCommand(newRenderCmd(&opts), newVersionCmd())
	return root
}

func newRenderCmd(opts *options) *cobra.Command {
	var mainTab, subTab string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the widget and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, m, err := load(*opts)
			if err != nil {
				return err
			}
			logger, closer, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer closer.Close()

			state := tabs.NewState(m)
			if mainTab != "" {
				if err := state.SelectMain(mainTab); err != nil {
					return err
				}
			}
			if subTab != "" {
				if err := state.SelectSub(subTab); err != nil {
					return err
				}
			}
			app := ui.NewAppModel(state, logger)
			defer app.Close()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.Snapshot())
			return err
		},
	}
	cmd.Flags().StringVar(&mainTab, "main", "", "main tab to select")
	cmd.Flags().StringVar(&subTab, "sub", "", "sub-tab to select (under --main)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tabview",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tabview version %s\n", version)
		},
	}
}

// load resolves config and the tab map. Flags win over config.
func load(opts options) (config.Config, *tabs.TabMap, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if opts.tabsFile != "" {
		cfg.Tabs.File = opts.tabsFile
	}
	if opts.noMouse {
		cfg.UI.Mouse = false
	}
	if opts.inline {
		cfg.UI.AltScreen = false
	}
	if cfg.Tabs.File == "" {
		return cfg, tabs.Default(), nil
	}
	m, err := tabs.Load(cfg.Tabs.File)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, m, nil
}

func runTUI(ctx context.Context, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, m, err := load(opts)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	recorder, err := trace.NewRecorder(ctx, cfg.Trace)
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
	}
	defer shutdown(recorder, logger)

	state := tabs.NewState(m)
	state.Observe(logTransition(logger))
	state.Observe(recorder.Observe)

	app := ui.NewAppModel(state, logger)
	defer app.Close()

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	progOpts = append(progOpts, tea.WithContext(ctx))

	logger.Info("starting", "tabs", m.Len(), "file", cfg.Tabs.File, "mouse", cfg.UI.Mouse)
	if _, err := tea.NewProgram(app.AsTeaModel(), progOpts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func logTransition(logger *log.Logger) func(tabs.Transition) {
	return func(t tabs.Transition) {
		logger.Debug("selection changed",
			"kind", t.Kind,
			"main", t.To.Main,
			"sub", t.To.Sub,
			"from_main", t.From.Main,
			"from_sub", t.From.Sub,
		)
	}
}

func shutdown(r *trace.Recorder, logger *log.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.Shutdown(ctx); err != nil {
		logger.Warn("trace shutdown", "err", err)
	}
}
