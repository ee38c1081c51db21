package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/monster-codex/internal/config"
	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/pkg/logging"
	"github.com/KirkDiggler/monster-codex/internal/tui"
)

var (
	browsePage  int
	browseTheme string
)

var browseCmd = &cobra.Command{
	Use:   "browse [monster-id]",
	Short: "Browse the catalog in the terminal",
	Long: `Open the terminal catalog viewer. With a monster id or name the detail view
opens first. Logs go to log.file so they do not disturb the screen.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().IntVar(&browsePage, "page", 1, "list page to open")
	browseCmd.Flags().StringVar(&browseTheme, "theme", "", "theme for this session: system, light or dark")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return errors.Wrap(err, "failed to create log directory")
	}
	logger, err := logging.NewFile(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close(logger)

	theme := cfg.Theme()
	if cmd.Flags().Changed("theme") {
		theme = entities.ParseTheme(browseTheme)
	}

	var detailID string
	if len(args) == 1 {
		detailID = args[0]
	}

	path := configPath
	model, err := tui.New(&tui.Config{
		Catalog:        a.catalog,
		Context:        ctx,
		Theme:          theme,
		DarkBackground: lipgloss.HasDarkBackground(),
		SaveTheme: func(t entities.Theme) error {
			return config.SaveTheme(path, t)
		},
		Page:     browsePage,
		DetailID: detailID,
		Logger:   logger.Named("tui"),
	})
	if err != nil {
		return err
	}

	logger.Info("starting browser", zap.Int("page", browsePage), zap.String("theme", string(theme)))
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return errors.Wrap(err, "terminal ui failed")
	}
	return nil
}
