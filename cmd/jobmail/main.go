package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/jobmail/internal/config"
	"github.com/csheth/jobmail/internal/emailgen"
	"github.com/csheth/jobmail/internal/lifecycle"
	"github.com/csheth/jobmail/internal/logging"
	"github.com/csheth/jobmail/internal/tui"
)

func main() {
	initialURL := flag.String("url", "", "job posting URL to prefill (press Enter to generate)")
	endpoint := flag.String("endpoint", "", "email generation endpoint (default "+emailgen.DefaultEndpoint+")")
	logFile := flag.String("log-file", "", "write logs to this file, or stdout/stderr")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(1)
	}
	if v := strings.TrimSpace(*endpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := strings.TrimSpace(*logFile); v != "" {
		cfg.Logger.Output = v
	}
	if v := strings.TrimSpace(*logLevel); v != "" {
		cfg.Logger.Level = v
	}
	if *noAltScreen {
		cfg.AltScreen = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("config error:", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(cfg.Logger)
	if err != nil {
		fmt.Println("logger error:", err)
		os.Exit(1)
	}
	defer func() { _ = closeLog() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := emailgen.New(emailgen.Config{Endpoint: cfg.Endpoint})
	logger.Info("starting", "generator", client.Name(), "alt_screen", cfg.AltScreen)

	ctrl := lifecycle.New(lifecycle.Config{
		Generator:   client,
		Logger:      logger,
		BaseContext: ctx,
	})

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Controller: ctrl,
			InitialURL: *initialURL,
			Logger:     logger,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		logger.Error("program error", "error", err)
		fmt.Println("program error:", err)
		cancel()
		_ = closeLog()
		os.Exit(1)
	}
}
