package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"davenews/config"
	"davenews/feed"
	"davenews/logger"
	"davenews/newsclient"
	"davenews/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	// Parse command-line flags
	configPath := flag.String("config", "", "Optional config file (yaml, json, toml or env)")
	altScreen := flag.Bool("alt-screen", true, "Render in the terminal's alternate screen")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the program, so logs go to a file
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = config.DefaultTUILogFile
	}
	log, err := logger.New(cfg.Log.Level, logFile)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	client := newsclient.New(newsclient.Config{
		APIKey:  cfg.News.APIKey,
		BaseURL: cfg.News.BaseURL,
		Country: cfg.News.Country,
		Timeout: cfg.News.HTTPTimeout,
	}, newsclient.WithLogger(log.Named("newsclient")))

	// Create TUI model
	m := tui.NewModel(feed.NewView(client, log.Named("feed")), log.Named("tui"))

	opts := []tea.ProgramOption{}
	if *altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(m, opts...)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
