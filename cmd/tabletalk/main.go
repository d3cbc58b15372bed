package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tabletalk/tabletalk/internal/config"
	"github.com/tabletalk/tabletalk/internal/server"
)

var (
	host       string
	port       int
	backendURL string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "tabletalk",
	Short: "Web client for asking natural-language questions about uploaded spreadsheets",
	Long: `TableTalk serves a single-page client for a spreadsheet question-answering
backend: upload a CSV or Excel file, ask questions in plain language, and view
the generated SQL plus result rows.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&host, "host", "", "listen host (overrides TABLETALK_HOST)")
	rootCmd.Flags().IntVar(&port, "port", 0, "listen port (overrides TABLETALK_PORT)")
	rootCmd.Flags().StringVar(&backendURL, "backend-url", "", "base URL of the query backend (overrides TABLETALK_BACKEND_URL)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = port
	}
	if cmd.Flags().Changed("backend-url") {
		cfg.BackendURL = backendURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	setupLogging(cfg)

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("tabletalk exited")
		os.Exit(1)
	}
}
