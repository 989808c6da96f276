package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ppiankov/fakenews/internal/model"
	"github.com/ppiankov/fakenews/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web demo and JSON API",
	Long: `Serve starts an HTTP server with the demo page and the analysis API:

  GET  /                 demo page
  GET  /api/health       health check
  POST /api/analyze      JSON report
  POST /api/summary      plain-text summary
  GET  /api/analyze/ws   websocket with progress updates

Example:
  fakenews serve
  fakenews serve --addr :9000 --rate 5 --burst 20
  FAKENEWS_CACHE_ENABLED=true FAKENEWS_CACHE_BACKEND=redis FAKENEWS_CACHE_REDIS_ADDR=localhost:6379 fakenews serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	defaults := model.DefaultConfig()

	serveCmd.Flags().String("addr", defaults.Server.Addr, "listen address")
	serveCmd.Flags().Float64("rate", defaults.Server.RequestsPerSecond, "requests per second per client (0 disables limiting)")
	serveCmd.Flags().Int("burst", defaults.Server.Burst, "burst size per client")
	serveCmd.Flags().Duration("progress-delay", defaults.Server.ProgressDelay, "cosmetic delay before websocket results")

	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.requests_per_second", serveCmd.Flags().Lookup("rate"))
	_ = viper.BindPFlag("server.burst", serveCmd.Flags().Lookup("burst"))
	_ = viper.BindPFlag("server.progress_delay", serveCmd.Flags().Lookup("progress-delay"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Output.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	p, c, cleanup, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	p.SetWarningOutput(slog.NewLogLogger(logger.Handler(), slog.LevelWarn).Writer())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting fakenews",
		"version", Version,
		"cache", c != nil,
		"rate", cfg.Server.RequestsPerSecond,
		"burst", cfg.Server.Burst,
	)

	return server.New(p, c, logger).Run(ctx)
}
