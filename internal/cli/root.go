package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ppiankov/fakenews/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=..."
var Version = "v0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fakenews",
	Short: "FakeNews Detector - heuristic article reliability demo",
	Long: `FakeNews Detector scores article text or a URL against a small set of
keyword heuristics and returns one of three canned reliability verdicts.

It does not fetch, verify, or cross-reference anything. Scores include a
random offset, so repeated runs on the same input may differ.

Verify before you share.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of FakeNews Detector.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fakenews %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.fakenews/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in .env, the config file and ENV variables
func initConfig() {
	// .env only fills variables that are not already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) && verbose {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".fakenews"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// FAKENEWS_SERVER_ADDR overrides server.addr, and so on
	viper.SetEnvPrefix("FAKENEWS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults(viper.GetViper(), model.DefaultConfig())

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	} else if err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Error reading config file %s: %v\n", cfgFile, err)
	}
}

// setDefaults registers every config key so env vars and Unmarshal can see them
func setDefaults(v *viper.Viper, cfg *model.Config) {
	v.SetDefault("input.min_length", cfg.Input.MinLength)
	v.SetDefault("input.max_length", cfg.Input.MaxLength)

	v.SetDefault("url.trusted_markers", cfg.URL.TrustedMarkers)
	v.SetDefault("url.suspicious_markers", cfg.URL.SuspiciousMarkers)

	v.SetDefault("cache.enabled", cfg.Cache.Enabled)
	v.SetDefault("cache.backend", cfg.Cache.Backend)
	v.SetDefault("cache.ttl", cfg.Cache.TTL)
	v.SetDefault("cache.dir", cfg.Cache.Dir)
	v.SetDefault("cache.redis_addr", cfg.Cache.RedisAddr)
	v.SetDefault("cache.sweep_schedule", cfg.Cache.SweepSchedule)

	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.requests_per_second", cfg.Server.RequestsPerSecond)
	v.SetDefault("server.burst", cfg.Server.Burst)
	v.SetDefault("server.progress_delay", cfg.Server.ProgressDelay)
	v.SetDefault("server.progress_tick", cfg.Server.ProgressTick)
	v.SetDefault("server.shutdown_timeout", cfg.Server.ShutdownTimeout)

	v.SetDefault("concurrency.workers", cfg.Concurrency.Workers)

	v.SetDefault("output.verbose", cfg.Output.Verbose)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.include_footer", cfg.Output.IncludeFooter)
}

// loadConfig resolves the effective configuration (flags > env > file > defaults)
func loadConfig() (*model.Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	// Marker lists come from viper defaults; decoding over a populated slice would merge them
	cfg.URL.TrustedMarkers = nil
	cfg.URL.SuspiciousMarkers = nil
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Input.MinLength < 0 || cfg.Input.MaxLength < 0 {
		return nil, fmt.Errorf("input lengths must not be negative")
	}
	if cfg.Input.MaxLength > 0 && cfg.Input.MinLength > cfg.Input.MaxLength {
		return nil, fmt.Errorf("input.min_length (%d) exceeds input.max_length (%d)", cfg.Input.MinLength, cfg.Input.MaxLength)
	}

	return cfg, nil
}
