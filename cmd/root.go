package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nordicast/go-podplay/config"
	"github.com/nordicast/go-podplay/podplay"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  = zerolog.Nop()
	client  *podplay.Client

	// Global flags
	verbosity    int
	debugMode    bool
	languageFlag string

	// Command flags
	filterExpr    string
	preset        string
	pages         int
	perPage       int
	originalsOnly bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "podplay",
	Short: "Browse the PodPlay podcast catalog from the command line",
	Long: `podplay is a CLI for the PodPlay podcast catalog. It can walk the
category tree, list the top podcasts of a category, show podcast and
episode details, search the catalog, and emit an RSS feed for a podcast.`,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if client != nil {
			client.Close()
		}
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if debugMode {
			logger.Error().Err(err).Msg("command failed")
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// SetVersion sets the version string reported by --version.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (build %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&languageFlag, "language", "l", "", "catalog language (no, sv, fi, en)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override language from command line if specified
	if cmd.Flags().Changed("language") {
		cfg.API.Language = languageFlag
	}

	logger = setupLogger(cfg.Logging)

	language, err := podplay.ParseLanguage(cfg.API.Language)
	if err != nil {
		return err
	}

	client, err = podplay.NewClient(logger,
		podplay.WithBaseURL(cfg.API.URL),
		podplay.WithUserAgent(cfg.API.UserAgent),
		podplay.WithTimeout(time.Duration(cfg.API.Timeout)*time.Second),
		podplay.WithLanguage(language),
	)
	if err != nil {
		return fmt.Errorf("failed to create PodPlay client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Each -v steps one level closer to debug
	for i := 0; i < verbosity && level > zerolog.DebugLevel; i++ {
		level--
	}
	if debugMode {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	noColor := !cfg.Color
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		noColor = true
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter.Presets[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset %q not found in config", preset)
	}

	return "", nil
}
