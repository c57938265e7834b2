// Package main provides the CLI entrypoint for notifica.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/notifica/notifica"
	"github.com/notifica/notifica/internal/config"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		appName    string
		icon       string
		timeout    time.Duration
		urgency    string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "notifica <title> [body]",
	Short: "Send a desktop notification",
	Long: `notifica sends a desktop notification through the native
notification facility of the host operating system: the freedesktop
notification bus on Linux, Notification Center on macOS, and the toast
API on Windows.

The exit status reports whether the submission call succeeded, not
whether the notification was seen.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
	RunE: runSend,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/notifica/config.toml)")

	// Notification flags
	rootCmd.Flags().StringVar(&globalOpts.appName, "app-name", "",
		"Application name reported to the backend")
	rootCmd.Flags().StringVar(&globalOpts.icon, "icon", "",
		"Icon name or image path (backend-defined)")
	rootCmd.Flags().DurationVar(&globalOpts.timeout, "timeout", 0,
		"How long the notification stays visible (0 = backend default)")
	rootCmd.Flags().StringVar(&globalOpts.urgency, "urgency", "",
		"Notification urgency (low, normal, critical)")
}

// runSend sends a single notification built from the arguments, flags,
// and config-file defaults. Flags win over the config file.
func runSend(cmd *cobra.Command, args []string) error {
	title := args[0]
	body := ""
	if len(args) > 1 {
		body = args[1]
	}

	opts, err := notificationOptions(cmd)
	if err != nil {
		return err
	}

	logger.Debug("sending notification",
		"backend", notifica.Backend(),
		"title", title)

	if err := notifica.Send(title, body, opts...); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// notificationOptions merges flags and config-file defaults into library
// options.
func notificationOptions(cmd *cobra.Command) ([]notifica.Option, error) {
	appName := cfg.Notification.AppName
	if cmd.Flags().Changed("app-name") {
		appName = globalOpts.appName
	}

	icon := cfg.Notification.Icon
	if cmd.Flags().Changed("icon") {
		icon = globalOpts.icon
	}

	timeout, err := cfg.Notification.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("timeout") {
		timeout = globalOpts.timeout
	}

	urgencyName := cfg.Notification.Urgency
	if cmd.Flags().Changed("urgency") {
		urgencyName = globalOpts.urgency
	}
	urgency, err := config.ParseUrgency(urgencyName)
	if err != nil {
		return nil, err
	}

	opts := []notifica.Option{
		notifica.WithUrgency(urgency),
		notifica.WithTimeout(timeout),
	}
	if appName != "" {
		opts = append(opts, notifica.WithAppName(appName))
	}
	if icon != "" {
		opts = append(opts, notifica.WithIcon(icon))
	}
	return opts, nil
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
