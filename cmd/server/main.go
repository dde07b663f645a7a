package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tilerace/tilerace-server/internal/app"
	"github.com/tilerace/tilerace-server/internal/config"
	"github.com/tilerace/tilerace-server/internal/log"
)

func main() {
	if err := newCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var configPath string

	v := viper.New()
	v.SetEnvPrefix("TILERACE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "tilerace-server",
		Short:         "Lobby and turn coordinator for the tilerace board game.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, configPath)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&configPath, "config", "", "path to config file (env: TILERACE_CONFIG)")
	fs.String("addr", "", "HTTP listen address (env: TILERACE_ADDR)")
	fs.String("base-url", "", "base URL clients use to reach the server (env: TILERACE_BASE_URL)")
	fs.String("log-level", "", "log level: debug, info, warn, error (env: TILERACE_LOG_LEVEL)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	return cmd
}

func run(cmd *cobra.Command, configPath string) error {
	bootLogger := log.New("info")

	cfg, path, err := config.Load(bootLogger, configPath)
	if err != nil {
		return err
	}

	// Flags win over config file and env.
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	logger := log.New(cfg.LogLevel)
	logger.Info().Str("config", path).Str("addr", cfg.Addr).Str("base_url", cfg.BaseURL).Msg("starting tilerace server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(&cfg, logger)
	if err := application.Run(ctx); err != nil {
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}
