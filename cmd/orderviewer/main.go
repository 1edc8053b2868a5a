package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-orderviewer/internal/app"
	"github.com/goliatone/go-orderviewer/internal/config"
	"github.com/goliatone/go-orderviewer/internal/logger"
	"github.com/goliatone/go-orderviewer/pkg/renderers/tui"
)

type rootFlags struct {
	configPath string
	baseURL    string
	locale     string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "orderviewer",
		Short:         "Look up orders on the order service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultPath, "path to the YAML config file")
	root.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "order service base URL (overrides remote.base_url)")
	root.PersistentFlags().StringVar(&flags.locale, "locale", "", "UI locale (overrides viewer.locale)")

	root.AddCommand(newServeCmd(flags), newPromptCmd(flags), newEnvCmd())
	return root
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the order viewer page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Logger.Sync() }()

			srv, err := a.Server()
			if err != nil {
				return err
			}
			if err := srv.Run(cmd.Context()); err != nil {
				a.Logger.Error("server stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}
}

func newPromptCmd(flags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Look up orders interactively in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Logger.Sync() }()

			format := tui.OutputFormatPrettyText
			if jsonOutput {
				format = tui.OutputFormatJSON
			}
			session := tui.New(
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithOutputFormat(format),
				tui.WithLocale(a.Config.Viewer.Locale),
				tui.WithTranslator(a.Component.Options().Translator),
				tui.WithTheme(tui.Theme{ErrorPrefix: "! "}),
			)
			return session.Run(cmd.Context(), a.Viewer())
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print order bodies exactly as received")
	return cmd
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables the config reads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.Usage())
			return err
		},
	}
}

func setup(ctx context.Context, flags *rootFlags) (*app.App, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.baseURL != "" {
		cfg.Remote.BaseURL = flags.baseURL
	}
	if flags.locale != "" {
		cfg.Viewer.Locale = flags.locale
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.Setup(cfg.Logger.Env)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return app.New(ctx, cfg, log)
}
