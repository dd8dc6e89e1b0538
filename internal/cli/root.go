package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/RisingZenByte/tianji-api/internal/adapters/almanac"
	"github.com/RisingZenByte/tianji-api/internal/adapters/llm/zhipu"
	"github.com/RisingZenByte/tianji-api/internal/app"
	"github.com/RisingZenByte/tianji-api/internal/config"
	"github.com/RisingZenByte/tianji-api/internal/ports"
)

// NewRootCommand builds the tianjid command tree.
func NewRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "tianjid",
		Short:         "天机命理 API server and almanac tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "optional config file (json, yaml or toml)")

	loadConfig := func() (config.Config, error) { return config.Load(configFile) }

	root.AddCommand(
		newServeCommand(loadConfig),
		newLiunianCommand(),
		newYiJiCommand(),
		newShiChenCommand(),
		newMingliCommand(loadConfig),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// installLogger builds the JSON logger and makes it the process default, so
// package-level slog calls share its stream and level.
func installLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := newLogger(w, level)
	slog.SetDefault(logger)
	return logger
}

// newCompleter returns nil when no credential is configured so the mingli
// service takes its unconfigured path. The interface must be a true nil,
// not a typed nil pointer.
func newCompleter(cfg config.Config, logger *slog.Logger) ports.ChatCompleter {
	if !cfg.AIEnabled() {
		return nil
	}
	return zhipu.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		zhipu.Options{
			APIKey:      cfg.ZhipuAPIKey,
			BaseURL:     cfg.ZhipuBaseURL,
			Model:       cfg.LLMModel,
			MaxTokens:   cfg.LLMMaxTokens,
			Temperature: cfg.LLMTemperature,
		},
		logger,
	)
}

func newAlmanacService() *app.AlmanacService {
	return app.NewAlmanacService(almanac.NewEmbeddedStore())
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
