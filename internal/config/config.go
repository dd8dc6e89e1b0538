package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr       string
	LogLevel       slog.Level
	ZhipuAPIKey    string
	ZhipuBaseURL   string
	LLMModel       string
	LLMMaxTokens   int
	LLMTemperature float32
	LLMTimeout     time.Duration
}

// AIEnabled reports whether a model credential is present. Its absence is
// not an error: mingli analysis degrades to static guidance.
func (c Config) AIEnabled() bool { return c.ZhipuAPIKey != "" }

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8000")
	v.SetDefault("log_level", "info")
	v.SetDefault("zhipuai_api_key", "")
	v.SetDefault("zhipuai_base_url", "https://open.bigmodel.cn/api/paas/v4")
	v.SetDefault("llm_model", "glm-4")
	v.SetDefault("llm_max_tokens", 2000)
	v.SetDefault("llm_temperature", 0.7)
	v.SetDefault("llm_timeout", "60s")
}

// Load reads configuration from the environment (HTTP_ADDR, LOG_LEVEL,
// ZHIPUAI_API_KEY, ...) and, if configFile is non-empty, from that file.
// Environment variables win over the file.
func Load(configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	c := Config{
		HTTPAddr:     v.GetString("http_addr"),
		ZhipuAPIKey:  strings.TrimSpace(v.GetString("zhipuai_api_key")),
		ZhipuBaseURL: v.GetString("zhipuai_base_url"),
		LLMModel:     v.GetString("llm_model"),
	}

	timeout, err := time.ParseDuration(v.GetString("llm_timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v.GetString("llm_timeout"), err)
	}
	c.LLMTimeout = timeout

	maxTokens, err := strconv.Atoi(strings.TrimSpace(v.GetString("llm_max_tokens")))
	if err != nil || maxTokens <= 0 {
		return Config{}, fmt.Errorf("invalid LLM_MAX_TOKENS %q", v.GetString("llm_max_tokens"))
	}
	c.LLMMaxTokens = maxTokens

	temp, err := strconv.ParseFloat(strings.TrimSpace(v.GetString("llm_temperature")), 32)
	if err != nil || temp < 0 || temp > 1 {
		return Config{}, fmt.Errorf("invalid LLM_TEMPERATURE %q", v.GetString("llm_temperature"))
	}
	c.LLMTemperature = float32(temp)

	level, err := parseLogLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
