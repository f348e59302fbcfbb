package store

import (
	"errors"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultPath is where plans are kept when nothing is configured.
const DefaultPath = "~/.party.db"

// OpenAIConfig holds the text-generation backend settings.
type OpenAIConfig struct {
	APIKey  string `json:"apiKey"`
	BaseURL string `json:"baseURL"`
	Model   string `json:"model"`
}

// Config is the resolved tool configuration.
type Config interface {
	BasePath() string
	OpenAI() OpenAIConfig
	LogLevel() string
}

// LoadConfig reads .party.yaml from $PARTY_CONFIG_PATH or the working
// directory, with PARTY_* environment overrides. A missing file is fine.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("log.level", "warn")
	v.SetConfigName(".party") // .yaml is implicit
	v.SetEnvPrefix("PARTY")
	v.AutomaticEnv()
	// Nested keys are not picked up by AutomaticEnv.
	_ = v.BindEnv("openai.apiKey", "PARTY_OPENAI_API_KEY")
	_ = v.BindEnv("openai.baseURL", "PARTY_OPENAI_BASE_URL")
	_ = v.BindEnv("openai.model", "PARTY_OPENAI_MODEL")
	_ = v.BindEnv("log.level", "PARTY_LOG_LEVEL")

	if override := os.Getenv("PARTY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	apiKey := v.GetString("openai.apiKey")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	return &fileConfig{
		Path: path,
		AI: OpenAIConfig{
			APIKey:  apiKey,
			BaseURL: v.GetString("openai.baseURL"),
			Model:   v.GetString("openai.model"),
		},
		Level: v.GetString("log.level"),
	}, nil
}

type fileConfig struct {
	Path  string       `json:"path"`
	AI    OpenAIConfig `json:"openai"`
	Level string       `json:"logLevel"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) OpenAI() OpenAIConfig {
	return f.AI
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

// PathConfig is a Config that only sets the storage path.
type PathConfig string

func (p PathConfig) BasePath() string     { return string(p) }
func (p PathConfig) OpenAI() OpenAIConfig { return OpenAIConfig{} }
func (p PathConfig) LogLevel() string     { return "" }
