package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath    = "config.yaml"
	defaultOutputDir     = "."
	defaultProvider      = "openai"
	defaultScenarioModel = "gpt-4o-mini"
	defaultGroqModel     = "llama-3.3-70b-versatile"
	defaultImageModel    = "gpt-image-1"
	defaultImageSize     = "1024x1536"
	defaultImageQuality  = "high"
)

type Config struct {
	OpenAIAPIKey string
	GroqAPIKey   string

	Scenario ScenarioConfig `yaml:"scenario"`
	Image    ImageConfig    `yaml:"image"`
	Output   OutputConfig   `yaml:"output"`
}

type ScenarioConfig struct {
	Provider  string `yaml:"provider"` // "openai" or "groq"
	Model     string `yaml:"model"`
	GroqModel string `yaml:"groq_model"`
}

type ImageConfig struct {
	Model   string `yaml:"model"`
	Size    string `yaml:"size"`
	Quality string `yaml:"quality"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
	}

	loadYAMLConfig(cfg)
	applyDefaults(cfg)

	return cfg
}

func loadYAMLConfig(cfg *Config) {
	data, err := os.ReadFile(defaultConfigPath)
	if err != nil {
		slog.Debug("No config.yaml found, using defaults")
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Error("Failed to parse config.yaml", "error", err)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Scenario.Provider == "" {
		cfg.Scenario.Provider = defaultProvider
	}
	if cfg.Scenario.Model == "" {
		cfg.Scenario.Model = defaultScenarioModel
	}
	if cfg.Scenario.GroqModel == "" {
		cfg.Scenario.GroqModel = defaultGroqModel
	}
	if cfg.Image.Model == "" {
		cfg.Image.Model = defaultImageModel
	}
	if cfg.Image.Size == "" {
		cfg.Image.Size = defaultImageSize
	}
	if cfg.Image.Quality == "" {
		cfg.Image.Quality = defaultImageQuality
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaultOutputDir
	}
}
