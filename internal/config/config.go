package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the Parley server.
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Engine EngineConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

type UploadConfig struct {
	// Dir is the scratch directory for uploaded audio. Files live there only
	// for the duration of a transcription job.
	Dir string
}

type EngineConfig struct {
	Provider    string
	ChatEnabled bool
	MaxTokens   int
	Temperature float64
	OpenAI      OpenAIConfig
	Ollama      OllamaConfig
}

type OpenAIConfig struct {
	APIKey          string
	BaseURL         string
	ChatModel       string
	TranscribeModel string
}

type OllamaConfig struct {
	BaseURL string
	Model   string
}

var validProviders = map[string]bool{
	"openai": true,
	"ollama": true,
}

// Load reads configuration from the environment (and a .env file when one
// exists) and returns a validated Config. Returns an error with a
// descriptive message if any required value is missing or invalid.
func Load() (*Config, error) {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("PARLEY_PORT", 8080),
			Env:  envString("PARLEY_ENV", "development"),
		},
		Upload: UploadConfig{
			Dir: envString("PARLEY_UPLOAD_DIR", "uploaded_audio"),
		},
		Engine: EngineConfig{
			Provider:    os.Getenv("ENGINE_PROVIDER"),
			ChatEnabled: envBool("CHAT_ENABLED", true),
			MaxTokens:   envInt("CHAT_MAX_TOKENS", 1024),
			Temperature: envFloat("CHAT_TEMPERATURE", 0.7),
			OpenAI: OpenAIConfig{
				APIKey:          os.Getenv("OPENAI_API_KEY"),
				BaseURL:         os.Getenv("OPENAI_BASE_URL"),
				ChatModel:       envString("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
				TranscribeModel: envString("OPENAI_TRANSCRIBE_MODEL", "whisper-1"),
			},
			Ollama: OllamaConfig{
				BaseURL: envString("OLLAMA_BASE_URL", "http://localhost:11434"),
				Model:   envString("OLLAMA_MODEL", "llama3"),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Upload.Dir == "" {
		return fmt.Errorf("PARLEY_UPLOAD_DIR must not be empty")
	}

	if c.Engine.Provider == "" {
		return fmt.Errorf("ENGINE_PROVIDER is required")
	}
	if !validProviders[c.Engine.Provider] {
		return fmt.Errorf("ENGINE_PROVIDER must be one of openai, ollama; got %q", c.Engine.Provider)
	}

	if c.Engine.Provider == "openai" && c.Engine.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when ENGINE_PROVIDER is openai")
	}
	if c.Engine.Provider == "ollama" {
		if !strings.HasPrefix(c.Engine.Ollama.BaseURL, "http://") && !strings.HasPrefix(c.Engine.Ollama.BaseURL, "https://") {
			return fmt.Errorf("OLLAMA_BASE_URL must start with http:// or https://, got %q", c.Engine.Ollama.BaseURL)
		}
	}

	if c.Engine.MaxTokens <= 0 {
		return fmt.Errorf("CHAT_MAX_TOKENS must be positive, got %d", c.Engine.MaxTokens)
	}
	if c.Engine.Temperature < 0 {
		return fmt.Errorf("CHAT_TEMPERATURE must be non-negative, got %g", c.Engine.Temperature)
	}

	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func envBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
