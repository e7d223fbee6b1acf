package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates all service configuration.
type Config struct {
	Server  ServerConfig
	Session SessionConfig
	AI      AIConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	session, err := loadSessionConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Session: session, AI: ai}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// SessionConfig describes session token signing and storage.
type SessionConfig struct {
	SecretKey string
	Backend   string
	Dir       string
}

func loadSessionConfig() (SessionConfig, error) {
	backend := strings.ToLower(getEnvOrDefault("SESSION_STORE", "file"))
	if backend != "file" && backend != "memory" {
		return SessionConfig{}, fmt.Errorf("invalid SESSION_STORE value: %q (want file or memory)", backend)
	}

	return SessionConfig{
		SecretKey: strings.TrimSpace(os.Getenv("SESSION_SECRET_KEY")),
		Backend:   backend,
		Dir:       getEnvOrDefault("SESSION_DIR", os.TempDir()),
	}, nil
}

// AIConfig describes the upstream chat-completion deployment.
type AIConfig struct {
	APIKey      string
	Endpoint    string
	Deployment  string
	APIVersion  string
	MaxTokens   int
	Temperature float32
}

// Enabled reports whether the required upstream credentials are present.
func (c AIConfig) Enabled() bool {
	return c.APIKey != "" && c.Endpoint != "" && c.Deployment != ""
}

func loadAIConfig() (AIConfig, error) {
	maxTokens := 512
	if override, err := parseOptionalIntEnv("AZURE_OPENAI_MAX_TOKENS"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return AIConfig{}, fmt.Errorf("AZURE_OPENAI_MAX_TOKENS must be positive, got %d", *override)
		}
		maxTokens = *override
	}

	temperature := float32(0.6)
	if override, err := parseOptionalFloat32Env("AZURE_OPENAI_TEMPERATURE"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		temperature = *override
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("AZURE_OPENAI_API_KEY")),
		Endpoint:    strings.TrimSpace(os.Getenv("AZURE_OPENAI_ENDPOINT")),
		Deployment:  strings.TrimSpace(os.Getenv("AZURE_OPENAI_DEPLOYMENT_NAME")),
		APIVersion:  getEnvOrDefault("AZURE_OPENAI_API_VERSION", "2024-02-01"),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalFloat32Env(key string) (*float32, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	result := float32(val)
	return &result, nil
}
