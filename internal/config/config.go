package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Redis      RedisConfig
	LLM        LLMConfig
	Logger     LoggerConfig
	Generation GenerationConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LLMConfig selects the optional LLM-backed generator. When Enabled is
// false the offline statistical engine serves all requests.
type LLMConfig struct {
	Enabled   bool   `yaml:"enabled"`
	ServerURL string `yaml:"server_url"`
	Model     string `yaml:"model"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

// GenerationConfig holds the tunables of the generation core. The bonus
// weights are empirically chosen; they are configuration, not constants,
// so deployments can retune them without a rebuild.
type GenerationConfig struct {
	LengthBonus         float64       `yaml:"length_bonus"`
	CapitalBonus        float64       `yaml:"capital_bonus"`
	TermPatternBonus    float64       `yaml:"term_pattern_bonus"`
	ImportanceThreshold float64       `yaml:"importance_threshold"`
	MaxKeywords         int           `yaml:"max_keywords"`
	ContextSentences    int           `yaml:"context_sentences"`
	BlankPlaceholder    string        `yaml:"blank_placeholder"`
	ChunkSize           int           `yaml:"chunk_size"`
	CacheTTL            time.Duration `yaml:"cache_ttl"`
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	viper.SetDefault("llm.enabled", false)
	viper.SetDefault("llm.model", "qwen3:0.6b")

	viper.SetDefault("generation.length_bonus", 1.5)
	viper.SetDefault("generation.capital_bonus", 1.2)
	viper.SetDefault("generation.term_pattern_bonus", 1.3)
	viper.SetDefault("generation.importance_threshold", 0.1)
	viper.SetDefault("generation.max_keywords", 20)
	viper.SetDefault("generation.context_sentences", 3)
	viper.SetDefault("generation.blank_placeholder", "____")
	viper.SetDefault("generation.chunk_size", 10000)
	viper.SetDefault("generation.cache_ttl", 3600)
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; the defaults cover every key.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			Enabled:   viper.GetBool("llm.enabled"),
			ServerURL: viper.GetString("llm.server_url"),
			Model:     viper.GetString("llm.model"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Generation: GenerationConfig{
			LengthBonus:         viper.GetFloat64("generation.length_bonus"),
			CapitalBonus:        viper.GetFloat64("generation.capital_bonus"),
			TermPatternBonus:    viper.GetFloat64("generation.term_pattern_bonus"),
			ImportanceThreshold: viper.GetFloat64("generation.importance_threshold"),
			MaxKeywords:         viper.GetInt("generation.max_keywords"),
			ContextSentences:    viper.GetInt("generation.context_sentences"),
			BlankPlaceholder:    viper.GetString("generation.blank_placeholder"),
			ChunkSize:           viper.GetInt("generation.chunk_size"),
			CacheTTL:            viper.GetDuration("generation.cache_ttl") * time.Second,
		},
	}

	// Override with environment variables if set
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.ServerURL = llmServer
		config.LLM.Enabled = true
	}

	return config, nil
}
