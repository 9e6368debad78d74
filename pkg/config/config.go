package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Storage struct {
		CatalogFile  string `yaml:"catalog_file" json:"catalog_file" jsonschema:"default=data/products.csv,description=Catalog CSV file path"`
		FeedbackFile string `yaml:"feedback_file" json:"feedback_file" jsonschema:"default=data/feedback.csv,description=Feedback CSV file path"`
	} `yaml:"storage" json:"storage" jsonschema:"description=Flat-file storage configuration"`

	Spotify   SpotifyConfig   `yaml:"spotify" json:"spotify" jsonschema:"description=Spotify search provider configuration"`
	Detector  DetectorConfig  `yaml:"detector" json:"detector" jsonschema:"description=Emotion detector configuration"`
	Recommend RecommendConfig `yaml:"recommend" json:"recommend" jsonschema:"description=Recommendation ranking configuration"`

	Vocabulary Vocabulary `yaml:"vocabulary" json:"vocabulary" jsonschema:"description=Emotion vocabulary overrides"`
}

// SpotifyConfig holds external playlist search provider settings.
// Credentials default to SPOTIFY_CLIENT_ID/SPOTIFY_CLIENT_SECRET env values.
type SpotifyConfig struct {
	ClientID     string        `yaml:"client_id" json:"client_id" jsonschema:"description=Spotify client ID (can use environment variable)"`
	ClientSecret string        `yaml:"client_secret" json:"client_secret" jsonschema:"description=Spotify client secret (can use environment variable)"`
	Market       string        `yaml:"market" json:"market" jsonschema:"default=US,description=Spotify search market"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per-call search timeout"`
	PageSize     int           `yaml:"page_size" json:"page_size" jsonschema:"default=10,minimum=1,maximum=50,description=Search results requested per term"`
	MaxTerms     int           `yaml:"max_terms" json:"max_terms" jsonschema:"default=3,minimum=1,description=Maximum search terms tried per mood"`
}

// DetectorConfig holds emotion classifier settings. Endpoint empty means the
// built-in heuristic detector is used instead of a vision model.
type DetectorConfig struct {
	Endpoint            string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint for vision classification"`
	APIKey              string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model               string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Vision model name"`
	Timeout             time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	ConfidenceThreshold float64       `yaml:"confidence_threshold" json:"confidence_threshold" jsonschema:"default=0.6,minimum=0,maximum=1,description=Minimum confidence to produce recommendations"`
}

// RecommendConfig holds ranking settings
type RecommendConfig struct {
	TopN   int     `yaml:"top_n" json:"top_n" jsonschema:"default=5,minimum=1,description=Default number of recommendations"`
	Jitter float64 `yaml:"jitter" json:"jitter" jsonschema:"default=0.1,minimum=0,maximum=1,description=Random perturbation added to relevance scores"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is provided,
// with provider credentials taken from the environment
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for storage
	if c.Storage.CatalogFile == "" {
		c.Storage.CatalogFile = "data/products.csv"
	}
	if c.Storage.FeedbackFile == "" {
		c.Storage.FeedbackFile = "data/feedback.csv"
	}

	// set defaults for spotify, credentials fall back to environment
	if c.Spotify.ClientID == "" {
		c.Spotify.ClientID = os.Getenv("SPOTIFY_CLIENT_ID")
	}
	if c.Spotify.ClientSecret == "" {
		c.Spotify.ClientSecret = os.Getenv("SPOTIFY_CLIENT_SECRET")
	}
	if c.Spotify.Market == "" {
		c.Spotify.Market = "US"
	}
	if c.Spotify.Timeout == 0 {
		c.Spotify.Timeout = 10 * time.Second
	}
	if c.Spotify.PageSize == 0 {
		c.Spotify.PageSize = 10
	}
	if c.Spotify.MaxTerms == 0 {
		c.Spotify.MaxTerms = 3
	}

	// set defaults for detector
	if c.Detector.APIKey == "" {
		c.Detector.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.Detector.Model == "" {
		c.Detector.Model = "gpt-4o-mini"
	}
	if c.Detector.Timeout == 0 {
		c.Detector.Timeout = 30 * time.Second
	}
	if c.Detector.ConfidenceThreshold == 0 {
		c.Detector.ConfidenceThreshold = 0.6
	}

	// set defaults for recommendations
	if c.Recommend.TopN == 0 {
		c.Recommend.TopN = 5
	}
	if c.Recommend.Jitter == 0 {
		c.Recommend.Jitter = 0.1
	}

	// vocabulary sections default to the built-in mappings
	if len(c.Vocabulary.Emotions) == 0 {
		c.Vocabulary.Emotions = defaultEmotionTags()
	}
	if len(c.Vocabulary.Moods) == 0 {
		c.Vocabulary.Moods = defaultMoodKeywords()
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate spotify config
	if cfg.Spotify.Timeout < time.Second {
		return fmt.Errorf("spotify.timeout must be at least 1 second")
	}
	if cfg.Spotify.PageSize < 1 || cfg.Spotify.PageSize > 50 {
		return fmt.Errorf("spotify.page_size must be between 1 and 50")
	}
	if cfg.Spotify.MaxTerms < 1 {
		return fmt.Errorf("spotify.max_terms must be at least 1")
	}

	// validate detector config
	if cfg.Detector.ConfidenceThreshold < 0 || cfg.Detector.ConfidenceThreshold > 1 {
		return fmt.Errorf("detector.confidence_threshold must be between 0 and 1")
	}

	// validate recommendation config
	if cfg.Recommend.TopN < 1 {
		return fmt.Errorf("recommend.top_n must be at least 1")
	}
	if cfg.Recommend.Jitter < 0 || cfg.Recommend.Jitter > 1 {
		return fmt.Errorf("recommend.jitter must be between 0 and 1")
	}

	// validate vocabulary
	for label, tags := range cfg.Vocabulary.Emotions {
		if strings.TrimSpace(label) == "" || len(tags) == 0 {
			return fmt.Errorf("vocabulary.emotions entries require a label and at least one tag")
		}
	}
	for label, keywords := range cfg.Vocabulary.Moods {
		if strings.TrimSpace(label) == "" || len(keywords) == 0 {
			return fmt.Errorf("vocabulary.moods entries require a label and at least one keyword")
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetSpotifyConfig returns external search provider configuration
func (c *Config) GetSpotifyConfig() SpotifyConfig {
	return c.Spotify
}

// GetDetectorConfig returns emotion detector configuration
func (c *Config) GetDetectorConfig() DetectorConfig {
	return c.Detector
}

// GetRecommendConfig returns ranking configuration
func (c *Config) GetRecommendConfig() RecommendConfig {
	return c.Recommend
}

// GetVocabulary returns the emotion vocabulary
func (c *Config) GetVocabulary() Vocabulary {
	return c.Vocabulary
}
