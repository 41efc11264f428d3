package appconf

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileConfig is the JSON representation of the server configuration. String
// fields mirror flag spellings so a file and flags describe the same thing.
type FileConfig struct {
	Port       int      `json:"port"`
	Env        string   `json:"env"`
	ApiKeys    []string `json:"apiKeys"`
	RateLimit  int      `json:"rateLimit"`
	DataPath   string   `json:"dataPath"`
	ORSAPIKey  string   `json:"orsApiKey"`
	GroqAPIKey string   `json:"groqApiKey"`
}

// LoadFromFile reads and validates a JSON config file, applying defaults for
// omitted fields.
func LoadFromFile(path string) (*FileConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &FileConfig{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func (c *FileConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = 4000
	}
	if c.Env == "" {
		c.Env = "development"
	}
	if len(c.ApiKeys) == 0 {
		c.ApiKeys = []string{"test"}
	}
	if c.RateLimit == 0 {
		c.RateLimit = 100
	}
	if c.DataPath == "" {
		c.DataPath = "./margdarshak.db"
	}
}

// Validate checks ranges and enumerations after defaults are applied.
func (c *FileConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	switch c.Env {
	case "development", "test", "production":
	default:
		return fmt.Errorf("env must be development, test, or production, got %q", c.Env)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rateLimit must not be negative, got %d", c.RateLimit)
	}
	return nil
}

// ToConfig converts the file representation into the runtime Config.
func (c *FileConfig) ToConfig() Config {
	return Config{
		Port:       c.Port,
		Env:        EnvFlagToEnvironment(c.Env),
		ApiKeys:    c.ApiKeys,
		RateLimit:  c.RateLimit,
		DataPath:   c.DataPath,
		ORSAPIKey:  c.ORSAPIKey,
		GroqAPIKey: c.GroqAPIKey,
	}
}
