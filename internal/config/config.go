package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Scraper struct {
		UserAgent      string        `yaml:"user_agent"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
		RateLimit      int           `yaml:"rate_limit" validate:"gt=0"` // page fetches per minute, per host
		Headless       bool          `yaml:"headless"`
		Stealth        bool          `yaml:"stealth"`
		SettleTime     time.Duration `yaml:"settle_time"` // wait after load for JS-rendered content
	} `yaml:"scraper"`

	Translator struct {
		Provider    string        `yaml:"provider" validate:"required"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model" validate:"required"`
		MaxTokens   int           `yaml:"max_tokens" validate:"gt=0"`
		Temperature float32       `yaml:"temperature" validate:"gte=0,lte=1"`
		Timeout     time.Duration `yaml:"timeout"`
		RateLimit   int           `yaml:"rate_limit" validate:"gt=0"` // translation calls per minute
		SourceLang  string        `yaml:"source_lang" validate:"required"`
		TargetLang  string        `yaml:"target_lang" validate:"required"`
	} `yaml:"translator"`

	Output struct {
		File string `yaml:"file"`
	} `yaml:"output"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format" validate:"oneof=text json"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	config.Scraper.UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	config.Scraper.RequestTimeout = 30 * time.Second
	config.Scraper.RateLimit = 30
	config.Scraper.Headless = true
	config.Scraper.Stealth = true
	config.Scraper.SettleTime = 3 * time.Second

	config.Translator.Provider = "claude"
	config.Translator.Model = "claude-3-haiku-20240307"
	config.Translator.MaxTokens = 1000
	config.Translator.Temperature = 0.1
	config.Translator.Timeout = 60 * time.Second
	config.Translator.RateLimit = 60
	config.Translator.SourceLang = "nl"
	config.Translator.TargetLang = "en"

	config.Output.File = "structured_job_analysis.json"

	config.Logging.Level = "info"
	config.Logging.Format = "text"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if apiKey := os.Getenv("TRANSLATOR_API_KEY"); apiKey != "" {
		c.Translator.APIKey = apiKey
	}

	// Also support LLM_API_KEY for compatibility
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" && c.Translator.APIKey == "" {
		c.Translator.APIKey = apiKey
	}

	if provider := os.Getenv("TRANSLATOR_PROVIDER"); provider != "" {
		c.Translator.Provider = provider
	}

	if model := os.Getenv("TRANSLATOR_MODEL"); model != "" {
		c.Translator.Model = model
	}

	if rateLimit := os.Getenv("TRANSLATOR_RATE_LIMIT"); rateLimit != "" {
		if limit, err := strconv.Atoi(rateLimit); err == nil {
			c.Translator.RateLimit = limit
		}
	}

	if userAgent := os.Getenv("SCRAPER_USER_AGENT"); userAgent != "" {
		c.Scraper.UserAgent = userAgent
	}

	if timeout := os.Getenv("SCRAPER_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Scraper.RequestTimeout = d
		}
	}

	if settle := os.Getenv("SCRAPER_SETTLE_TIME"); settle != "" {
		if d, err := time.ParseDuration(settle); err == nil {
			c.Scraper.SettleTime = d
		}
	}

	if headless := os.Getenv("SCRAPER_HEADLESS"); headless != "" {
		c.Scraper.Headless = headless == "true" || headless == "1"
	}

	if outputFile := os.Getenv("OUTPUT_FILE"); outputFile != "" {
		c.Output.File = outputFile
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
