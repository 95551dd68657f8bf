package appconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration details
type Config struct {
	Host         string              `yaml:"host"`
	BasePath     string              `yaml:"basePath"`
	DocsPath     string              `yaml:"docsPath"`
	AWS          AWSConfig           `yaml:"aws"`
	Destinations []DestinationConfig `yaml:"destinations" validate:"unique=Name,dive"`
}

// DestinationConfig defines a remote OData service and how to authenticate
// against it. Credentials may be given inline or read from an AWS Secrets
// Manager secret holding {"user": ..., "password": ...}.
type DestinationConfig struct {
	Name        string `yaml:"name" validate:"required"`
	URL         string `yaml:"url" validate:"required,url"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	SAPClient   string `yaml:"sapClient" validate:"omitempty,numeric,len=3"`
	SAPLanguage string `yaml:"sapLanguage"`
	SecretName  string `yaml:"secretName"`
}

type AWSConfig struct {
	Region string `yaml:"region"`
}

// UsesSecretsManager reports whether any destination reads its credentials
// from AWS Secrets Manager.
func (c *Config) UsesSecretsManager() bool {
	for _, d := range c.Destinations {
		if d.SecretName != "" {
			return true
		}
	}
	return false
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.UsesSecretsManager() && c.AWS.Region == "" {
		return errors.New("invalid config: aws.region is required when a destination sets secretName")
	}

	return nil
}

// LoadConfig loads and parses the configuration from a given file path
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config file path is required")
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file template: %w", err)
	}
	tmpl.Option("missingkey=zero")

	// Execute the template with environment variables
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, loadEnvVars()); err != nil {
		return nil, fmt.Errorf("error executing config file template: %w", err)
	}

	// Load and unmarshal the YAML
	var config Config
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	if config.BasePath == "" {
		config.BasePath = "/"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
