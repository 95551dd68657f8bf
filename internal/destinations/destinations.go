package destinations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/eatu-cf/odata-query-services/internal/appconfig"
)

var ErrUnknownDestination = errors.New("unknown destination")

// Destination holds the resolved connection details of a remote service.
type Destination struct {
	Name        string
	URL         string
	User        string
	Password    string
	SAPClient   string
	SAPLanguage string
}

// SecretsManagerClient is the subset of the Secrets Manager API used to read
// destination credentials.
type SecretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// credentials is the JSON layout of a destination secret.
type credentials struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// Resolver maps destination names to connection details.
type Resolver struct {
	configs map[string]appconfig.DestinationConfig
	secrets SecretsManagerClient
}

// NewResolver creates a resolver over the configured destinations. secrets
// may be nil when no destination sets a secret name.
func NewResolver(cfgs []appconfig.DestinationConfig, secrets SecretsManagerClient) *Resolver {
	configs := make(map[string]appconfig.DestinationConfig, len(cfgs))
	for _, c := range cfgs {
		configs[c.Name] = c
	}
	return &Resolver{configs: configs, secrets: secrets}
}

// Names returns the configured destination names in sorted order.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the connection details of the named destination. Secrets
// are read on every call.
func (r *Resolver) Resolve(ctx context.Context, name string) (*Destination, error) {
	cfg, ok := r.configs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDestination, name)
	}

	dest := &Destination{
		Name:        cfg.Name,
		URL:         cfg.URL,
		User:        cfg.User,
		Password:    cfg.Password,
		SAPClient:   cfg.SAPClient,
		SAPLanguage: cfg.SAPLanguage,
	}

	if cfg.SecretName == "" {
		return dest, nil
	}

	if r.secrets == nil {
		return nil, fmt.Errorf("destination %s requires a secrets manager client", name)
	}

	out, err := r.secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(cfg.SecretName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret %s: %w", cfg.SecretName, err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no string value", cfg.SecretName)
	}

	var creds credentials
	if err := json.Unmarshal([]byte(*out.SecretString), &creds); err != nil {
		return nil, fmt.Errorf("failed to parse secret %s: %w", cfg.SecretName, err)
	}

	dest.User = creds.User
	dest.Password = creds.Password
	return dest, nil
}
