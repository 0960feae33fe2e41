package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config es la configuración del proceso. Se construye una vez en el arranque
// y se pasa por inyección; nadie la muta después de Load.
type Config struct {
	App struct {
		// dev | staging | prod
		Env     string `yaml:"env"`
		Version string `yaml:"version"`
	} `yaml:"app" envconfig:"APP"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log" envconfig:"LOG"`

	Server struct {
		Addr               string        `yaml:"addr"`
		CORSAllowedOrigins []string      `yaml:"cors_allowed_origins" split_words:"true"`
		ReadTimeout        time.Duration `yaml:"read_timeout" split_words:"true"`
		WriteTimeout       time.Duration `yaml:"write_timeout" split_words:"true"`
		ShutdownTimeout    time.Duration `yaml:"shutdown_timeout" split_words:"true"`
	} `yaml:"server" envconfig:"SERVER"`

	// Upstream: backend-as-a-service (Auth + REST). Las env vars mantienen
	// el prefijo SUPABASE_ de los despliegues existentes.
	Upstream struct {
		URL     string        `yaml:"url"`
		APIKey  string        `yaml:"api_key" split_words:"true"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"upstream" envconfig:"SUPABASE"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics" envconfig:"METRICS"`

	Users struct {
		DefaultPictureURL string `yaml:"default_picture_url" split_words:"true"`
	} `yaml:"users" envconfig:"USERS"`
}

var (
	ErrMissingUpstreamURL = errors.New("SUPABASE_URL must be set")
	ErrMissingAPIKey      = errors.New("SUPABASE_API_KEY must be set")
)

// Default retorna la configuración base, antes de YAML y env.
func Default() Config {
	var c Config
	c.App.Env = "dev"
	c.Log.Level = "info"
	c.Server.Addr = ":3000"
	c.Server.CORSAllowedOrigins = []string{"*"}
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 30 * time.Second
	c.Server.ShutdownTimeout = 10 * time.Second
	c.Upstream.Timeout = 30 * time.Second
	c.Metrics.Enabled = true
	c.Metrics.Path = "/metrics"
	c.Users.DefaultPictureURL = "default_profile_picture_url"
	return c
}

// Load arma la configuración: defaults, luego el YAML en path (opcional,
// vacío = sin archivo), luego variables de entorno. Falla si falta la URL
// o la API key del upstream.
func Load(path string) (*Config, error) {
	c := Default()

	if p := strings.TrimSpace(path); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", p, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", p, err)
		}
	}

	// envconfig solo pisa los campos cuya variable está definida. Las hojas
	// no llevan tag envconfig: con tag, envconfig cae al nombre sin prefijo
	// (ej. PATH) cuando la variable con prefijo no existe.
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}

	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) normalize() {
	c.App.Env = strings.ToLower(strings.TrimSpace(c.App.Env))
	c.Upstream.URL = strings.TrimRight(strings.TrimSpace(c.Upstream.URL), "/")
	c.Upstream.APIKey = strings.TrimSpace(c.Upstream.APIKey)
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		c.Metrics.Path = "/" + c.Metrics.Path
	}
}

// Validate verifica los valores críticos.
func (c *Config) Validate() error {
	if c.Upstream.URL == "" {
		return ErrMissingUpstreamURL
	}
	if c.Upstream.APIKey == "" {
		return ErrMissingAPIKey
	}
	u, err := url.Parse(c.Upstream.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("SUPABASE_URL must be an absolute http(s) URL, got %q", c.Upstream.URL)
	}
	if c.Upstream.Timeout < 0 {
		return fmt.Errorf("SUPABASE_TIMEOUT must not be negative")
	}
	return nil
}

// IsProduction indica si corremos con APP_ENV=prod.
func (c *Config) IsProduction() bool {
	return c != nil && c.App.Env == "prod"
}
