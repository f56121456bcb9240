package config

import (
	"fmt"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"

	"github.com/pharmanet/pharmacy-console/pkg/env"
)

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

type Service string

const (
	ServicePharmacy   Service = "pharmacy"
	ServiceUser       Service = "user"
	ServiceMedication Service = "medication"
)

// Fixed per-service ports used in development.
var devServicePorts = map[Service]int{
	ServicePharmacy:   8000,
	ServiceUser:       8001,
	ServiceMedication: 8002,
}

const devAPIURLFormat = "http://localhost:%d/api"

type Config struct {
	Env          Environment
	ServiceURLs  map[Service]string
	MediaBaseURL string
	Gateway      Gateway
}

type Gateway struct {
	Address       string
	SessionTTL    time.Duration
	RedisAddress  string
	RedisPassword string
	RedisDB       int
}

// Load resolves configuration from the environment, reading an optional
// .env file first. Development resolves every service to its fixed local
// port; production requires externally supplied base URLs. A per-service
// <NAME>_SERVICE_URL always wins.
func Load() (*Config, error) {
	_ = godotenv.Load()

	environment, err := env.ParseDefault[string]("APP_ENV", string(EnvDevelopment))
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Env:         Environment(environment),
		ServiceURLs: make(map[Service]string, len(devServicePorts)),
	}
	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return nil, fmt.Errorf("unknown APP_ENV value %q", environment)
	}

	for service := range devServicePorts {
		url, err := resolveServiceURL(cfg.Env, service)
		if err != nil {
			return nil, err
		}
		cfg.ServiceURLs[service] = url
	}

	cfg.MediaBaseURL, err = resolveMediaBaseURL(cfg.Env)
	if err != nil {
		return nil, err
	}

	cfg.Gateway, err = loadGateway()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) ServiceURL(service Service) string {
	return c.ServiceURLs[service]
}

func resolveServiceURL(environment Environment, service Service) (string, error) {
	override, err := env.ParseOptional[string](strcase.ToScreamingSnake(string(service)) + "_SERVICE_URL")
	if err != nil {
		return "", err
	}
	if override != nil {
		return *override, nil
	}

	if environment == EnvDevelopment {
		return fmt.Sprintf(devAPIURLFormat, devServicePorts[service]), nil
	}

	baseURL, err := env.Parse[string]("API_BASE_URL")
	if err != nil {
		return "", fmt.Errorf("production requires API_BASE_URL: %w", err)
	}
	return baseURL, nil
}

func resolveMediaBaseURL(environment Environment) (string, error) {
	if environment == EnvDevelopment {
		return fmt.Sprintf("http://localhost:%d", devServicePorts[ServiceMedication]), nil
	}

	mediaURL, err := env.Parse[string]("MEDIA_BASE_URL")
	if err != nil {
		return "", fmt.Errorf("production requires MEDIA_BASE_URL: %w", err)
	}
	return mediaURL, nil
}

func loadGateway() (Gateway, error) {
	address, err := env.ParseDefault[string]("GATEWAY_ADDRESS", ":8080")
	if err != nil {
		return Gateway{}, err
	}
	sessionTTL, err := env.ParseDefault[time.Duration]("GATEWAY_SESSION_TTL", 12*time.Hour)
	if err != nil {
		return Gateway{}, err
	}
	redisAddress, err := env.ParseDefault[string]("REDIS_ADDRESS", "")
	if err != nil {
		return Gateway{}, err
	}
	redisPassword, err := env.ParseDefault[string]("REDIS_PASSWORD", "")
	if err != nil {
		return Gateway{}, err
	}
	redisDB, err := env.ParseDefault[int]("REDIS_DB", 0)
	if err != nil {
		return Gateway{}, err
	}

	return Gateway{
		Address:       address,
		SessionTTL:    sessionTTL,
		RedisAddress:  redisAddress,
		RedisPassword: redisPassword,
		RedisDB:       redisDB,
	}, nil
}
