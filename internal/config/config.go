package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatabaseURL           string
	LogLevel              string
	Debug                 bool
	ServiceName           string
	Environment           string
	ServerPort            string
	PublicBaseURL         string
	JwtSecret             string
	AIBaseURL             string
	AIAPIKey              string
	AIModel               string
	MetaVerifyToken       string
	InstagramVerifyToken  string
	TwitterConsumerSecret string
	WebhookRateLimit      float64
	WebhookRateBurst      int
}

func LoadConfig() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	debug := os.Getenv("DEBUG")
	if debug == "" {
		debug = "false"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "skylinekai-platform"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	publicBaseURL := strings.TrimSuffix(os.Getenv("PUBLIC_BASE_URL"), "/")
	if publicBaseURL == "" {
		publicBaseURL = "http://localhost:" + serverPort
	}

	aiModel := os.Getenv("AI_MODEL")
	if aiModel == "" {
		aiModel = "deepseek/deepseek-chat"
	}

	metaVerifyToken := os.Getenv("META_VERIFY_TOKEN")
	if metaVerifyToken == "" {
		metaVerifyToken = "skylinekai_verify"
	}

	instagramVerifyToken := os.Getenv("INSTAGRAM_VERIFY_TOKEN")
	if instagramVerifyToken == "" {
		instagramVerifyToken = "skylinekai_verify_token"
	}

	rateLimit := 5.0
	if rl := os.Getenv("WEBHOOK_RATE_LIMIT"); rl != "" {
		if parsed, err := strconv.ParseFloat(rl, 64); err == nil && parsed > 0 {
			rateLimit = parsed
		}
	}

	rateBurst := 10
	if rb := os.Getenv("WEBHOOK_RATE_BURST"); rb != "" {
		if parsed, err := strconv.Atoi(rb); err == nil && parsed > 0 {
			rateBurst = parsed
		}
	}

	return &Config{
		DatabaseURL:           databaseURL,
		LogLevel:              logLevel,
		Debug:                 debug == "true",
		ServiceName:           serviceName,
		Environment:           environment,
		ServerPort:            serverPort,
		PublicBaseURL:         publicBaseURL,
		JwtSecret:             jwtSecret,
		AIBaseURL:             os.Getenv("AI_BASE_URL"),
		AIAPIKey:              os.Getenv("AI_API_KEY"),
		AIModel:               aiModel,
		MetaVerifyToken:       metaVerifyToken,
		InstagramVerifyToken:  instagramVerifyToken,
		TwitterConsumerSecret: os.Getenv("TWITTER_CONSUMER_SECRET"),
		WebhookRateLimit:      rateLimit,
		WebhookRateBurst:      rateBurst,
	}, nil
}
