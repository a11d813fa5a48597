// Package config gathers the environment of the service in one place.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort      string
	StorageDriver string
	JWTSecret     string

	AppPublicURL  string
	PublicSiteURL string

	MercadoPagoAccessToken   string
	MercadoPagoWebhookSecret string
	PaymentGatewayMock       bool
	PaymentGatewayTimeout    time.Duration
	PaymentNotificationURL   string

	OTPHashCost int

	Mail     MailConfig
	DynamoDB DynamoDBConfig
}

type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Mock     bool
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// Load reads the environment. Call it after the .env autoload.
func Load() Config {
	return Config{
		HTTPPort:      getenvDefault("HTTP_PORT", "8080"),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		JWTSecret:     os.Getenv("JWT_SECRET"),

		AppPublicURL:  os.Getenv("APP_PUBLIC_URL"),
		PublicSiteURL: os.Getenv("PUBLIC_SITE_URL"),

		MercadoPagoAccessToken:   os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoWebhookSecret: os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"),
		PaymentGatewayMock:       getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
		PaymentGatewayTimeout:    getenvDuration("PAYMENT_GATEWAY_TIMEOUT", 10*time.Second),
		PaymentNotificationURL:   os.Getenv("PAYMENT_NOTIFICATION_URL"),

		OTPHashCost: getenvInt("OTP_HASH_COST", 10),

		Mail: MailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenvDefault("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenvDefault("MAIL_FROM", "no-reply@doctrust.app"),
			Mock:     getenvBool("MAIL_MOCK"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
	}
}

// Log prints the effective configuration with secrets left out.
func (c Config) Log() {
	zap.S().Infow("[config] loaded",
		"http_port", c.HTTPPort,
		"storage_driver", c.StorageDriver,
		"app_public_url", c.AppPublicURL,
		"public_site_url", c.PublicSiteURL,
		"payment_gateway_mock", c.PaymentGatewayMock,
		"payment_gateway_timeout", c.PaymentGatewayTimeout,
		"mail_mock", c.Mail.Mock,
		"smtp_host", c.Mail.Host,
		"dynamodb_region", c.DynamoDB.Region,
		"dynamodb_endpoint", c.DynamoDB.Endpoint,
		"jwt_secret_set", c.JWTSecret != "",
		"webhook_secret_set", c.MercadoPagoWebhookSecret != "",
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}

func getenvInt(key string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil {
		return v
	}
	return def
}
