package model

import "time"

// ================ Config ================
type CatalogConfig struct {
	RemoteURL    string        `envconfig:"CATALOG_REMOTE_URL" default:"https://community-support-backend.onrender.com/api"`
	FetchEnabled bool          `envconfig:"CATALOG_FETCH_ENABLED" default:"true"`
	FetchTimeout time.Duration `envconfig:"CATALOG_FETCH_TIMEOUT" default:"10s"`
}

type ConversationConfig struct {
	TTL            time.Duration `envconfig:"CONVERSATION_TTL" default:"30m"`
	MaxInputLength int           `envconfig:"CONVERSATION_MAX_INPUT_LENGTH" default:"2000"`
}

type IntakeConfig struct {
	Delivery string        `envconfig:"INTAKE_DELIVERY" default:"http"`
	Endpoint string        `envconfig:"INTAKE_ENDPOINT" default:"https://community-support-backend.onrender.com/api/requests"`
	Timeout  time.Duration `envconfig:"INTAKE_TIMEOUT" default:"15s"`
	SES      struct {
		Region    string `envconfig:"INTAKE_SES_REGION" default:"us-east-1"`
		Sender    string `envconfig:"INTAKE_SES_SENDER"`
		Recipient string `envconfig:"INTAKE_SES_RECIPIENT"`
	}
}

type ServerConfig struct {
	Addr string `envconfig:"SERVER_ADDR" default:":8080"`
}
