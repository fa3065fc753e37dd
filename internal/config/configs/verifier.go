package configs

import (
	"net/url"
	"time"
)

// Verifier locates the external verification services. Every call is
// bounded by Timeout.
type Verifier struct {
	IdentityURL url.URL       `env:"IDENTITY_URL" envDefault:"http://localhost:8081"`
	MetricsURL  url.URL       `env:"METRICS_URL" envDefault:"http://localhost:8082"`
	ContentURL  url.URL       `env:"CONTENT_URL" envDefault:"http://localhost:8083"`
	PaymentURL  url.URL       `env:"PAYMENT_URL" envDefault:"http://localhost:8084"`
	APIKey      string        `env:"API_KEY"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"15s"`
}
