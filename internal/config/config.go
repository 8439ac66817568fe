package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	Auth     Auth     `envPrefix:"AUTH_"`
	Google   Google   `envPrefix:"GOOGLE_"`
	Midtrans Midtrans `envPrefix:"MIDTRANS_"`
	Storage  Storage  `envPrefix:"STORAGE_"`
	Shipping Shipping `envPrefix:"SHIPPING_"`
}

type Auth struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}

type Google struct {
	ProjectID       string `env:"PROJECT_ID"`
	CredentialsFile string `env:"CREDENTIALS_FILE"`
}

type Midtrans struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://app.midtrans.com"`
	ServerKey  string `env:"SERVER_KEY"`
	ClientKey  string `env:"CLIENT_KEY"`
}

// Storage selects the object-store backend: local, gcs or s3.
type Storage struct {
	Backend       string `env:"BACKEND" envDefault:"local"`
	LocalDir      string `env:"LOCAL_DIR" envDefault:"uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
	GCSBucket     string `env:"GCS_BUCKET"`
	S3Bucket      string `env:"S3_BUCKET"`
	S3Region      string `env:"S3_REGION"`
}

type Shipping struct {
	FlatRateCity string  `env:"FLAT_RATE_CITY" envDefault:"semarang"`
	FlatRate     float64 `env:"FLAT_RATE" envDefault:"15"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
