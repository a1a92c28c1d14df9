package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	MessageStream MessageStreamConfig
	HttpClient    HttpClientConfig
	UserService   UserServiceConfig
	CourtService  CourtServiceConfig
	PayPal        PayPalConfig
	Pricing       PricingConfig
	Reservation   ReservationConfig
	Booking       BookingConfig
}

type HttpServerConfig struct {
	Host string `envconfig:"http_server_host" default:"0.0.0.0"`
	Port string `envconfig:"http_server_port" default:"3000"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"db_host" default:"localhost"`
	Port         string `envconfig:"db_port" default:"5432"`
	Username     string `envconfig:"db_username" default:"postgres"`
	Password     string `envconfig:"db_password" default:"postgres"`
	Name         string `envconfig:"db_name" default:"reservation"`
	SSLMode      string `envconfig:"db_ssl_mode" default:"disable"`
	MaxOpenConns int    `envconfig:"db_max_open_conns" default:"25"`
	MaxIdleConns int    `envconfig:"db_max_idle_conns" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"redis_host" default:"localhost"`
	Port     string `envconfig:"redis_port" default:"6379"`
	Password string `envconfig:"redis_password" default:""`
	DB       int    `envconfig:"redis_db" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"amqp_host" default:"localhost"`
	Port     string `envconfig:"amqp_port" default:"5672"`
	Username string `envconfig:"amqp_username" default:"guest"`
	Password string `envconfig:"amqp_password" default:"guest"`
}

type HttpClientConfig struct {
	Timeout               time.Duration `envconfig:"http_client_timeout" default:"20s"`
	FailureThreshold      int64         `envconfig:"http_client_failure_threshold" default:"10"`
	MaxConcurrentRequests int           `envconfig:"http_client_max_concurrent" default:"100"`
}

type UserServiceConfig struct {
	Host string `envconfig:"user_service_host" default:"localhost"`
	Port string `envconfig:"user_service_port" default:"8081"`
}

type CourtServiceConfig struct {
	Host string `envconfig:"court_service_host" default:"localhost"`
	Port string `envconfig:"court_service_port" default:"8082"`
}

type PayPalConfig struct {
	BaseURL      string `envconfig:"paypal_base_url" default:"https://api-m.sandbox.paypal.com"`
	ClientID     string `envconfig:"paypal_client_id"`
	ClientSecret string `envconfig:"paypal_client_secret"`
}

// PricingConfig keeps tax rate and booking fee configurable instead of
// hard-coding the client-side constants.
type PricingConfig struct {
	TaxRate    float64 `envconfig:"pricing_tax_rate" default:"0.10"`
	BookingFee float64 `envconfig:"pricing_booking_fee" default:"2.50"`
	Currency   string  `envconfig:"pricing_currency" default:"AUD"`
}

type ReservationConfig struct {
	HoldDuration time.Duration `envconfig:"reservation_hold_duration" default:"10m"`
	// SlotTTLGrace is added on top of the hold duration for the Redis slot
	// keys, so a crashed expiry worker still frees the slots eventually.
	SlotTTLGrace time.Duration `envconfig:"reservation_slot_ttl_grace" default:"60s"`
}

type BookingConfig struct {
	CancellationWindow time.Duration `envconfig:"booking_cancellation_window" default:"2h"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return &cfg
}
