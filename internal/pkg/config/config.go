package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, shop pricing), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Shop     ShopConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"Europe/Paris"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Address      string        `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`
	URL          string        `envconfig:"REDIS_URL"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

// An empty URL switches order events to the logging publisher.
type RabbitMQConfig struct {
	URL      string `envconfig:"RABBITMQ_URL"`
	Exchange string `envconfig:"RABBITMQ_EXCHANGE" default:"sandwich.events"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Cart-Session"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Cart-Session"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// Both set: an admin account with these credentials is ensured at startup.
type AdminConfig struct {
	Email    string `envconfig:"ADMIN_EMAIL"`
	Password string `envconfig:"ADMIN_PASSWORD"`
}

type ShopConfig struct {
	ShippingFee           string        `envconfig:"SHIPPING_FEE" default:"2.50"`
	FreeShippingThreshold string        `envconfig:"FREE_SHIPPING_THRESHOLD" default:"15.00"`
	CartTTL               time.Duration `envconfig:"CART_TTL" default:"720h"`
	SessionIdleTTL        time.Duration `envconfig:"SESSION_IDLE_TTL" default:"30m"`
	OrderHandoffTTL       time.Duration `envconfig:"ORDER_HANDOFF_TTL" default:"1h"`
	PaymentStepInterval   time.Duration `envconfig:"PAYMENT_STEP_INTERVAL" default:"2s"`
	DeliveryEstimate      time.Duration `envconfig:"DELIVERY_ESTIMATE" default:"45m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// ShippingAmounts parses the decimal shop settings.
func (c ShopConfig) ShippingAmounts() (fee, threshold decimal.Decimal, err error) {
	fee, err = decimal.NewFromString(c.ShippingFee)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid SHIPPING_FEE %q: %w", c.ShippingFee, err)
	}
	threshold, err = decimal.NewFromString(c.FreeShippingThreshold)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid FREE_SHIPPING_THRESHOLD %q: %w", c.FreeShippingThreshold, err)
	}
	if fee.IsNegative() || threshold.IsNegative() {
		return decimal.Zero, decimal.Zero, errors.New("shipping amounts cannot be negative")
	}
	return fee, threshold, nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments set variables directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, _, err := cfg.Shop.ShippingAmounts(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Paris",
			MaxConns: 5,
		},
		Redis: RedisConfig{
			Address:  "localhost:16379",
			PoolSize: 5,
		},
		RabbitMQ: RabbitMQConfig{
			Exchange: "sandwich.events",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Paris",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Shop: ShopConfig{
			ShippingFee:           "2.50",
			FreeShippingThreshold: "15.00",
			CartTTL:               24 * time.Hour,
			SessionIdleTTL:        time.Minute,
			OrderHandoffTTL:       time.Hour,
			PaymentStepInterval:   2 * time.Second,
			DeliveryEstimate:      45 * time.Minute,
		},
	}
}
