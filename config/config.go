package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config armazena todas as configurações da aplicação.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string
	Location    *time.Location // Fuso usado nos limites de mês do fluxo de caixa

	// Banco de Dados (PostgreSQL). Vazio = banco indisponível.
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis)
	RedisAddr    string
	CacheTimeout time.Duration

	// Segurança (JWT)
	JWTSecretKey string
	TokenExpiry  time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Estoque
	LowStockThreshold int
	LowStockCron      string

	// HTTP
	CORSAllowedOrigins []string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O arquivo .env, se existir, já deve ter sido carregado pelo godotenv no main.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	secret := v.GetString("JWT_SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("a variável de ambiente JWT_SECRET_KEY deve ser definida")
	}

	loc, err := loadLocation(v.GetString("APP_TIMEZONE"))
	if err != nil {
		return nil, err
	}

	threshold := v.GetInt("LOW_STOCK_THRESHOLD")
	if threshold < 0 {
		return nil, fmt.Errorf("LOW_STOCK_THRESHOLD não pode ser negativo: %d", threshold)
	}

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Location:    loc,

		DatabaseURL: v.GetString("DATABASE_URL"),
		DBTimeout:   time.Duration(v.GetInt("DB_TIMEOUT_SEC")) * time.Second,

		RedisAddr:    v.GetString("REDIS_ADDR"),
		CacheTimeout: time.Duration(v.GetInt("CACHE_TIMEOUT_SEC")) * time.Second,

		JWTSecretKey: secret,
		TokenExpiry:  time.Duration(v.GetInt("JWT_EXPIRY_MIN")) * time.Minute,

		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(v.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute,

		LowStockThreshold: threshold,
		LowStockCron:      v.GetString("LOW_STOCK_CRON"),

		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_TIMEZONE", "Local")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_TIMEOUT_SEC", 5)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("CACHE_TIMEOUT_SEC", 10)
	v.SetDefault("JWT_SECRET_KEY", "")
	v.SetDefault("JWT_EXPIRY_MIN", 60)
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD_MIN", 1)
	v.SetDefault("LOW_STOCK_THRESHOLD", 10)
	v.SetDefault("LOW_STOCK_CRON", "0 8 * * *")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// loadLocation resolve o fuso configurado; "Local" (padrão) usa o fuso do host.
func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE inválido (%s): %w", name, err)
	}
	return loc, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
