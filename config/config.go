package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret é a chave usada quando JWT_SECRET não está definida.
// Só é aceita em APP_ENV=development (ver Validate).
const DefaultJWTSecret = "sua_chave_secreta_super_segura_2024"

// Config contém a configuração da aplicação
// Cada campo corresponde a uma variável de ambiente
type Config struct {
	// Servidor
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"APP_ENV"` // development | production
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MySQL
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBPoolSize int    `mapstructure:"DB_POOL_SIZE"`

	// Autenticação
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	PasswordHashing    bool   `mapstructure:"PASSWORD_HASHING"`

	// Cache e eventos (opcionais: vazio = desativado)
	MemcachedHost string `mapstructure:"MEMCACHED_HOST"`
	RabbitMQURL   string `mapstructure:"RABBITMQ_URL"`
	VoucherQueue  string `mapstructure:"VOUCHER_QUEUE"`
}

// Load lê a configuração das variáveis de ambiente (e de um .env opcional)
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	// Valores padrão pensados para desenvolvimento local
	v.SetDefault("PORT", "5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "voucher_system_auth")
	v.SetDefault("DB_POOL_SIZE", 10)
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("JWT_EXPIRATION_HOURS", 8)
	v.SetDefault("PASSWORD_HASHING", true)
	v.SetDefault("MEMCACHED_HOST", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("VOUCHER_QUEUE", "voucher_users_queue")

	// O .env é opcional: se não existir seguimos só com o ambiente
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// IsDevelopment indica se as rotas de desenvolvimento (/api/dev/*) podem ser expostas
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// TokenTTL é a validade absoluta de um token emitido no login
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpirationHours) * time.Hour
}

// DSN monta a string de conexão do MySQL
// Formato: usuario:senha@tcp(host:porta)/banco?opções
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Validate recusa combinações que só fazem sentido em desenvolvimento
func (c *Config) Validate() error {
	if c.JWTExpirationHours <= 0 {
		return errors.New("JWT_EXPIRATION_HOURS must be positive")
	}
	if c.DBPoolSize <= 0 {
		return errors.New("DB_POOL_SIZE must be positive")
	}
	if c.IsDevelopment() {
		return nil
	}
	if c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be set outside development")
	}
	if !c.PasswordHashing {
		return errors.New("PASSWORD_HASHING cannot be disabled outside development")
	}
	return nil
}
