package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gisely-Aguiar/backend-vousher/config"
	"github.com/Gisely-Aguiar/backend-vousher/controllers"
	"github.com/Gisely-Aguiar/backend-vousher/events"
	"github.com/Gisely-Aguiar/backend-vousher/repositories"
	"github.com/Gisely-Aguiar/backend-vousher/routes"
	"github.com/Gisely-Aguiar/backend-vousher/services"
	"github.com/Gisely-Aguiar/backend-vousher/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// ============================================
	// 1. CONFIGURAÇÃO
	// ============================================
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	if !cfg.PasswordHashing {
		log.Warn().Msg("PASSWORD_HASHING=false: senhas gravadas em texto puro")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("db", cfg.DBHost+":"+cfg.DBPort+"/"+cfg.DBName).
		Int("pool", cfg.DBPoolSize).
		Msg("configuration loaded")

	// ============================================
	// 2. MYSQL
	// ============================================
	db, err := repositories.NewDatabase(cfg.DSN(), cfg.DBPoolSize)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}
	defer sqlDB.Close()

	// ============================================
	// 3. CACHE E EVENTOS (opcionais)
	// ============================================
	cache := repositories.NewVoucherCache(cfg.MemcachedHost)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		rabbit, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.VoucherQueue)
		if err != nil {
			// Sem fila o cadastro continua funcionando
			log.Warn().Err(err).Msg("RabbitMQ unavailable, voucher events disabled")
		} else {
			publisher = rabbit
		}
	}

	// ============================================
	// 4. CAPAS
	// ============================================
	systemUserRepo := repositories.NewSystemUserRepository(db)
	voucherUserRepo := repositories.NewVoucherUserRepository(db)

	tokens := utils.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	passwords := utils.NewPasswordChecker(cfg.PasswordHashing)

	authService := services.NewAuthService(systemUserRepo, tokens, passwords)
	systemUserService := services.NewSystemUserService(systemUserRepo, passwords)
	voucherUserService := services.NewVoucherUserService(voucherUserRepo, cache, publisher)

	ctrls := routes.Controllers{
		Info:         controllers.NewInfoController(sqlDB, cfg.PasswordHashing),
		Auth:         controllers.NewAuthController(authService),
		SystemUsers:  controllers.NewSystemUserController(systemUserService),
		VoucherUsers: controllers.NewVoucherUserController(voucherUserService),
	}
	if cfg.IsDevelopment() {
		devService := services.NewDevService(repositories.NewDevRepository(db), systemUserRepo, voucherUserRepo, cache, passwords)
		ctrls.Dev = controllers.NewDevController(devService)
		log.Warn().Msg("development routes enabled under /api/dev")
	}

	// ============================================
	// 5. GIN
	// ============================================
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.Setup(router, tokens, ctrls)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ============================================
	// 6. SERVIDOR + GRACEFUL SHUTDOWN
	// ============================================
	go func() {
		log.Info().Msgf("voucher API listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if err := publisher.Close(); err != nil {
		log.Error().Err(err).Msg("error closing RabbitMQ publisher")
	}

	log.Info().Msg("server stopped")
}

// setupLogger: console legível em desenvolvimento, JSON no resto
func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
