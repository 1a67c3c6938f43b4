package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labhacknexus/content-gateway/internal/config"
	"github.com/labhacknexus/content-gateway/internal/handler"
	"github.com/labhacknexus/content-gateway/internal/identity"
	"github.com/labhacknexus/content-gateway/internal/repository"
	"github.com/labhacknexus/content-gateway/internal/server"
	"github.com/labhacknexus/content-gateway/internal/service"
	"github.com/labhacknexus/content-gateway/internal/store"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()

	if err := loadEnv(); err != nil {
		logger.Sugar().Panicf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	storeConfig := config.StoreConfig{
		URL:        os.Getenv("STORE_URL"),
		AnonKey:    os.Getenv("STORE_ANON_KEY"),
		ServiceKey: os.Getenv("STORE_SERVICE_KEY"),
	}
	if err := storeConfig.Validate(); err != nil {
		logger.Sugar().Panicf("invalid store configuration: %s", err.Error())
	}

	db := store.New(storeConfig.URL, storeConfig.AnonKey, logger)
	// The service-role handle bypasses row-level policy; it reaches only the
	// registration flow.
	adminDB := store.New(storeConfig.URL, storeConfig.ServiceKey, logger)
	provider := identity.NewGoTrue(storeConfig.URL, storeConfig.AnonKey, storeConfig.ServiceKey, logger)

	repos := repository.New(db, adminDB)
	services := service.New(logger, repos, provider)
	handlers := handler.New(services)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
