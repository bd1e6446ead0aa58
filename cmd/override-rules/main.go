package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/hazicy/override-rules/internal/httpapi"
)

type serverConfig struct {
	Listen            string        `mapstructure:"listen"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	OverrideTimeout   time.Duration `mapstructure:"override_timeout"`
	FetchTimeout      time.Duration `mapstructure:"fetch_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level"`
}

// loadConfig reads settings from an optional config file plus OVERRIDE_*
// environment variables, falling back to defaults.
func loadConfig(path string) (serverConfig, error) {
	v := viper.New()

	v.SetDefault("listen", "127.0.0.1:25500")
	v.SetDefault("read_header_timeout", 5*time.Second)
	v.SetDefault("override_timeout", 60*time.Second)
	v.SetDefault("fetch_timeout", 15*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("log_level", "info")

	v.SetConfigName("override-rules")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/override-rules")

	v.SetEnvPrefix("OVERRIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return serverConfig{}, err
		}
		// No config file is fine; defaults and env apply.
	}

	var cfg serverConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return serverConfig{}, err
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "配置文件路径（可选）")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	srv := &http.Server{
		Addr: cfg.Listen,
		Handler: httpapi.NewRouter(httpapi.Options{
			OverrideTimeout: cfg.OverrideTimeout,
			FetchTimeout:    cfg.FetchTimeout,
			Logger:          log,
		}),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	log.Infof("listening on http://%s", cfg.Listen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")

		shCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			log.Errorf("graceful shutdown failed: %v", err)
			_ = srv.Close()
		}

		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}
}
