package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	appanalysis "github.com/bryanwahyu/image-analyzer/internal/application/analysis"
	"github.com/bryanwahyu/image-analyzer/internal/config"
	"github.com/bryanwahyu/image-analyzer/internal/infra/ai/gemini"
	"github.com/bryanwahyu/image-analyzer/internal/infra/httpserver"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		logrus.Fatalf("config load error: %v", err)
	}

	apiKey := cfg.APIKey()
	if apiKey == "" {
		// the process still starts; analysis calls will fail on first use
		logrus.Warn("GEMINI_API_KEY is not set")
	}

	// init AI client
	client := gemini.NewClient(apiKey, cfg.AI.BaseURL, cfg.AI.Model)

	// init service
	svc := appanalysis.NewService(client)

	// init router
	mux := httpserver.NewRouter(svc)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// completion calls are slow; give responses room to finish
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		logrus.Infof("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logrus.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("shutdown error: %v", err)
	}
}
