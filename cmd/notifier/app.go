package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ATenderholt/rainbow-notify/internal/service"
	"github.com/ATenderholt/rainbow-notify/internal/settings"
	"github.com/go-chi/chi/v5"
)

type App struct {
	cfg           *settings.Config
	srv           *http.Server
	notifications *service.NotificationService
}

func NewApp(cfg *settings.Config, mux *chi.Mux, notifications *service.NotificationService) (App, error) {
	err := os.MkdirAll(cfg.DataPath(), 0755)
	if err != nil {
		return App{}, err
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.BasePort),
		Handler: mux,
	}

	return App{
		cfg:           cfg,
		srv:           srv,
		notifications: notifications,
	}, nil
}

func (app App) Start() error {
	err := app.notifications.LoadAll()
	if err != nil {
		return err
	}

	go func() {
		err := app.srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Errorf("Unable to serve: %v", err)
		}
	}()

	logger.Infof("Listening on port %d", app.cfg.BasePort)

	return nil
}

func (app App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return app.srv.Shutdown(ctx)
}
