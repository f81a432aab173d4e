//go:build wireinject
// +build wireinject

package main

import (
	"github.com/ATenderholt/rainbow-notify/internal/http"
	"github.com/ATenderholt/rainbow-notify/internal/notify"
	"github.com/ATenderholt/rainbow-notify/internal/service"
	"github.com/ATenderholt/rainbow-notify/internal/settings"
	"github.com/google/wire"
)

var api = wire.NewSet(
	http.NewChiMux,
	http.NewNotifierHandler,
)

var notifications = wire.NewSet(
	service.NewEventNotifier,
	service.NewNotificationService,
	notify.NewSnsPublisher,
	wire.Bind(new(notify.Publisher), new(*notify.SnsPublisher)),
	wire.Bind(new(service.Config), new(*settings.Config)),
)

func InjectApp(cfg *settings.Config) (App, error) {
	wire.Build(
		NewApp,
		api,
		notifications,
		NewSnsClient,
	)
	return App{}, nil
}
