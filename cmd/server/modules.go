package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"yelpcamp/internal/api/routes"
	"yelpcamp/internal/config"
	"yelpcamp/internal/database"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
)

// StoreModule opens the configured backend and closes it on shutdown
var StoreModule = fx.Provide(provideStore, provideRepositories)

// ServiceModule wires the business services
var ServiceModule = fx.Provide(provideValidator, provideServices)

// HTTPModule builds the router and the server around it
var HTTPModule = fx.Provide(provideRouter, provideServer)

func provideStore(lc fx.Lifecycle, cfg *config.Config) (database.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()

	store, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Ping(ctx); err != nil {
				return err
			}
			logrus.WithField("driver", store.Driver()).Info("Store connected")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("Closing store")
			return store.Close(ctx)
		},
	})

	return store, nil
}

func provideRepositories(store database.Store, cfg *config.Config) (*repository.Repositories, error) {
	return repository.New(store, cfg.StoreTimeout)
}

func provideValidator() (*service.Validator, error) {
	return service.NewValidator()
}

func provideServices(repos *repository.Repositories, v *service.Validator) *routes.Services {
	return &routes.Services{
		Campgrounds: service.NewCampgroundService(repos.Campgrounds, repos.Reviews, v),
		Reviews:     service.NewReviewService(repos.Campgrounds, repos.Reviews, v),
	}
}

func provideRouter(services *routes.Services, store database.Store) *gin.Engine {
	return routes.SetupRoutes(services, store)
}

func provideServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routes.NewHandler(router),
	}
}

// StartServer listens once the store is up and shuts down gracefully.
// fx runs stop hooks in reverse order, so the server stops before the store closes.
func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, srv *http.Server, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logrus.Infof("Listening on port %s", cfg.Port)
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logrus.WithError(err).Error("HTTP server stopped")
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("Stopping HTTP server")
			if cfg.ShutdownTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.ShutdownTimeout)
				defer cancel()
			}
			return srv.Shutdown(ctx)
		},
	})
}
