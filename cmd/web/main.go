// /cmd/web/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"github.com/ericoliveiras/encomendas-api/internal/config"
	"github.com/ericoliveiras/encomendas-api/internal/database"
	"github.com/ericoliveiras/encomendas-api/internal/handler"
	"github.com/ericoliveiras/encomendas-api/internal/model"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var cfg *config.Config

	app := &cli.App{
		Name:  "encomendas-api",
		Usage: "API REST de encomendas",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "arquivo .env carregado antes de ler o ambiente",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = config.Load(c.String("env-file"))
			if err != nil {
				return err
			}
			return cfg.ConfigureLogging()
		},
		Action: func(c *cli.Context) error { return serve(cfg) },
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "sobe o servidor HTTP",
				Action: func(c *cli.Context) error { return serve(cfg) },
			},
			{
				Name:   "migrate",
				Usage:  "cria ou ajusta as tabelas",
				Action: func(c *cli.Context) error { return withDB(cfg, database.Migrate) },
			},
			{
				Name:  "seed",
				Usage: "grava uma encomenda de exemplo se a tabela estiver vazia",
				Action: func(c *cli.Context) error {
					return withDB(cfg, func(db *gorm.DB) error {
						exec, err := database.NewSQLExecutor(db)
						if err != nil {
							return err
						}
						return database.SeedEncomendas(c.Context, database.NewRepository(model.Encomendas, exec))
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("Encerrando com erro")
	}
}

func withDB(cfg *config.Config, fn func(db *gorm.DB) error) error {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(db)
}

func serve(cfg *config.Config) error {
	return withDB(cfg, func(db *gorm.DB) error {
		if cfg.AutoMigrate {
			if err := database.Migrate(db); err != nil {
				return err
			}
		}

		exec, err := database.NewSQLExecutor(db)
		if err != nil {
			return err
		}

		var handlers []*handler.ResourceHandler
		for _, res := range cfg.Resources() {
			handlers = append(handlers, &handler.ResourceHandler{
				Resource: res,
				Repo:     database.NewRepository(res, exec),
			})
		}

		log.WithFields(log.Fields{"url": "http://localhost" + cfg.Addr()}).Info("Iniciando servidor")

		killSignalChan := getKillSignalChan()
		srv, serverErr := startServer(cfg, handler.NewRouter(handlers, cfg.CORSAllowOrigins))

		select {
		case err := <-serverErr:
			return errors.Wrap(err, "falha ao iniciar o servidor")
		case killSignal := <-killSignalChan:
			logKillSignal(killSignal)
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	})
}

// startServer sobe o servidor em segundo plano. Uma falha de ListenAndServe
// chega pelo canal devolvido, para que quem chamou feche o banco antes de sair.
func startServer(cfg *config.Config, router http.Handler) (*http.Server, <-chan error) {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	return srv, serverErr
}

func getKillSignalChan() chan os.Signal {
	osKillSignalChan := make(chan os.Signal, 1)
	signal.Notify(osKillSignalChan, os.Interrupt, syscall.SIGTERM)
	return osKillSignalChan
}

func logKillSignal(killSignal os.Signal) {
	switch killSignal {
	case os.Interrupt:
		log.Info("Recebido SIGINT, encerrando...")
	case syscall.SIGTERM:
		log.Info("Recebido SIGTERM, encerrando...")
	}
}
