package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"

	"github.com/jhoicas/Estoque-Residencial-api/docs"
	"github.com/jhoicas/Estoque-Residencial-api/internal/application/inventory"
	infrakafka "github.com/jhoicas/Estoque-Residencial-api/internal/infrastructure/kafka"
	"github.com/jhoicas/Estoque-Residencial-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Estoque-Residencial-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Estoque-Residencial-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Estoque-Residencial-api/internal/interfaces/http"
	"github.com/jhoicas/Estoque-Residencial-api/pkg/config"
	"github.com/jhoicas/Estoque-Residencial-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicação")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET obrigatório")
	}
	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("fuso horário")
	}

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir armazenamento")
	}
	defer backend.Close()

	recorder := metrics.NewRecorder(prometheus.DefaultRegisterer)

	var notifier inventory.Notifier
	if cfg.Kafka.Enabled {
		pub, err := infrakafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.TopicTreatments, log.Component("kafka"))
		if err != nil {
			log.Fatal().Err(err).Msg("conexão com Kafka")
		}
		defer pub.Close()
		notifier = pub
	}

	svc, err := inventory.NewService(ctx, backend.Deps(inventory.Deps{
		Notifier: notifier,
		Metrics:  recorder,
		PDF:      infrapdf.NewMarotoPlanGenerator(cfg.App.Name),
		Logger:   log.Component("ledger"),
		Location: loc,
	}))
	if err != nil {
		log.Fatal().Err(err).Msg("carregar ledger")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(recorder.Middleware())

	// Swagger UI: http://localhost:<port>/docs
	docs.SwaggerInfo.Title = cfg.App.Name
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque Residencial API",
	}))
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": backend.Driver})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Service:   svc,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
