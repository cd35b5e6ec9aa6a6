package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"samvidha-backend/lib/configutil"
	"samvidha-backend/lib/serviceutil"
	"samvidha-backend/lib/telemetry"
	samvidha "samvidha-backend/services/samvidha"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Config struct {
	Port    int    `json:"port"`
	BaseUrl string `json:"base_url"`
	// how long a login's scraped result stays available, in seconds
	SessionTtlSeconds int  `json:"session_ttl_seconds"`
	Debug             bool `json:"debug"`
}

func main() {
	ctx := serviceutil.SignalContext()

	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	if config.Port == 0 {
		config.Port = 8080
	}
	if config.BaseUrl == "" {
		config.BaseUrl = "https://samvidha.iare.ac.in"
	}

	telemetry.InitSlog(config.Debug)
	tel, err := telemetry.SetupFromEnv(ctx, "samvidha-server")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer tel.Shutdown(ctx)
	telemetry.InstrumentPerfStats(ctx)

	service := samvidha.NewService(samvidha.ServiceOptions{
		BaseUrl:    config.BaseUrl,
		SessionTTL: time.Duration(config.SessionTtlSeconds) * time.Second,
	})

	app := fiber.New(fiber.Config{
		AppName: "samvidha-backend",
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	setupRoutes(app, service)

	go func() {
		<-ctx.Done()
		err := app.Shutdown()
		if err != nil {
			slog.Error("shutdown", "err", err)
		}
	}()

	slog.Info("listening...", "port", config.Port)
	err = app.Listen(fmt.Sprintf(":%d", config.Port))
	if err != nil {
		serviceutil.Fatal("server exited", err)
	}
}
