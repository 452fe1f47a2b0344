package main

import (
	"context"
	"net/http"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	shutdown "github.com/htchan/goshutdown"
	"github.com/rs/zerolog/log"

	_ "github.com/mihalio25/yandex-market-partner-api/docs"
	"github.com/mihalio25/yandex-market-partner-api/internal/config"
	"github.com/mihalio25/yandex-market-partner-api/internal/sandbox"
	"github.com/mihalio25/yandex-market-partner-api/internal/utils"
)

// @title			Yandex Market Partner API Sandbox
// @version		1.0
// @description	local emulator of the partner API subset the toolkit calls
// @BasePath		/
func main() {
	closeLogs := utils.SetupLogger()
	defer closeLogs()

	conf, err := config.LoadSandboxConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}

	tp, err := utils.TracerProvider(conf.TraceConfig)
	if err != nil {
		log.Error().Err(err).Msg("init tracer failed")
	}

	store := sandbox.NewStore(&conf.BinConfig)
	metrics := sandbox.NewMetrics()

	shutdown.LogEnabled = true
	shutdownHandler := shutdown.New(syscall.SIGINT, syscall.SIGTERM)

	r := chi.NewRouter()
	sandbox.AddRoutes(r, store, &conf.BinConfig, metrics)

	server := http.Server{
		Addr:         conf.BinConfig.Addr,
		ReadTimeout:  conf.BinConfig.ReadTimeout,
		WriteTimeout: conf.BinConfig.WriteTimeout,
		IdleTimeout:  conf.BinConfig.IdleTimeout,
		Handler:      r,
	}

	go func() {
		log.Info().Str("addr", conf.BinConfig.Addr).Msg("start sandbox server")

		if err := server.ListenAndServe(); err != nil {
			log.Fatal().Err(err).Msg("sandbox stopped")
		}
	}()

	shutdownHandler.Register("sandbox server", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		server.Shutdown(ctx)

		return nil
	})

	if tp != nil {
		shutdownHandler.Register("tracer", func() error {
			return tp.Shutdown(context.Background())
		})
	}

	shutdownHandler.Listen(60 * time.Second)
}
