package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"checkershub.com/checkers/cmd/web/internal/visitors"
	"checkershub.com/checkers/cmd/web/internal/web"
	"checkershub.com/checkers/cmd/web/templates"
	"checkershub.com/checkers/cmd/web/visitor"
	"checkershub.com/checkers/internal/checker"
	"checkershub.com/checkers/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting web service")

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Configuration loaded", "config", conf)

	if conf.SessionSecret == "" {
		slog.Warn("SESSION_SECRET not set; visitor cookies will not survive a restart")
	}
	sessionMgr := visitor.NewSessionManager(conf.SessionSecret)

	hub := visitors.NewHub(checker.NewLocalDesk(), conf.VisitorIdleTimeout, conf.MaxVisitors)
	go hub.Run(ctx)

	e, err := web.NewWebserver(sessionMgr, hub, templates.FooterView{
		Phone:    conf.Contact.SupportPhone,
		Email:    conf.Contact.SupportEmail,
		WhatsApp: conf.Contact.WhatsAppNumber,
	})
	if err != nil {
		slog.Error("failed to create webserver", "error", err)
		os.Exit(1)
	}

	addr := ":" + strconv.Itoa(conf.WebServerPort)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		// Echo returns an error on Shutdown; treat it as normal if context is done.
		if ctx.Err() != nil {
			return
		}
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
