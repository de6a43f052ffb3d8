package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/groph-gold/internal/app"
	"github.com/fsdevblog/groph-gold/internal/config"
	"github.com/fsdevblog/groph-gold/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.New(conf, l).Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			return
		}
		l.WithError(err).Fatal("app stopped")
	}
}
