package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsi-tue/rri/internal/articlesystem"
	"github.com/fsi-tue/rri/internal/clock"
	"github.com/fsi-tue/rri/internal/config"
	"github.com/fsi-tue/rri/internal/filestore"
	"github.com/fsi-tue/rri/internal/ledger"
	"github.com/fsi-tue/rri/internal/mailer"
	"github.com/fsi-tue/rri/internal/server"
	"github.com/fsi-tue/rri/internal/sweeper"
	"github.com/fsi-tue/rri/utils"
)

func main() {

	cfg := config.Load()

	articleLedger, err := selectLedger(cfg)
	if err != nil {
		utils.Fatal("failed to set up ledger", map[string]any{"error": err.Error()})
	}

	files, err := filestore.NewDiskStore(cfg.ImageDir)
	if err != nil {
		utils.Fatal("failed to set up image store", map[string]any{"error": err.Error()})
	}

	clk := clock.SystemClock{}
	system := articlesystem.NewArticleSystem(articleLedger, clk, files, selectMailer(cfg), cfg.AdminEmail)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.New(system, clk, cfg.SweepInterval).Run(ctx)

	router := server.SetupRouter(system)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("Starting auction server on %s...\n", cfg.Port)
		if err := router.Run(cfg.Port); err != nil {
			utils.Error("failed to start server", map[string]any{"error": err.Error()})
			done <- syscall.SIGTERM
		}
	}()

	<-done
	utils.Info("server stopped", nil)
}

// selectLedger picks the durable ledger when a connection string is
// configured and falls back to the in-memory one otherwise
func selectLedger(cfg config.Config) (ledger.ArticleLedger, error) {
	if cfg.PostgresConn == "" {
		utils.Info("using in-memory ledger", nil)
		return ledger.NewMemoryLedger(), nil
	}
	return ledger.NewPostgresLedger(cfg.PostgresConn)
}

// selectMailer picks SMTP delivery when configured, log-only otherwise
func selectMailer(cfg config.Config) mailer.Mailer {
	if cfg.SMTPAddr == "" {
		return mailer.LogMailer{}
	}
	return mailer.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom)
}
