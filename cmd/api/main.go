package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pix_checkout/internal/adapter/http/routes"
	"pix_checkout/internal/config"
	"pix_checkout/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title           Pix Checkout API
// @version         1.0
// @description     Pix checkout relay: creates Pix charges through the payment gateway and serves the checkout pages.

// @host      localhost:3000
// @BasePath  /

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "pix-checkout",
		Short:         "Pix checkout relay and pages",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(qrcodeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default command)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	log := logger.New(cfg.Environment)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}

