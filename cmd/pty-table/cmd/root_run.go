package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/josepacelli/pty-table/internal/config"
	"github.com/josepacelli/pty-table/internal/monitoring"
	"github.com/josepacelli/pty-table/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the metrics, healthcheck and table lookup endpoints",
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	if config.C.Monitoring.Bind == "" {
		return errors.New("monitoring.bind must be configured")
	}

	if err := runTasks(
		setLogLevel,
		setSyslog,
		printStartMessage,
		setupStorage,
		setupMonitoring,
	); err != nil {
		log.Fatal(err)
	}

	sigChan := make(chan os.Signal, 1)
	exitChan := make(chan struct{})
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	log.WithField("signal", <-sigChan).Info("signal received")
	go func() {
		log.Warning("stopping pty-table")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := monitoring.Stop(ctx); err != nil {
			log.Fatal(err)
		}
		exitChan <- struct{}{}
	}()
	select {
	case <-exitChan:
	case s := <-sigChan:
		log.WithField("signal", s).Info("signal received, stopping immediately")
	}

	return nil
}

func setLogLevel() error {
	log.SetLevel(log.Level(uint8(config.C.General.LogLevel)))
	return nil
}

func printStartMessage() error {
	log.WithFields(log.Fields{
		"version":  version,
		"data_dir": config.C.Table.DataDir,
		"file":     config.C.Table.File,
		"schema":   config.C.Table.Schema,
	}).Info("starting pty-table")
	return nil
}

func setupStorage() error {
	if err := storage.Setup(config.C); err != nil {
		return errors.Wrap(err, "setup storage error")
	}
	return nil
}

func setupMonitoring() error {
	if err := monitoring.Setup(config.C); err != nil {
		return errors.Wrap(err, "setup monitoring error")
	}
	return nil
}
