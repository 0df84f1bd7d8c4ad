// Package main implements the mtb-intake service binary.
//
// "mtb-intake serve" runs the HTTP intake service; "mtb-intake check"
// validates MTB case files from disk or stdin and prints the
// data-quality report, which makes the checker usable in pipelines
// without a running service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gomtb/validator/catalog"
	"github.com/gomtb/validator/engine"
	"github.com/gomtb/validator/intake"
	"github.com/gomtb/validator/mtb"
)

const version = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "mtb-intake",
		Short: "MTB case-file intake and validation service",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the intake HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate MTB case files and print their data-quality reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("mtb-intake " + version)
		},
	}
}

func newChecker() (*engine.Checker, error) {
	catalogs, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalogs: %w", err)
	}
	return engine.New(catalog.NewCached(catalogs, 16)), nil
}

func runServer() error {
	cfg, err := intake.LoadConfig()
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Str("service", "mtb-intake").Logger()

	checker, err := newChecker()
	if err != nil {
		return err
	}

	store, err := intake.OpenStore(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	var forwarder intake.Forwarder = intake.NopForwarder{}
	if cfg.QueryServiceURL != "" {
		forwarder = intake.NewHTTPForwarder(cfg.QueryServiceURL)
	} else {
		log.Warn().Msg("no query service configured, accepted files are not forwarded")
	}

	server := intake.NewServer(checker, store, forwarder, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("intake service listening")
		errCh <- server.Start(cfg.ListenAddr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func runCheck(paths []string) error {
	checker, err := newChecker()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	exitCode := 0
	for _, path := range paths {
		raw, err := readInput(path)
		if err != nil {
			return err
		}

		file := &mtb.File{}
		if err := json.Unmarshal(raw, file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		_, report := checker.Check(file)
		if report == nil {
			fmt.Fprintf(os.Stderr, "%s: ok\n", path)
			continue
		}

		if err := enc.Encode(report); err != nil {
			return err
		}
		if report.HasErrors() {
			exitCode = 1
		}
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
