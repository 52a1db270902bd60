package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/resume-keeper/internal/adapter"
	"github.com/MKhiriev/resume-keeper/internal/client"
	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	var (
		address   string
		timeout   time.Duration
		tokenFile string
		version   bool
	)

	fs := flag.NewFlagSet("resume-keeper-client", flag.ExitOnError)
	fs.StringVar(&address, "a", "", "server address (overrides ADAPTER_ADDRESS)")
	fs.DurationVar(&timeout, "t", 0, "request timeout (overrides ADAPTER_REQUEST_TIMEOUT)")
	fs.StringVar(&tokenFile, "token-file", "", "token file (default $HOME/"+client.DefaultTokenFile+")")
	fs.BoolVar(&version, "version", false, "print build info and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: resume-keeper-client [-a addr] [-t timeout] [-token-file path] <command> [args]\n\n%s\n\nflags:\n", client.Usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if version {
		printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewConsoleLogger("resume-keeper-client")

	cfg, err := config.GetClientConfig(&config.StructuredConfig{
		Adapter: config.Adapter{HTTPAddress: address, RequestTimeout: timeout},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	tokens, err := client.NewFileTokenStore(tokenFile)
	if err != nil {
		log.Fatal().Err(err).Msg("create token store")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, tokens, os.Stdout, log)
	if err = app.Run(ctx, fs.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if fs.NArg() == 0 {
			fs.Usage()
		}
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
