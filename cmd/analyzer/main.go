package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"access-log-analytics/internal/app"
	"access-log-analytics/internal/shared/configs"

	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("analyzer", pflag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: analyzer [flags] [log-file ...]\n\nFlags:\n")
		flags.PrintDefaults()
	}
	configPath := flags.StringP("config", "c", "./configs/configs.yml", "path of the YAML config file")
	configs.RegisterAnalysisFlags(flags)
	_ = flags.Parse(os.Args[1:])

	cfg, err := configs.LoadConfigWithFlags(*configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	analyzer, err := app.NewAnalyzer(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize analyzer: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := analyzer.Analyze(ctx, flags.Args(), os.Stdout); err != nil {
		stop()
		os.Exit(1)
	}
}
