package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/onair/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/onair/config.toml)")
	headless := flag.Bool("headless", false, "log to stderr instead of drawing the matrix")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Headless: *headless}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "onair: %v\n", err)
		return 1
	}
	return 0
}
