package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"linkdingo/internal/app"
	"linkdingo/internal/config"
	"linkdingo/internal/crypto"
	"linkdingo/internal/logger"
)

const usage = `usage: linkdingo [-config file] <command> [args]

commands:
  count [-archived] [-page-size n]           count bookmarks
  check <url>                                check whether a URL is bookmarked
  tags                                       list all tags
  profile                                    show the user profile
  download <bookmark-id> <asset-id> <file>   save an asset to file
  upload <bookmark-id> <file>                attach a file to a bookmark
  encrypt-token <token> <secret>             print an encrypted_token value
`

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file; LINKDING_* variables override it")
	flag.Usage = func() { _, _ = fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if args[0] == "encrypt-token" {
		if len(args) != 3 {
			flag.Usage()
			os.Exit(2)
		}
		encrypted, err := crypto.EncryptToken(args[1], args[2])
		if err != nil {
			log.Fatalf("Error encrypting token: %v", err)
		}
		fmt.Println(encrypted)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error parsing log level: %v", err)
	}
	l := logger.New(level)

	client, err := app.NewClient(cfg, l)
	if err != nil {
		log.Fatalf("Error creating linkding client: %v", err)
	}

	application := app.NewApp(
		app.WithConfig(cfg),
		app.WithLinkdingClient(client),
		app.WithLogger(l),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx, args); err != nil {
		l.Errorf("%v", err)
		if errors.Is(err, app.ErrUsage) {
			flag.Usage()
		}
		stop()
		os.Exit(1)
	}
}
