package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/luhtfiimanal/go-bsgs/internal/cli"
)

func main() {
	cfg, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cli.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		log.Fatal(err)
	}
}
