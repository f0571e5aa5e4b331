package main

import (
	"context"
	"log"

	"github.com/vitality-app/vitality/internal/cli"
	"github.com/vitality-app/vitality/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
