package main

import (
	"context"
	"log"

	"github.com/dkravtsov/authwatch/internal/healthwatch"
	"github.com/dkravtsov/authwatch/internal/healthwatch/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := healthwatch.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
