package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/userbook/internal/server"
	"github.com/dmitrijs2005/userbook/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app := server.NewApp(cfg)

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
