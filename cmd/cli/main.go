package main

import (
	"context"
	"log"
	"os"

	"github.com/avillagran/boletera/internal/buildinfo"
	"github.com/avillagran/boletera/internal/client/cli"
	"github.com/avillagran/boletera/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
