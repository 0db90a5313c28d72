package main

import (
	"log"

	"github.com/finport/portfolio-etl/config"
	"github.com/finport/portfolio-etl/consts"
	"github.com/finport/portfolio-etl/controllers"
)

func main() {
	cfg, err := config.Load(consts.DefaultConfigFile)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	app := controllers.App{}
	if err := app.Initialize(cfg); err != nil {
		log.Fatal("failed to initialize app: ", err)
	}
	defer app.Close()

	app.RunServer()
}
