package main

import (
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/application"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/config"
)

func main() {

	cfg, err := config.LoadConfig(".env")
	if err != nil {
		panic(err)
	}

	app := application.App{Cfg: cfg}
	app.Run()
}
