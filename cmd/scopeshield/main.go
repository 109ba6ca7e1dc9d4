package main

import (
	"log"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/app"
	"github.com/FeymanMCSQ/scopeshield-v3/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("scopeshield: init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("scopeshield: %v", err)
	}
}
