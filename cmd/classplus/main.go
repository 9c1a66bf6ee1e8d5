package main

import (
	"io"
	"log"
	"os"

	"classplus/internal/config"
	"classplus/internal/http/handlers"
	"classplus/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is required")
	}

	// Startup sequence: connect, seed, mark ready, listen. Requests that
	// somehow arrive earlier hit the readiness gate, not a nil store.
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatalf("store connect failed: %v", err)
	}
	log.Println("[store] connected")

	if err := repos.EnsureLessonsExist(db); err != nil {
		log.Fatalf("catalog seed failed: %v", err)
	}

	ready := &handlers.Readiness{}
	deps := handlers.NewDeps(db)
	app := handlers.NewApp(deps, ready)
	ready.Mark()

	log.Printf("[http] listening on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
