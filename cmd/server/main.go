package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/Sayog-Shendre/bloger-page/internal/app"
	"github.com/Sayog-Shendre/bloger-page/internal/db"
	httpx "github.com/Sayog-Shendre/bloger-page/internal/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment: %v", err)
	}

	cfg := app.LoadConfig()
	d, err := db.Open(cfg.DatabaseURL)
	app.Must(err)

	store := db.NewStore(d, cfg.DatabaseURL)
	srv := httpx.NewServer(store, cfg)

	log.Printf("listening on %s", cfg.Addr)
	app.Must(http.ListenAndServe(cfg.Addr, httpx.WithAccessLog(httpx.WithTimeout(srv))))
}
