package main

import (
	"flag"
	"log"
	"net"
	"net/http"

	"github.com/joho/godotenv"

	"libraryapp/internal/config"
	"libraryapp/internal/database"
	"libraryapp/internal/handler"
	"libraryapp/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := config.Load()

	host := flag.String("host", cfg.Host, "listen address")
	port := flag.String("port", cfg.Port, "listen port")
	debug := flag.Bool("debug", cfg.Debug, "log every request")
	flag.Parse()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	sessions := session.NewStore(cfg.SessionKey)
	h := handler.New(db, sessions, cfg.AdminCode)

	addr := net.JoinHostPort(*host, *port)
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h.Router(*debug)); err != nil {
		log.Fatalf("server: %v", err)
	}
}
