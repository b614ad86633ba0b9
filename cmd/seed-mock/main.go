package main

import (
	"bytes"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
	"github.com/Clark-Hu/movie-catalog/internal/seed"
)

func main() {
	var (
		port   = flag.String("port", "9099", "port to listen on")
		data   = flag.String("data", "", "path to a catalog snapshot file (built-in sample when empty)")
		apiKey = flag.String("api-key", os.Getenv("SEED_API_KEY"), "required X-API-Key value (disabled when empty)")
		logReq = flag.Bool("log", false, "enable request logging")
	)
	flag.Parse()

	snap := seed.Sample()
	if *data != "" {
		file, err := os.Open(*data)
		if err != nil {
			log.Fatalf("read mock data: %v", err)
		}
		snap, err = seed.Decode(file)
		file.Close()
		if err != nil {
			log.Fatalf("parse mock data: %v", err)
		}
	}

	payload, err := encode(snap)
	if err != nil {
		log.Fatalf("encode mock data: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/catalog", func(w http.ResponseWriter, r *http.Request) {
		if *logReq {
			log.Printf("%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
		}
		if r.Method != http.MethodGet {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if *apiKey != "" && r.Header.Get("X-API-Key") != *apiKey {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(payload)
	})

	addr := ":" + *port
	log.Printf("mock seed listening on %s (%d movies, %d collections)", addr, len(snap.Movies), len(snap.Collections))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func encode(snap domain.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := seed.Encode(&buf, snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
