package main

import (
	"log"

	"assessment-backend/internal/assessments"
	"assessment-backend/internal/shared/config"
	"assessment-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	if err := assessments.VerifyCatalog(assessments.Questions); err != nil {
		log.Fatalf("catalog invariant violated: %v", err)
	}

	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
