// Command sandbox-api runs a self-contained in-memory backend with the
// same GraphQL and session surface as the production API, seeded with
// one business per vertical. It exists so the admin tool can be
// developed and demoed without network access to the real platform.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"bookline-admin/sys/graphql/gqltest"
)

var logger = log.New(os.Stdout, "(cmd/sandbox-api)", log.LstdFlags|log.LUTC|log.Llongfile)

func main() {
	// Load .env file in development
	// Try multiple locations: current dir, bookline-admin/, parent dir
	err := godotenv.Load()
	if err != nil {
		err = godotenv.Load("bookline-admin/.env")
	}
	if err != nil {
		err = godotenv.Load("../.env")
	}
	if err != nil {
		logger.Printf("Note: .env file not found, using system environment variables")
	}

	port := readOptionalEnvVar("PORT", "8080")

	handler := gqltest.NewHandler(gqltest.DefaultStore(), gqltest.DefaultIdentity)

	logger.Printf("GraphQL endpoint at /api, session endpoint at /auth/session")
	logger.Printf("Seeded business: %s %s", gqltest.DefaultIdentity.BusinessType, gqltest.DefaultIdentity.BusinessID)
	logger.Printf("Starting sandbox server on :%s\n", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", port), handler); err != nil {
		logger.Fatalf("Server failed to start: %v", err)
	}
}

func readOptionalEnvVar(name, fallback string) string {
	val, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	return val
}
