// Command probe is an end-to-end smoke test against a running API: it logs in
// with the configured instructor credentials and fetches that instructor's
// courses with the returned bearer token.
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edumaster/backend/internal/bootstrap"
	"github.com/edumaster/backend/internal/pkg/apiclient"
	"github.com/edumaster/backend/internal/pkg/logger"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := apiclient.NewClient(cfg.Client.BaseURL)

	fmt.Println("1. Attempting login...")
	if _, err := client.Login(ctx, cfg.Client.Email, cfg.Client.Password); err != nil {
		reportError(err)
		return
	}
	fmt.Println("Login successful!")
	fmt.Println("Token received")

	fmt.Println("\n2. Fetching instructor courses...")
	courses, err := client.MyCourses(ctx)
	if err != nil {
		reportError(err)
		return
	}

	fmt.Printf("Fetched %d courses:\n", len(courses))
	for _, c := range courses {
		fmt.Printf("- %s (Published: %t)\n", c.Title, c.Published)
	}

	lgr.Info().Int("courses", len(courses)).Msg("Probe finished")
}

// reportError prints the server's error payload when there is one, otherwise
// the raw error.
func reportError(err error) {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != nil {
		fmt.Printf("Error: %s %s (HTTP %d)\n", apiErr.Detail.Code, apiErr.Detail.Message, apiErr.StatusCode)
		return
	}
	fmt.Printf("Error: %s\n", err)
}
