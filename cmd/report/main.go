package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/edumaster/backend/internal/app/repositories"
	"github.com/edumaster/backend/internal/bootstrap"
	"github.com/edumaster/backend/internal/db"
	"github.com/edumaster/backend/internal/pkg/logger"
	"github.com/edumaster/backend/internal/report"
)

func main() {
	scope := flag.String("scope", "all", "report scope: all or instructors")
	flag.Parse()

	if *scope != "all" && *scope != "instructors" {
		fmt.Fprintf(os.Stderr, "unknown scope %q, expected all or instructors\n", *scope)
		os.Exit(2)
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := repositories.NewReportRepository(database.Pool)

	switch *scope {
	case "instructors":
		lgr.Info().Msg("Checking instructor data...")
		roster, err := repo.ListInstructorRoster(ctx)
		if err != nil {
			lgr.Error().Err(err).Msg("Error checking instructor data")
			return
		}
		fmt.Print(report.FormatInstructorRoster(roster))

	case "all":
		snapshot, err := report.CollectSnapshot(ctx, repo)
		if err != nil {
			lgr.Error().Err(err).Msg("Error collecting database snapshot")
			return
		}
		fmt.Print(report.FormatSnapshot(snapshot))
	}
}
