// Command shukuma-seed loads an exercise catalog into the database. With no
// -file it seeds the built-in default deck.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FerozaC/shukuma-wep-app-project/internal/catalog"
	"github.com/FerozaC/shukuma-wep-app-project/internal/config"
	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
	"github.com/FerozaC/shukuma-wep-app-project/internal/storage"
)

type catalogFile struct {
	Exercises []seedExercise `yaml:"exercises"`
}

type seedExercise struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Level       string `yaml:"level"`
	CardNumber  int    `yaml:"card_number"`
	MuscleGroup string `yaml:"muscle_group"`
	Image       string `yaml:"image"`
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	filePath := flag.String("file", "", "path to catalog YAML (default: built-in deck)")
	dryRun := flag.Bool("dry-run", false, "report counts without writing to the database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	exercises, err := loadCatalog(*filePath)
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	log.Info("catalog loaded", "exercises", len(exercises))

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
		for _, e := range exercises {
			log.Info("would seed", "id", e.ID, "name", e.Name, "level", e.Level)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var inserted int
	for _, e := range exercises {
		ok, err := db.UpsertExercise(ctx, e)
		if err != nil {
			log.Error("seed failed", "id", e.ID, "error", err)
			os.Exit(1)
		}
		if ok {
			inserted++
		}
	}
	log.Info("seed complete", "upserted", inserted)
}

func loadCatalog(path string) ([]models.Exercise, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if len(f.Exercises) == 0 {
		return nil, fmt.Errorf("catalog file has no exercises")
	}

	exercises := make([]models.Exercise, 0, len(f.Exercises))
	for i, e := range f.Exercises {
		if e.ID == "" || e.Name == "" {
			return nil, fmt.Errorf("exercise %d: id and name are required", i)
		}
		exercises = append(exercises, models.Exercise{
			ID:          e.ID,
			Name:        e.Name,
			Level:       models.Level(e.Level),
			CardNumber:  e.CardNumber,
			MuscleGroup: e.MuscleGroup,
			Image:       e.Image,
		})
	}
	return exercises, nil
}
