package main

import (
	"context"
	"encoding/json"
	"flag"
	"ghost-theme-storefront/internal/config"
	"ghost-theme-storefront/internal/database"
	"ghost-theme-storefront/internal/logging"
	"ghost-theme-storefront/internal/models"
	"os"
)

// fixture is the on-disk shape of a seed file. Every section is
// optional; present sections are upserted by primary key so the
// command can be re-run against a populated database.
type fixture struct {
	Themes        []models.Theme         `json:"themes"`
	Authors       []models.Author        `json:"authors"`
	Tags          []models.Tag           `json:"tags"`
	Posts         []models.BlogPost      `json:"posts"`
	Documentation []models.Documentation `json:"documentation"`
	Pages         []models.Page          `json:"pages"`
}

func main() {
	// registered before InitConfig because InitConfig calls flag.Parse
	fixturePath := flag.String("fixture", "seed.json", "Path to seed fixture file (json)")

	c := config.InitConfig()
	logger := logging.InitLogging(c)

	db, err := database.InitDatabase(c, logger)
	if err != nil {
		logger.LogError(logging.GetLogTypeSeed(), "error initializing database: ", err)
		os.Exit(1)
	}
	repository := &database.GormRepository{DB: db}

	raw, err := os.ReadFile(*fixturePath)
	if err != nil {
		logger.LogErrorf(logging.GetLogTypeSeed(), "reading fixture %s failed: %s", *fixturePath, err.Error())
		os.Exit(1)
	}

	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		logger.LogErrorf(logging.GetLogTypeSeed(), "parsing fixture %s failed: %s", *fixturePath, err.Error())
		os.Exit(1)
	}

	ctx := context.Background()

	// authors, tags and themes first so posts and documentation can
	// reference them
	steps := []struct {
		name  string
		count int
		run   func() error
	}{
		{"themes", len(f.Themes), func() error { return repository.UpsertThemes(ctx, f.Themes) }},
		{"authors", len(f.Authors), func() error { return repository.UpsertAuthors(ctx, f.Authors) }},
		{"tags", len(f.Tags), func() error { return repository.UpsertTags(ctx, f.Tags) }},
		{"posts", len(f.Posts), func() error { return repository.UpsertPosts(ctx, f.Posts) }},
		{"documentation", len(f.Documentation), func() error { return repository.UpsertDocumentation(ctx, f.Documentation) }},
		{"pages", len(f.Pages), func() error { return repository.UpsertPages(ctx, f.Pages) }},
	}

	for _, step := range steps {
		if step.count == 0 {
			continue
		}
		if err := step.run(); err != nil {
			logger.LogErrorf(logging.GetLogTypeSeed(), "seeding %s failed: %s", step.name, err.Error())
			os.Exit(1)
		}
		logger.LogInfof(logging.GetLogTypeSeed(), "seeded %d %s", step.count, step.name)
	}

	logger.LogInfo(logging.GetLogTypeSeed(), "seeding completed")
}
