package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ebook-library/core/catalog"
	"ebook-library/core/config"
	"ebook-library/core/database"
	"ebook-library/core/logger"
	"ebook-library/core/storage"

	"go.uber.org/zap"
)

// env is what every command needs: configuration, a logger and a migrated catalog.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	store *catalog.Store
}

func bootstrap(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := catalog.NewStore(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}

	return &env{cfg: cfg, log: l, store: store}, nil
}

// storageClient returns nil when bucket support is disabled.
func (e *env) storageClient() (storage.Client, error) {
	if !e.cfg.Storage.Enabled {
		return nil, nil
	}
	client, err := storage.NewClient(e.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return client, nil
}

// printJSON writes v to stdout, indented.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// confirm prompts for "yes" unless assumeYes is set.
func confirm(prompt string, assumeYes bool) bool {
	if assumeYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  %s Type 'yes' to confirm: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
