package system

import (
	"fmt"
	"io/fs"

	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/migration"
	"github.com/ykhara/lamiope/internal/storage"
	"github.com/ykhara/lamiope/migrations"
)

// MigrateCmd applies pending schema migrations to the database store.
type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	s, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return fmt.Errorf("migrations only apply to the database store, the JSON store has no schema")
	}

	if err := s.Load(); err != nil {
		return err
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access migrations: %w", err)
	}

	applied, err := migration.NewRunner(s.DB(), subFS).Apply(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return err
	}

	if applied == 0 {
		fmt.Println("✓ Schema already up to date")
	} else {
		fmt.Printf("✓ Applied %d migration(s)\n", applied)
	}
	return nil
}
