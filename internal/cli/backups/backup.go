package backups

import (
	"fmt"
	"path/filepath"

	"github.com/ykhara/lamiope/internal/backup"
	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/constants"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	fmt.Printf("✓ Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Printf("Backups (newest first, keeping up to %d):\n", constants.MaxBackups)
	for _, b := range backups {
		fmt.Printf("  %s  %6.1f KB  %s\n",
			b.Timestamp.Format("2006-01-02 15:04"), float64(b.Size)/1024, filepath.Base(b.Path))
	}
	return nil
}

type BackupRestoreCmd struct {
	Backup string `arg:"" optional:"" help:"Backup file to restore (defaults to the most recent)."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	path := c.Backup
	if path == "" {
		backups, err := mgr.List()
		if err != nil {
			return fmt.Errorf("failed to list backups: %w", err)
		}
		if len(backups) == 0 {
			return fmt.Errorf("no backups to restore")
		}
		path = backups[0].Path
	}

	ok, err := ctx.Confirm("Restore backup?",
		fmt.Sprintf("Current data will be replaced by %s. A safety backup of the current state is taken first.",
			filepath.Base(path)))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Restore cancelled.")
		return nil
	}

	if err := mgr.Restore(path); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	fmt.Printf("✓ Restored %s\n", filepath.Base(path))
	return nil
}
