package system

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/ykhara/lamiope/internal/backup"
	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/migration"
	"github.com/ykhara/lamiope/internal/storage"
	"github.com/ykhara/lamiope/internal/validation"
	"github.com/ykhara/lamiope/migrations"
)

// DoctorCmd inspects the installation and data for problems. With --fix it
// repairs the inconsistencies that have an unambiguous repair.
type DoctorCmd struct {
	Fix bool `help:"Repair fixable inconsistencies."`
}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	problems := 0

	// Storage reachable and loadable.
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("✗ Storage: %v\n", err)
		return fmt.Errorf("doctor found %d problem(s)", problems+1)
	}
	fmt.Printf("✓ Storage reachable at %s\n", ctx.Store.GetConfigPath())

	// Schema version, only meaningful for the database store.
	if s, ok := ctx.Store.(*storage.SQLiteStore); ok {
		if err := checkSchema(s); err != nil {
			fmt.Printf("✗ Schema: %v\n", err)
			problems++
		} else {
			fmt.Println("✓ Schema version matches this build")
		}
	}

	// Ledger consistency.
	l, err := ctx.Ledger()
	if err != nil {
		fmt.Printf("✗ Ledger: %v\n", err)
		problems++
	} else {
		result := validation.New().ValidateLedger(l)
		if result.HasConflicts() {
			fmt.Print("✗ " + result.FormatReport())
			if c.Fix {
				actions := validation.New().AutoFix(l, result)
				for _, a := range actions {
					fmt.Printf("  fixed: %s\n", a.Action)
				}
				if err := ctx.Save(l); err != nil {
					return err
				}
				remaining := validation.New().ValidateLedger(l)
				if remaining.HasConflicts() {
					fmt.Printf("  %d inconsistencies could not be fixed automatically\n", len(remaining.Conflicts))
					problems++
				} else {
					fmt.Println("✓ All inconsistencies repaired")
				}
			} else {
				fmt.Println("  run 'lamiope doctor --fix' to repair")
				problems++
			}
		} else {
			fmt.Println("✓ Ledger is consistent")
		}
	}

	// Backups.
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		fmt.Printf("✗ Backups: %v\n", err)
		problems++
	} else if len(backups) == 0 {
		fmt.Println("! No backups yet, consider 'lamiope backup create'")
	} else {
		fmt.Printf("✓ %d backup(s), newest from %s\n",
			len(backups), backups[0].Timestamp.Format("2006-01-02 15:04"))
	}

	// A second running copy can clobber the store on save.
	if pid := otherInstancePID(); pid != 0 {
		fmt.Printf("! Another lamiope process is running (pid %d)\n", pid)
	} else {
		fmt.Println("✓ No other lamiope process running")
	}

	if problems > 0 {
		return fmt.Errorf("doctor found %d problem(s)", problems)
	}
	fmt.Println("Everything looks good.")
	return nil
}

func checkSchema(s *storage.SQLiteStore) error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return err
	}
	return migration.NewRunner(s.DB(), subFS).Validate()
}

// otherInstancePID returns the pid of another running lamiope process, or 0.
func otherInstancePID() int {
	procs, err := ps.Processes()
	if err != nil {
		return 0
	}
	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == "lamiope" {
			return p.Pid()
		}
	}
	return 0
}
