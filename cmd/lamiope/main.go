package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/cli/backups"
	"github.com/ykhara/lamiope/internal/cli/films"
	"github.com/ykhara/lamiope/internal/cli/jobs"
	"github.com/ykhara/lamiope/internal/cli/reports"
	"github.com/ykhara/lamiope/internal/cli/settings"
	"github.com/ykhara/lamiope/internal/cli/system"
	"github.com/ykhara/lamiope/internal/cli/timelog"
	"github.com/ykhara/lamiope/internal/cli/work"
	"github.com/ykhara/lamiope/internal/logger"
	"github.com/ykhara/lamiope/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. A .json extension selects the plain-file store, anything else the database store." type:"string" default:"~/.config/lamiope/lamiope.db"`
	Yes     bool   `short:"y" help:"Answer yes to all confirmation prompts."`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize lamiope storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Status  cli.StatusCmd     `cmd:"" help:"Show the day at a glance."`
	Work    struct {
		Start    work.StartCmd    `cmd:"" help:"Mark the work day as started."`
		SetStart work.SetStartCmd `cmd:"" help:"Correct the work start time."`
		Target   work.TargetCmd   `cmd:"" help:"Toggle the target between normal end and overtime end."`
		Reset    work.ResetCmd    `cmd:"" help:"Clear the day and start over."`
	} `cmd:"" help:"Manage the work day."`
	Job struct {
		Add    jobs.JobAddCmd    `cmd:"" help:"Add a lamination job."`
		Done   jobs.JobDoneCmd   `cmd:"" help:"Mark a job as completed."`
		Undo   jobs.JobUndoCmd   `cmd:"" help:"Revert a completed job to pending."`
		Edit   jobs.JobEditCmd   `cmd:"" help:"Change a job's sheet count."`
		Delete jobs.JobDeleteCmd `cmd:"" help:"Remove a job."`
		List   jobs.JobListCmd   `cmd:"" help:"List jobs." default:"1"`
	} `cmd:"" help:"Manage lamination jobs."`
	Film struct {
		New          films.FilmNewCmd          `cmd:"" help:"Start a new film session."`
		Add          films.FilmAddCmd          `cmd:"" help:"Add film to the roll."`
		Adjust       films.FilmAdjustCmd       `cmd:"" help:"Apply a signed capacity correction."`
		SetCapacity  films.FilmSetCapacityCmd  `cmd:"" help:"Set the roll's total capacity."`
		SetRemaining films.FilmSetRemainingCmd `cmd:"" help:"Correct the remaining film length."`
		Close        films.FilmCloseCmd        `cmd:"" help:"Close a film session."`
		Use          films.FilmUseCmd          `cmd:"" help:"Make a session the active one."`
		List         films.FilmListCmd         `cmd:"" help:"List film sessions." default:"1"`
	} `cmd:"" help:"Manage film sessions."`
	Time struct {
		Add    timelog.TimeAddCmd `cmd:"" help:"Book extra minutes."`
		Lunch  timelog.LunchCmd   `cmd:"" help:"Book the lunch break."`
		Change timelog.ChangeCmd  `cmd:"" help:"Book a film roll change."`
	} `cmd:"" help:"Book non-processing time."`
	Report struct {
		Csv  reports.CsvCmd  `cmd:"" help:"Write the day report as CSV." default:"1"`
		Xlsx reports.XlsxCmd `cmd:"" help:"Write the day report as an Excel workbook."`
	} `cmd:"" help:"Produce day reports."`
	Export reports.ExportCmd `cmd:"" help:"Export the day as a JSON snapshot."`
	Import reports.ImportCmd `cmd:"" help:"Import a JSON snapshot."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Settings settings.SettingsCmd `cmd:"" help:"Show and change schedule settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lamiope"),
		kong.Description("Lamination workstation companion: film accounting and finish-time projection"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v1.0.0"},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// The store flavor follows the file extension
	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	appCtx := &cli.Context{
		Store: store,
		Yes:   CLI.Yes,
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
