package reports

import (
	"fmt"
	"os"

	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/export"
)

// CsvCmd writes the day's completed jobs as a spreadsheet-friendly CSV.
type CsvCmd struct {
	Output string `short:"o" help:"Destination file (defaults to stdout)."`
}

func (c *CsvCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	if c.Output == "" {
		return export.WriteCSV(os.Stdout, l)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, l); err != nil {
		return err
	}
	fmt.Printf("✓ Report written to %s\n", c.Output)
	return nil
}

type XlsxCmd struct {
	Output string `short:"o" default:"day-report.xlsx" help:"Destination workbook."`
}

func (c *XlsxCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	if err := export.WriteXLSX(c.Output, l); err != nil {
		return err
	}
	fmt.Printf("✓ Workbook written to %s\n", c.Output)
	return nil
}

// ExportCmd dumps the whole day as a portable JSON snapshot.
type ExportCmd struct {
	Output string `short:"o" help:"Destination file (defaults to stdout)."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	if c.Output == "" {
		return export.WriteJSON(os.Stdout, l)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := export.WriteJSON(f, l); err != nil {
		return err
	}
	fmt.Printf("✓ Snapshot written to %s\n", c.Output)
	return nil
}

// ImportCmd replaces the current day with a previously exported snapshot.
// The current state is backed up first.
type ImportCmd struct {
	Input string `arg:"" type:"existingfile" help:"Snapshot file to import."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	f, err := os.Open(c.Input)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	l, err := export.ReadJSON(f)
	if err != nil {
		return err
	}

	ok, err := ctx.Confirm("Replace today's data?",
		fmt.Sprintf("The snapshot holds %d sessions and %d jobs. Current data will be backed up, then overwritten.",
			len(l.Sessions), l.JobCount()))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Import cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Save(l); err != nil {
		return err
	}
	fmt.Printf("✓ Imported %d sessions and %d jobs\n", len(l.Sessions), l.JobCount())
	return nil
}
