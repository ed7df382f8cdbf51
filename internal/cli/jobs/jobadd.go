package jobs

import (
	"errors"
	"fmt"

	"github.com/ykhara/lamiope/internal/calc"
	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/ledger"
)

type JobAddCmd struct {
	Name     string  `arg:"" optional:"" help:"Job name (optional)."`
	Sheets   int     `short:"n" help:"Sheet count, when already counted."`
	Copies   int     `short:"c" help:"Ordered copies, to derive the sheet count."`
	Surfaces int     `short:"u" default:"1" help:"Copies per sheet surface."`
	Spares   int     `help:"Spare sheets on top of the derived count." default:"0"`
	Paper    float64 `short:"p" required:"" help:"Paper length per sheet (mm)."`
	Overlap  float64 `short:"o" default:"10" help:"Film overlap per sheet (mm)."`
	Speed    float64 `short:"s" required:"" help:"Laminator speed (m/min)."`
	Session  string  `help:"Target session id (defaults to the active session)."`
}

func (c *JobAddCmd) Validate() error {
	if c.Sheets > 0 && c.Copies > 0 {
		return fmt.Errorf("--sheets and --copies are mutually exclusive")
	}
	if c.Sheets <= 0 && c.Copies <= 0 {
		return fmt.Errorf("either --sheets or --copies is required")
	}
	return nil
}

func (c *JobAddCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	session, err := cli.ResolveSession(l, c.Session)
	if err != nil {
		return err
	}

	sheets := c.Sheets
	if c.Copies > 0 {
		sheets, err = calc.SheetCountFromParts(c.Copies, c.Surfaces, c.Spares)
		if err != nil {
			return err
		}
	}

	job, err := calc.NewJob(calc.Params{
		Name:            c.Name,
		SheetCount:      sheets,
		PaperLengthMm:   c.Paper,
		OverlapWidthMm:  c.Overlap,
		ProcessSpeedMPM: c.Speed,
	})
	if err != nil {
		return err
	}

	if warn := calc.CheckLongRunning(job); warn != nil {
		ok, err := ctx.Confirm("Long-running job",
			fmt.Sprintf("This job needs %s of processing. Add it anyway?", cli.FormatMinutes(warn.Minutes)))
		if err != nil {
			return err
		}
		if !ok {
			return ledger.ErrCreationAborted
		}
	}

	err = ledger.AddJob(l, session.ID, job, false)
	var insufficient *ledger.InsufficientFilmError
	if errors.As(err, &insufficient) {
		ok, confirmErr := ctx.Confirm("Not enough film",
			fmt.Sprintf("The job needs %s but only %s is left on the roll. Add it anyway?",
				cli.FormatMeters(insufficient.NeededMeters), cli.FormatMeters(insufficient.RemainingMeters)))
		if confirmErr != nil {
			return confirmErr
		}
		if !ok {
			return ledger.ErrCreationAborted
		}
		err = ledger.AddJob(l, session.ID, job, true)
	}
	if err != nil {
		return err
	}

	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Job %s added: %d sheets, %s film, %s processing\n",
		cli.ShortID(job.ID), job.SheetCount,
		cli.FormatMeters(job.TotalUsageMeters()), cli.FormatMinutes(job.ProcessingMinutes))
	fmt.Printf("  Session %s has %s left\n", cli.ShortID(session.ID), cli.FormatMeters(session.RemainingMeters()))
	return nil
}
