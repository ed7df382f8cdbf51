package jobs

import (
	"fmt"

	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/ledger"
)

type JobEditCmd struct {
	Job    string `arg:"" help:"Job id or unique prefix."`
	Sheets int    `short:"n" required:"" help:"New sheet count."`
}

func (c *JobEditCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	session, job, err := cli.ResolveJob(l, c.Job)
	if err != nil {
		return err
	}
	if err := ledger.EditSheetCount(l, session.ID, job.ID, c.Sheets); err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Job %s now %d sheets: %s film, %s processing\n",
		cli.ShortID(job.ID), job.SheetCount,
		cli.FormatMeters(job.TotalUsageMeters()), cli.FormatMinutes(job.ProcessingMinutes))
	fmt.Printf("  Session %s has %s left\n", cli.ShortID(session.ID), cli.FormatMeters(session.RemainingMeters()))
	return nil
}

type JobDeleteCmd struct {
	Job string `arg:"" help:"Job id or unique prefix."`
}

func (c *JobDeleteCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	session, job, err := cli.ResolveJob(l, c.Job)
	if err != nil {
		return err
	}

	name := job.Name
	if name == "" {
		name = cli.ShortID(job.ID)
	}
	ok, err := ctx.Confirm("Delete job?",
		fmt.Sprintf("%s (%d sheets, %s film) will be removed and its material returned to the roll.",
			name, job.SheetCount, cli.FormatMeters(job.TotalUsageMeters())))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Delete cancelled.")
		return nil
	}

	jobID := job.ID
	if err := ledger.DeleteJob(l, session.ID, jobID); err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Job %s deleted\n", cli.ShortID(jobID))
	return nil
}
