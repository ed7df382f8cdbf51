package jobs

import (
	"fmt"

	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/ledger"
	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/utils"
)

type JobDoneCmd struct {
	Job string `arg:"" help:"Job id or unique prefix."`
}

func (c *JobDoneCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	session, job, err := cli.ResolveJob(l, c.Job)
	if err != nil {
		return err
	}
	if err := ledger.CompleteJob(l, session.ID, job.ID); err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Job %s completed at %s\n", cli.ShortID(job.ID), utils.FormatClock(*job.CompletedAt))
	if session.Status() == models.SessionCompleted {
		fmt.Printf("  Session %s is fully processed\n", cli.ShortID(session.ID))
	}
	return nil
}

type JobUndoCmd struct {
	Job string `arg:"" help:"Job id or unique prefix."`
}

func (c *JobUndoCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	session, job, err := cli.ResolveJob(l, c.Job)
	if err != nil {
		return err
	}
	if err := ledger.UncompleteJob(l, session.ID, job.ID); err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Job %s moved back to pending\n", cli.ShortID(job.ID))
	return nil
}
