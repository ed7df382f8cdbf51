package jobs

import (
	"fmt"

	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/utils"
)

type JobListCmd struct {
	All     bool   `help:"Show jobs from every session, not just the active one."`
	Session string `help:"Show jobs from one session id."`
}

func (c *JobListCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	if l.JobCount() == 0 {
		fmt.Println("No jobs today.")
		return nil
	}

	for _, s := range l.SessionsNewestFirst() {
		if !c.All {
			if c.Session != "" {
				target, err := cli.ResolveSession(l, c.Session)
				if err != nil {
					return err
				}
				if s.ID != target.ID {
					continue
				}
			} else if s.ID != l.ActiveSessionID {
				continue
			}
		}

		fmt.Printf("Session %s (%s left):\n", cli.ShortID(s.ID), cli.FormatMeters(s.RemainingMeters()))
		for _, j := range s.Jobs {
			mark := "· "
			when := utils.FormatClock(j.CreatedAt)
			if j.Completed {
				mark = "✓ "
				if j.CompletedAt != nil {
					when = utils.FormatClock(*j.CompletedAt)
				}
			}
			name := j.Name
			if name == "" {
				name = cli.ShortID(j.ID)
			}
			fmt.Printf("  %s%-20s %4d sheets  %8s  %8s  %s\n",
				mark, name, j.SheetCount,
				cli.FormatMeters(j.TotalUsageMeters()), cli.FormatMinutes(j.ProcessingMinutes), when)
		}
	}
	return nil
}
