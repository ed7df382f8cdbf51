package films

import (
	"fmt"

	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/ledger"
	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/shortage"
)

type FilmNewCmd struct {
	Meters float64 `arg:"" optional:"" help:"Loaded film length in meters (omit when unknown)."`
}

func (c *FilmNewCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	session, err := ledger.CreateSession(l, c.Meters)
	if err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	if c.Meters > 0 {
		fmt.Printf("✓ Film session %s started with %s\n", cli.ShortID(session.ID), cli.FormatMeters(c.Meters))
	} else {
		fmt.Printf("✓ Film session %s started, capacity unknown (set it with 'lamiope film set-capacity')\n",
			cli.ShortID(session.ID))
	}
	return nil
}

type FilmAddCmd struct {
	Meters  float64 `arg:"" help:"Meters to add to the roll."`
	Session string  `help:"Session id (defaults to the active session)."`
}

func (c *FilmAddCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	session, err := cli.ResolveSession(l, c.Session)
	if err != nil {
		return err
	}
	if err := ledger.AddFilm(l, session.ID, c.Meters); err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Session %s now holds %s (%s left)\n",
		cli.ShortID(session.ID), cli.FormatMeters(session.CapacityMeters), cli.FormatMeters(session.RemainingMeters()))
	return nil
}

type FilmSetCapacityCmd struct {
	Meters  float64 `arg:"" help:"Total roll capacity in meters."`
	Session string  `help:"Session id (defaults to the active session)."`
}

func (c *FilmSetCapacityCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	session, err := cli.ResolveSession(l, c.Session)
	if err != nil {
		return err
	}
	if err := ledger.SetCapacity(l, session.ID, c.Meters); err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Session %s capacity set to %s (%s left)\n",
		cli.ShortID(session.ID), cli.FormatMeters(session.CapacityMeters), cli.FormatMeters(session.RemainingMeters()))
	return nil
}

// FilmAdjustCmd applies a signed correction to the roll's capacity, for
// when a measurement shows the books are off in either direction.
type FilmAdjustCmd struct {
	Meters  float64 `arg:"" help:"Signed correction in meters, e.g. -2.5."`
	Session string  `help:"Session id (defaults to the active session)."`
}

func (c *FilmAdjustCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	session, err := cli.ResolveSession(l, c.Session)
	if err != nil {
		return err
	}
	if err := ledger.AdjustFilm(l, session.ID, c.Meters); err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Session %s corrected by %+.1fm, capacity now %s (%s left)\n",
		cli.ShortID(session.ID), c.Meters, cli.FormatMeters(session.CapacityMeters), cli.FormatMeters(session.RemainingMeters()))
	return nil
}

// FilmSetRemainingCmd back-calculates capacity from what the operator can
// actually see on the roll.
type FilmSetRemainingCmd struct {
	Meters  float64 `arg:"" help:"Meters visibly left on the roll."`
	Session string  `help:"Session id (defaults to the active session)."`
}

func (c *FilmSetRemainingCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	session, err := cli.ResolveSession(l, c.Session)
	if err != nil {
		return err
	}
	if err := ledger.SetRemaining(l, session.ID, c.Meters); err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Session %s remaining corrected to %s (capacity now %s)\n",
		cli.ShortID(session.ID), cli.FormatMeters(session.RemainingMeters()), cli.FormatMeters(session.CapacityMeters))
	return nil
}

type FilmCloseCmd struct {
	Session string `arg:"" optional:"" help:"Session id (defaults to the active session)."`
}

func (c *FilmCloseCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	session, err := cli.ResolveSession(l, c.Session)
	if err != nil {
		return err
	}
	if err := ledger.CloseSession(l, session.ID); err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Session %s closed with %s unused\n",
		cli.ShortID(session.ID), cli.FormatMeters(session.RemainingMeters()))
	return nil
}

// FilmUseCmd switches which session new jobs land in.
type FilmUseCmd struct {
	Session string `arg:"" help:"Session id or unique prefix."`
}

func (c *FilmUseCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	session, err := cli.ResolveSession(l, c.Session)
	if err != nil {
		return err
	}
	if err := ledger.SelectSession(l, session.ID); err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Session %s is now active\n", cli.ShortID(session.ID))
	return nil
}

type FilmListCmd struct{}

func (c *FilmListCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	if len(l.Sessions) == 0 {
		fmt.Println("No film sessions today.")
		return nil
	}

	for _, s := range l.SessionsNewestFirst() {
		marker := " "
		if s.ID == l.ActiveSessionID {
			marker = "*"
		}
		state := "active"
		if s.Status() == models.SessionCompleted {
			state = "completed"
		}
		fmt.Printf("%s %s  %s/%s left  %d jobs  %s  film %s\n",
			marker, cli.ShortID(s.ID),
			cli.FormatMeters(s.RemainingMeters()), cli.FormatMeters(s.CapacityMeters),
			len(s.Jobs), state, shortage.Classify(s))
	}
	return nil
}
