package timelog

import (
	"fmt"

	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/ledger"
)

// TimeAddCmd books arbitrary extra minutes onto the day.
type TimeAddCmd struct {
	Minutes int `arg:"" help:"Minutes to add to the day's extra time."`
}

func (c *TimeAddCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	if err := ledger.AddManualMinutes(l, c.Minutes); err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Added %s, extra time is now %s\n",
		cli.FormatMinutes(float64(c.Minutes)), cli.FormatMinutes(float64(l.ExtraMinutes)))
	return nil
}

type LunchCmd struct{}

func (c *LunchCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	added := ledger.AddLunchBreak(l)
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Lunch break booked (%s), extra time is now %s\n",
		cli.FormatMinutes(float64(added)), cli.FormatMinutes(float64(l.ExtraMinutes)))
	return nil
}

// ChangeCmd books a film roll change. Swapping to the same film type is
// faster and uses its own settings value.
type ChangeCmd struct {
	Same bool `help:"The replacement roll is the same film type."`
}

func (c *ChangeCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	var added int
	if c.Same {
		added = ledger.AddSameFilmChangeTime(l)
	} else {
		added = ledger.AddFilmChangeTime(l)
	}
	if err := ctx.Save(l); err != nil {
		return err
	}

	fmt.Printf("✓ Film change booked (%s), extra time is now %s\n",
		cli.FormatMinutes(float64(added)), cli.FormatMinutes(float64(l.ExtraMinutes)))
	return nil
}
