package settings

import (
	"fmt"

	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/utils"
)

// SettingsCmd shows and updates the schedule values behind the finish-time
// projection. With no flags it prints the current values.
type SettingsCmd struct {
	List  bool `short:"l" help:"Print current settings."`
	Reset bool `help:"Restore factory defaults."`

	WorkStart      *string `help:"Shift start clock, e.g. 08:30."`
	WorkEnd        *string `help:"Normal shift deadline, e.g. 17:00."`
	OvertimeEnd    *string `help:"Overtime deadline, e.g. 18:00."`
	LunchBreak     *int    `help:"Lunch break length in minutes."`
	Cleanup        *int    `help:"End-of-day cleanup in minutes."`
	FilmChange     *int    `help:"Minutes for changing to a different film type."`
	SameFilmChange *int    `help:"Minutes for reloading the same film type."`
}

func (c *SettingsCmd) Validate() error {
	for _, clock := range []*string{c.WorkStart, c.WorkEnd, c.OvertimeEnd} {
		if clock != nil && !utils.ValidateClockFormat(*clock) {
			return fmt.Errorf("invalid time %q, expected HH:MM", *clock)
		}
	}
	for _, minutes := range []*int{c.LunchBreak, c.Cleanup, c.FilmChange, c.SameFilmChange} {
		if minutes != nil && *minutes < 0 {
			return fmt.Errorf("minutes must not be negative")
		}
	}
	return nil
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	ts, err := ctx.Store.GetTimeSettings()
	if err != nil {
		return err
	}

	if c.Reset {
		ts = models.DefaultTimeSettings()
	}

	changed := c.Reset
	if c.WorkStart != nil {
		ts.WorkStart = *c.WorkStart
		changed = true
	}
	if c.WorkEnd != nil {
		ts.WorkEnd = *c.WorkEnd
		changed = true
	}
	if c.OvertimeEnd != nil {
		ts.OvertimeEnd = *c.OvertimeEnd
		changed = true
	}
	if c.LunchBreak != nil {
		ts.LunchBreakMin = *c.LunchBreak
		changed = true
	}
	if c.Cleanup != nil {
		ts.CleanupMin = *c.Cleanup
		changed = true
	}
	if c.FilmChange != nil {
		ts.FilmChangeMin = *c.FilmChange
		changed = true
	}
	if c.SameFilmChange != nil {
		ts.SameFilmChangeMin = *c.SameFilmChange
		changed = true
	}

	if changed {
		if err := ctx.Store.SaveTimeSettings(ts); err != nil {
			return err
		}
		// The in-memory ledger carries a copy used by the projection.
		l, err := ctx.Ledger()
		if err != nil {
			return err
		}
		l.TimeSettings = ts
		if err := ctx.Save(l); err != nil {
			return err
		}
		fmt.Println("✓ Settings updated")
	}

	if c.List || !changed {
		printSettings(ts)
	}
	return nil
}

func printSettings(ts models.TimeSettings) {
	fmt.Println("Schedule settings:")
	fmt.Printf("  work-start        %s\n", ts.WorkStart)
	fmt.Printf("  work-end          %s\n", ts.WorkEnd)
	fmt.Printf("  overtime-end      %s\n", ts.OvertimeEnd)
	fmt.Printf("  lunch-break       %d min\n", ts.LunchBreakMin)
	fmt.Printf("  cleanup           %d min\n", ts.CleanupMin)
	fmt.Printf("  film-change       %d min\n", ts.FilmChangeMin)
	fmt.Printf("  same-film-change  %d min\n", ts.SameFilmChangeMin)
}
