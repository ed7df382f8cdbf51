package system

import (
	"fmt"

	"github.com/ykhara/lamiope/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("✓ Storage initialized at %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Start your day with 'lamiope work start' and 'lamiope film new <meters>'.")
	return nil
}
