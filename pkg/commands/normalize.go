package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/dbident/pkg/cmdhelper"
	"github.com/wuxler/dbident/pkg/errdefs"
	"github.com/wuxler/dbident/pkg/ident"
)

// NewNormalizeCommand returns a normalize command.
func NewNormalizeCommand() *NormalizeCommand {
	return &NormalizeCommand{}
}

// NormalizeCommand prints the canonical lower-cased form of names.
type NormalizeCommand struct{}

// ToCLI transforms to a *cli.Command.
func (c *NormalizeCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:    "normalize",
		Aliases: []string{"norm"},
		Usage:   "Print the canonical form of database object names",
		UsageText: `dbident normalize NAME [NAME...]

# Normalize a name
$ dbident normalize "Hello World"
hello world
`,
		ArgsUsage: "NAME [NAME...]",
		Before:    cli.BeforeFunc(cmdhelper.MinimumNArgs(1)),
		Action:    c.Run,
	}
}

// Run is the main function for the current command.
func (c *NormalizeCommand) Run(_ context.Context, cmd *cli.Command) error {
	for _, raw := range cmd.Args().Slice() {
		id, err := ident.New(raw)
		if err != nil {
			return errdefs.NewE(errdefs.ErrInvalidParameter, err)
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", id)
	}
	return nil
}
