// Package main is the entry of the application.
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/dbident/pkg/cmdhelper"
	"github.com/wuxler/dbident/pkg/commands"
	"github.com/wuxler/dbident/pkg/xlog"
)

const (
	appName = "dbident"
)

func main() {
	var (
		debug   bool
		logFile string
	)
	app := cli.Command{
		Name:                  appName,
		Usage:                 "dbident validates and normalizes database object names",
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		HideHelpCommand:       true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "enable debug logging",
				Sources:     cli.EnvVars("DBIDENT_DEBUG"),
				Destination: &debug,
				Persistent:  true,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "write JSON logs to the file in addition to the console",
				Sources:     cli.EnvVars("DBIDENT_LOG_FILE"),
				Destination: &logFile,
				Persistent:  true,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) error {
			c := xlog.NewConfig()
			if debug {
				c.Level = xlog.LevelDebug
			}
			c.Path = logFile
			xlog.SetDefault(xlog.New(c))
			return nil
		},
		Commands: []*cli.Command{
			commands.NewVersionCommand().ToCLI(),
			commands.NewCheckCommand().ToCLI(),
			commands.NewNormalizeCommand().ToCLI(),
		},
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {
			cli.HandleExitCoder(err)
			cmdhelper.Fprintf(c.ErrWriter, "Error: %+v\n", err)
			os.Exit(1)
		},
	}
	//nolint:errcheck // already checked in root command ExitErrHandler
	_ = app.Run(context.Background(), os.Args)
}
