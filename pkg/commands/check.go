package commands

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/dbident/pkg/cmdhelper"
	"github.com/wuxler/dbident/pkg/errdefs"
	"github.com/wuxler/dbident/pkg/ident"
	"github.com/wuxler/dbident/pkg/xlog"
)

// NewCheckCommand returns a check command with default values.
func NewCheckCommand() *CheckCommand {
	return &CheckCommand{
		Format: "text",
		FS:     afero.NewOsFs(),
	}
}

// CheckCommand validates raw names against the database identifier rules
// and reports the canonical form of every valid name.
type CheckCommand struct {
	File   string
	Format string
	Quiet  bool

	// FS is the filesystem used to read the --file input. Tests replace
	// it with an in-memory implementation.
	FS afero.Fs
}

// ToCLI transforms to a *cli.Command.
func (c *CheckCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check whether names are valid database object identifiers",
		UsageText: `dbident check [OPTIONS] [NAME...]

# Check names given as arguments
$ dbident check "Hello World" my_table

# Check names listed in a file, one name per line
$ dbident check --file names.txt
`,
		ArgsUsage: "[NAME...]",
		Flags:     c.Flags(),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *CheckCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "read additional names from the file, one name per line",
			Value:       c.File,
			Destination: &c.File,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       `output format, oneof ["text", "json"]`,
			Value:       c.Format,
			Destination: &c.Format,
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "suppress per-name output, report only by exit code",
			Value:       c.Quiet,
			Destination: &c.Quiet,
		},
	}
}

// CheckResult records the outcome of validating a single raw name.
type CheckResult struct {
	Raw       string `json:"raw"`
	Valid     bool   `json:"valid"`
	Canonical string `json:"canonical,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Run is the main function for the current command.
func (c *CheckCommand) Run(ctx context.Context, cmd *cli.Command) error {
	names, err := c.collect(cmd)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return errdefs.Newf(errdefs.ErrInvalidParameter, "at least one name is required, pass arguments or --file")
	}

	results := lo.Map(names, func(raw string, _ int) CheckResult {
		return checkOne(raw)
	})
	invalid := lo.CountBy(results, func(r CheckResult) bool {
		return !r.Valid
	})
	xlog.C(ctx).Debug("checked names", "total", len(results), "invalid", invalid)

	if !c.Quiet {
		if err := c.write(cmd, results); err != nil {
			return err
		}
	}
	if invalid > 0 {
		return errdefs.Newf(errdefs.ErrInvalidParameter, "%d of %d names are invalid", invalid, len(results))
	}
	return nil
}

// collect merges the argument names with the optional --file input. File
// lines keep their spaces, since trailing spaces are legal in identifiers;
// only blank lines and a trailing carriage return are dropped.
func (c *CheckCommand) collect(cmd *cli.Command) ([]string, error) {
	names := cmd.Args().Slice()
	if c.File == "" {
		return names, nil
	}
	content, err := afero.ReadFile(c.FS, c.File)
	if err != nil {
		return nil, errdefs.NewE(errdefs.ErrNotFound, err)
	}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}

func (c *CheckCommand) write(cmd *cli.Command, results []CheckResult) error {
	if c.Format == "json" {
		data, err := cmdhelper.PrettifyJSON(results)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", data)
		return nil
	}
	for _, r := range results {
		if r.Valid {
			cmdhelper.Fprintf(cmd.Writer, "ok\t%s", r.Canonical)
		} else {
			cmdhelper.Fprintf(cmd.Writer, "bad\t%q\t%s", r.Raw, r.Reason)
		}
	}
	return nil
}

func checkOne(raw string) CheckResult {
	id, err := ident.New(raw)
	if err != nil {
		return CheckResult{Raw: raw, Reason: oneline(ident.Validate(raw))}
	}
	return CheckResult{Raw: raw, Valid: true, Canonical: id.String()}
}

// oneline flattens a joined multi-line error message for tabular output.
func oneline(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}
