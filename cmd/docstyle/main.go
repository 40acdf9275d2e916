package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"docstyle/config"
	"docstyle/content"
	"docstyle/convert"
	"docstyle/misc"
	"docstyle/params"
	"docstyle/state"
)

func main() {

	// interrupt cancels context, resolution stops before the next node
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "style resolver for table, cell and paragraph parameters of structured documents",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "resolve",
				Usage:        "Resolves table, cell and paragraph styles of a parameter document",
				OnUsageError: usageErrorHandler,
				Action:       convert.Run,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, DefaultText: "from configuration",
						Usage: "input document `TYPE` (supported types: " + strings.Join(params.FormatNames(), ", ") + ")"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, DefaultText: "from configuration",
						Usage: "output `TYPE` (supported types: " + strings.Join(config.OutputFmtNames(), ", ") + ")"},
					&cli.StringFlag{Name: "kind", Aliases: []string{"k"},
						Usage: "treat input as a single parameter bag of node `KIND` (table, cell or paragraph) instead of document tree"},
					&cli.FloatFlag{Name: "font-size", Aliases: []string{"fs"}, DefaultText: "from configuration",
						Usage: "font `SIZE` of paragraphs which do not inherit font_size parameter"},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, DefaultText: "from configuration",
						Usage: "maximum `NUMBER` of nodes resolved in parallel, 0 - number of CPUs"},
					&cli.StringFlag{Name: "charset", DefaultText: "from configuration",
						Usage: "decode input without unicode BOM using `ENCODING` (see IANA.org for character set names)"},
					&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exists, overwrite files"},
				},
				ArgsUsage: "SOURCE [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    parameter document to process, following forms are supported:
        "-" - read STDIN
        path to a file: "[path_to_file]file.json"
        path to archive with path inside archive to a particular file: "[path_to_archive]archive.zip[path_in_archive]/file.yaml"
        path to archive: "[path_to_archive]archive.zip" - archive must have exactly one document

    Input format is detected from file extension (.json, .yaml, .yml, .hcl, .tf, .ion, .10n)
    and content unless requested explicitly.

    Document is a tree of nodes {kind, id, params, children}, kind is one of
    ` + strings.Join(content.KindNames(), ", ") + `.

DESTINATION:
    "-" - write STDOUT
    path to a directory - output file name will be derived from SOURCE
    path to a file
    if absent - STDOUT when reading STDIN, otherwise file in current working directory
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent or "-" - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
