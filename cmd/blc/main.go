// Package main implements blc, a command-line tool for BL robot programs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/you-not-fish/bl/internal/config"
	"github.com/you-not-fish/bl/internal/log"
)

// Version information
const Version = "0.1.0-dev"

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "Log level: crit, error, warn, info, debug or trace",
	}
	astFormatFlag = cli.StringFlag{
		Name:  "format",
		Value: "text",
		Usage: "AST output format (text, json or spew)",
	}
	indentFlag = cli.IntFlag{
		Name:  "indent",
		Usage: "Spaces per nesting level (default from config)",
	}
	passesFlag = cli.StringFlag{
		Name:  "passes",
		Usage: "Comma-separated pass pipeline (default from config)",
	}
	verifyFlag = cli.BoolFlag{
		Name:  "verify",
		Usage: "Verify the tree before and after each pass",
	}
	dumpBeforeFlag = cli.StringFlag{
		Name:  "dump-before",
		Usage: "Dump the program before pass (name or \"*\")",
	}
	dumpAfterFlag = cli.StringFlag{
		Name:  "dump-after",
		Usage: "Dump the program after pass (name or \"*\")",
	}
	fromFlag = cli.StringFlag{
		Name:  "from",
		Usage: "Instruction to rename",
	}
	toFlag = cli.StringFlag{
		Name:  "to",
		Usage: "New instruction name",
	}
	jobsFlag = cli.IntFlag{
		Name:  "jobs",
		Usage: "Files checked concurrently (default from config)",
	}
)

// cfg is the effective configuration, loaded before any command runs.
var cfg = config.New()

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "blc"
	app.Usage = "parse, check and transform BL robot programs"
	app.Version = Version
	app.Flags = []cli.Flag{configFileFlag, verbosityFlag}
	app.Before = setup
	app.Commands = []cli.Command{
		{
			Name:      "tokens",
			Usage:     "Print the token stream",
			ArgsUsage: "<file.bl>",
			Action: func(ctx *cli.Context) error {
				file, err := fileArg(ctx)
				if err != nil {
					return err
				}
				return exit(runTokens(file))
			},
		},
		{
			Name:      "ast",
			Usage:     "Print the syntax tree",
			ArgsUsage: "<file.bl>",
			Flags:     []cli.Flag{astFormatFlag},
			Action: func(ctx *cli.Context) error {
				file, err := fileArg(ctx)
				if err != nil {
					return err
				}
				return exit(runAST(file, ctx.String(astFormatFlag.Name)))
			},
		},
		{
			Name:      "fmt",
			Usage:     "Print the program in canonical layout",
			ArgsUsage: "<file.bl>",
			Flags:     []cli.Flag{indentFlag},
			Action: func(ctx *cli.Context) error {
				file, err := fileArg(ctx)
				if err != nil {
					return err
				}
				applyFormatFlags(ctx)
				if err := revalidate(); err != nil {
					return err
				}
				return exit(runFmt(file, cfg.Format))
			},
		},
		{
			Name:      "count",
			Usage:     "Count primitive calls per instruction",
			ArgsUsage: "<file.bl>",
			Action: func(ctx *cli.Context) error {
				file, err := fileArg(ctx)
				if err != nil {
					return err
				}
				return exit(runCount(file))
			},
		},
		{
			Name:      "simplify",
			Usage:     "Run the pass pipeline and print the result",
			ArgsUsage: "<file.bl>",
			Flags:     []cli.Flag{passesFlag, verifyFlag, dumpBeforeFlag, dumpAfterFlag, indentFlag},
			Action: func(ctx *cli.Context) error {
				file, err := fileArg(ctx)
				if err != nil {
					return err
				}
				applyFormatFlags(ctx)
				applyPassFlags(ctx)
				if err := revalidate(); err != nil {
					return err
				}
				return exit(runSimplify(file, cfg.Passes, cfg.Format))
			},
		},
		{
			Name:      "rename",
			Usage:     "Rename a user-defined instruction and print the result",
			ArgsUsage: "<file.bl>",
			Flags:     []cli.Flag{fromFlag, toFlag, verifyFlag, indentFlag},
			Action: func(ctx *cli.Context) error {
				file, err := fileArg(ctx)
				if err != nil {
					return err
				}
				from, to := ctx.String(fromFlag.Name), ctx.String(toFlag.Name)
				if from == "" || to == "" {
					return cli.NewExitError("rename needs --from and --to", 2)
				}
				applyFormatFlags(ctx)
				applyPassFlags(ctx)
				if err := revalidate(); err != nil {
					return err
				}
				return exit(runRename(file, from, to, cfg.Passes, cfg.Format))
			},
		},
		{
			Name:      "check",
			Usage:     "Parse, verify and lint programs",
			ArgsUsage: "<file.bl>...",
			Flags:     []cli.Flag{jobsFlag},
			Action: func(ctx *cli.Context) error {
				if ctx.NArg() == 0 {
					return cli.NewExitError("no input file", 2)
				}
				if ctx.IsSet(jobsFlag.Name) {
					cfg.Check.Jobs = ctx.Int(jobsFlag.Name)
				}
				if err := revalidate(); err != nil {
					return err
				}
				return exit(runCheck(ctx.Args(), cfg.Check))
			},
		},
		{
			Name:      "watch",
			Usage:     "Check a program again whenever it changes",
			ArgsUsage: "<file.bl>",
			Action: func(ctx *cli.Context) error {
				file, err := fileArg(ctx)
				if err != nil {
					return err
				}
				sigctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()
				return exit(runWatch(sigctx, file, cfg))
			},
		},
		{
			Name:  "dumpconfig",
			Usage: "Show configuration values",
			Action: func(ctx *cli.Context) error {
				return exit(runDumpConfig(cfg))
			},
		},
		{
			Name:  "doctor",
			Usage: "Check the environment blc runs in",
			Action: func(ctx *cli.Context) error {
				return exit(runDoctor(cfg.Toolchain))
			},
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration file and configures logging.
func setup(ctx *cli.Context) error {
	c := config.New()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := config.Load(file, c); err != nil {
			return err
		}
	}
	if v := ctx.GlobalString(verbosityFlag.Name); v != "" {
		c.Log.Level = v
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := setupLogging(c.Log); err != nil {
		return err
	}
	cfg = c
	log.Debug("Loaded configuration", "file", ctx.GlobalString(configFileFlag.Name), "level", c.Log.Level)
	return nil
}

func setupLogging(lc config.LogConfig) error {
	lvl, err := log.LvlFromString(lc.Level)
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.TerminalHandler(os.Stderr, lc.Color)))
	return nil
}

func applyFormatFlags(ctx *cli.Context) {
	if ctx.IsSet(indentFlag.Name) {
		cfg.Format.Indent = ctx.Int(indentFlag.Name)
	}
}

func applyPassFlags(ctx *cli.Context) {
	if ctx.IsSet(passesFlag.Name) {
		cfg.Passes.Pipeline = splitList(ctx.String(passesFlag.Name))
	}
	if ctx.IsSet(verifyFlag.Name) {
		cfg.Passes.Verify = ctx.Bool(verifyFlag.Name)
	}
	if ctx.IsSet(dumpBeforeFlag.Name) {
		cfg.Passes.DumpBefore = ctx.String(dumpBeforeFlag.Name)
	}
	if ctx.IsSet(dumpAfterFlag.Name) {
		cfg.Passes.DumpAfter = ctx.String(dumpAfterFlag.Name)
	}
}

// revalidate checks cfg again once command flags have been applied.
func revalidate() error {
	if err := cfg.Validate(); err != nil {
		return cli.NewExitError(err.Error(), 2)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, x := range strings.Split(s, ",") {
		if x = strings.TrimSpace(x); x != "" {
			out = append(out, x)
		}
	}
	return out
}

// fileArg returns the single input file argument.
func fileArg(ctx *cli.Context) (string, error) {
	switch ctx.NArg() {
	case 0:
		return "", cli.NewExitError("no input file", 2)
	case 1:
		return ctx.Args().First(), nil
	}
	return "", cli.NewExitError(fmt.Sprintf("%s: too many arguments", ctx.Command.Name), 2)
}

// exit converts a run* exit code into a cli error.
func exit(code int) error {
	if code != 0 {
		return cli.NewExitError("", code)
	}
	return nil
}
