// Command quill inspects and exercises quill logger templates.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/crimson-sun/quill/internal/config"
	"github.com/crimson-sun/quill/internal/template"
	"github.com/crimson-sun/quill/pkg/quill"
)

func main() {
	cfg := config.Load()

	app := cli.NewApp()
	app.Name = "quill"
	app.Usage = "inspect and exercise quill logger templates"
	app.Commands = []cli.Command{
		initCommand(),
		validateCommand(),
		previewCommand(cfg),
		emitCommand(cfg),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}
}

// initCommand writes the default logger configuration as a template file.
func initCommand() cli.Command {
	return cli.Command{
		Name:  "init",
		Usage: "write the default logger template",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "out, o",
				Value: "quill.json",
				Usage: "template file to write",
			},
		},
		Action: func(c *cli.Context) error {
			l, err := quill.New()
			if err != nil {
				return err
			}
			path := c.String("out")
			if err := l.SaveTemplate(path); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
}

// validateCommand parses a template file and reports violations of the
// logger invariants.
func validateCommand() cli.Command {
	return cli.Command{
		Name:      "validate",
		Usage:     "validate a logger template file",
		ArgsUsage: "<template.json>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("expected exactly one template file", 2)
			}
			path := c.Args().First()
			if _, err := template.Load(path); err != nil {
				return err
			}
			fmt.Printf("%s: ok\n", path)
			return nil
		},
	}
}

// previewCommand renders one sample line per severity so template authors
// can see the effect of their formatter configuration.
func previewCommand(cfg config.Config) cli.Command {
	return cli.Command{
		Name:  "preview",
		Usage: "render a sample log line for every severity",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "template, t",
				Value: cfg.TemplatePath,
				Usage: "logger template file",
			},
			cli.StringFlag{
				Name:  "format, f",
				Usage: "override the log line format",
			},
			cli.StringFlag{
				Name:  "datetime-format, d",
				Usage: "override the datetime format",
			},
			cli.BoolFlag{
				Name:  "no-color",
				Usage: "render headers without colors",
			},
		},
		Action: func(c *cli.Context) error {
			l, err := newLogger(c.String("template"), cfg)
			if err != nil {
				return err
			}
			defer l.Close()

			if f := c.String("format"); f != "" {
				if err := l.SetLogFormat(f); err != nil {
					return err
				}
			}
			if d := c.String("datetime-format"); d != "" {
				l.SetDatetimeFormat(d)
			}
			if c.Bool("no-color") {
				l.DisableHeaderColor()
			}

			for _, sev := range []quill.Severity{
				quill.Debug, quill.Info, quill.Warning, quill.Error, quill.Fatal,
			} {
				ev := quill.NewEvent(sev, fmt.Sprintf("sample %s message", sev))
				fmt.Println(l.FormatEvent(ev))
			}
			return nil
		},
	}
}

// emitCommand logs a single message through a fully configured logger,
// useful for smoke-testing a template against a real log file.
func emitCommand(cfg config.Config) cli.Command {
	return cli.Command{
		Name:  "emit",
		Usage: "log one message through the configured outputs",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "template, t",
				Value: cfg.TemplatePath,
				Usage: "logger template file",
			},
			cli.StringFlag{
				Name:  "severity, s",
				Value: "info",
				Usage: "severity: debug, info, warning, error, fatal",
			},
			cli.StringFlag{
				Name:  "message, m",
				Usage: "message to log",
			},
			cli.StringFlag{
				Name:  "file",
				Value: cfg.LogFile,
				Usage: "also append to this log file",
			},
		},
		Action: func(c *cli.Context) error {
			sev, err := quill.ParseSeverity(c.String("severity"))
			if err != nil {
				return err
			}
			msg := c.String("message")
			if msg == "" {
				return cli.NewExitError("a message is required", 2)
			}

			l, err := newLogger(c.String("template"), cfg)
			if err != nil {
				return err
			}
			defer l.Close()

			if path := c.String("file"); path != "" {
				if err := l.SetLogFilePath(path); err != nil {
					return err
				}
				if err := l.EnableFileLog(); err != nil {
					return err
				}
			}

			if err := l.Log(sev, msg); err != nil {
				return err
			}
			return l.Flush()
		},
	}
}

// newLogger builds a logger from the template when one is given, otherwise
// from environment defaults.
func newLogger(templatePath string, cfg config.Config) (*quill.Logger, error) {
	if templatePath != "" {
		return quill.FromTemplate(templatePath)
	}
	verbosity, err := quill.ParseVerbosity(cfg.Verbosity)
	if err != nil {
		return nil, err
	}
	return quill.New(
		quill.WithVerbosity(verbosity),
		quill.WithHeaderColor(cfg.Color),
		quill.WithMaxLogBufferSize(cfg.MaxBufferSize),
	)
}
