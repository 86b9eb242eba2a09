package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alexflint/go-filemutex"

	"github.com/tidwall/buntdb"

	"github.com/urfave/cli/v2"

	"ponto/ponto"
	"ponto/view"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Name:  "ponto",
		Usage: "personal time-clock ledger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "directory holding the ledger db, lock and log (default ~/.ponto)",
			},
		},
		Commands: []*cli.Command{
			punchCommand("in", "clock in now", ponto.EventIn),
			punchCommand("out", "clock out now", ponto.EventOut),
			breakCommand,
			addCommand,
			listCommand,
			statusCommand,
			exportCommand,
			editCommand,
			deleteCommand,
			clearCommand,
		},
	}
	return app.Run(os.Args)
}

func punchCommand(name, usage string, t ponto.EventType) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "note", Usage: "optional annotation"},
		},
		Action: func(c *cli.Context) error {
			return withLedger(c, func(l ponto.Ledger) error {
				rec, err := l.Punch(t, c.String("note"), time.Now())
				if err != nil {
					return err
				}
				fmt.Printf("%s recorded at %s %s\n", rec.Type.Label(), rec.Date, rec.Time)
				return nil
			})
		},
	}
}

var breakCommand = &cli.Command{
	Name:  "break",
	Usage: "record a break punch now",
	Subcommands: []*cli.Command{
		punchCommand("start", "start a break now", ponto.EventBreakStart),
		punchCommand("end", "end the current break now", ponto.EventBreakEnd),
	},
}

var addCommand = &cli.Command{
	Name:  "add",
	Usage: "record a punch with an explicit date and time",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD (default today)"},
		&cli.StringFlag{Name: "time", Usage: "HH:MM (default now)"},
		&cli.StringFlag{Name: "type", Usage: "IN, OUT, BREAK_START or BREAK_END", Required: true},
		&cli.StringFlag{Name: "note", Usage: "optional annotation"},
	},
	Action: func(c *cli.Context) error {
		t, err := ponto.ParseEventType(c.String("type"))
		if err != nil {
			return err
		}
		now := time.Now()
		candidate := ponto.Record{
			Date: ponto.NewDate(now),
			Time: ponto.NewClockTime(now),
			Type: t,
			Note: c.String("note"),
		}
		if c.IsSet("date") {
			candidate.Date = ponto.Date(c.String("date"))
		}
		if c.IsSet("time") {
			candidate.Time = ponto.ClockTime(c.String("time"))
		}
		return withLedger(c, func(l ponto.Ledger) error {
			rec, err := l.Add(candidate)
			if err != nil {
				return err
			}
			fmt.Printf("%s recorded at %s %s\n", rec.Type.Label(), rec.Date, rec.Time)
			return nil
		})
	},
}

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "show punch records and day totals",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD (default today)"},
		&cli.BoolFlag{Name: "all", Usage: "show the whole ledger"},
	},
	Action: func(c *cli.Context) error {
		date := ponto.NewDate(time.Now())
		if c.IsSet("date") {
			date = ponto.Date(c.String("date"))
			if err := date.Validate(); err != nil {
				return err
			}
		}
		if c.Bool("all") {
			date = ""
		}
		return withLedger(c, func(l ponto.Ledger) error {
			viewer := view.NewTableViewer(view.NewViewRepository(l), os.Stdout)
			return viewer.Do(date, ponto.MinutesOfDay(time.Now()))
		})
	},
}

var statusCommand = &cli.Command{
	Name:  "status",
	Usage: "show the day's state and totals",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD (default today)"},
	},
	Action: func(c *cli.Context) error {
		date := ponto.NewDate(time.Now())
		if c.IsSet("date") {
			date = ponto.Date(c.String("date"))
			if err := date.Validate(); err != nil {
				return err
			}
		}
		return withLedger(c, func(l ponto.Ledger) error {
			repo := view.NewViewRepository(l)
			s, err := repo.DaySummary(date, ponto.MinutesOfDay(time.Now()))
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", s.Date, s.State.Label())
			fmt.Printf("  net work: %s\n", ponto.FormatMinutes(s.Totals.NetWorkMinutes))
			fmt.Printf("  break:    %s\n", ponto.FormatMinutes(s.Totals.BreakMinutes))
			return nil
		})
	},
}

var exportCommand = &cli.Command{
	Name:  "export",
	Usage: "export the whole ledger as CSV",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "out", Usage: "write to a file instead of stdout"},
	},
	Action: func(c *cli.Context) error {
		return withLedger(c, func(l ponto.Ledger) error {
			w := os.Stdout
			if out := c.String("out"); out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return l.ExportCSV(w)
		})
	},
}

var editCommand = &cli.Command{
	Name:  "edit",
	Usage: "interactively edit or delete a day's records",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD (default today)"},
	},
	Action: func(c *cli.Context) error {
		date := ponto.NewDate(time.Now())
		if c.IsSet("date") {
			date = ponto.Date(c.String("date"))
			if err := date.Validate(); err != nil {
				return err
			}
		}
		return withLedger(c, func(l ponto.Ledger) error {
			logger, err := newLogger(c)
			if err != nil {
				return err
			}
			tui := view.NewTUI(l, view.NewViewRepository(l), logger)
			return tui.Do(date, ponto.MinutesOfDay(time.Now()))
		})
	},
}

var deleteCommand = &cli.Command{
	Name:      "delete",
	Usage:     "delete a record by id",
	ArgsUsage: "<id>",
	Action: func(c *cli.Context) error {
		id := c.Args().First()
		if id == "" {
			return fmt.Errorf("usage: ponto delete <id>")
		}
		return withLedger(c, func(l ponto.Ledger) error {
			return l.Delete(id)
		})
	},
}

var clearCommand = &cli.Command{
	Name:  "clear",
	Usage: "delete every record",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "force", Usage: "required; clearing cannot be undone"},
	},
	Action: func(c *cli.Context) error {
		if !c.Bool("force") {
			return fmt.Errorf("this deletes every stored record; re-run with --force to confirm")
		}
		return withLedger(c, func(l ponto.Ledger) error {
			return l.Clear()
		})
	},
}

func withLedger(c *cli.Context, fn func(l ponto.Ledger) error) error {
	dir, err := dataDir(c)
	if err != nil {
		return err
	}

	db, err := buntdb.Open(filepath.Join(dir, "ponto.db"))
	if err != nil {
		return err
	}
	defer db.Close()

	logger, err := newLogger(c)
	if err != nil {
		return err
	}

	fm, err := filemutex.New(filepath.Join(dir, "ponto.lock"))
	if err != nil {
		return err
	}

	repo := ponto.NewRecordRepository(db)
	ledger := ponto.NewLedger(repo, logger, ponto.NewNotificator(), fm)
	return fn(ledger)
}

func newLogger(c *cli.Context) (*slog.Logger, error) {
	dir, err := dataDir(c)
	if err != nil {
		return nil, err
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "log.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	return slog.New(
		slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}),
	), nil
}

func dataDir(c *cli.Context) (string, error) {
	dir := c.String("data-dir")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".ponto")
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	return dir, nil
}
