package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/fsm-go/internal/cli/config"
	"github.com/yndnr/fsm-go/internal/cli/output"
	"github.com/yndnr/fsm-go/internal/core/service"
	"github.com/yndnr/fsm-go/internal/infra/buildinfo"
	"github.com/yndnr/fsm-go/internal/platform"
	"github.com/yndnr/fsm-go/internal/storage/sessionfile"
	"github.com/yndnr/fsm-go/internal/storage/snapshot"
	"github.com/yndnr/fsm-go/internal/telemetry/logger"
)

// Flag names.
const (
	flagAdd                = "add"
	flagRemove             = "remove"
	flagUpdate             = "update"
	flagOpen               = "open"
	flagList               = "list"
	flagCheck              = "check"
	flagShow               = "show"
	flagVerbose            = "verbose"
	flagVersion            = "version"
	flagSessionsFile       = "sessions-file"
	flagConfigSessionsFile = "config-sessions-file"
	flagWindowDelay        = "window-delay"
	flagConfigWindowDelay  = "config-window-delay"
	flagTabsDelay          = "tabs-delay"
	flagConfigTabsDelay    = "config-tabs-delay"
	flagConfig             = "config"
	flagSnapshot           = "snapshot"
	flagFormat             = "format"
	flagWide               = "wide"
)

// appOptions holds the collaborators App wires in.
type appOptions struct {
	adapter platform.Adapter
	stdout  io.Writer
	stderr  io.Writer
	sleep   func(time.Duration)
}

// Option configures App.
type Option func(*appOptions)

// WithPlatform replaces the adapter selected from the running OS.
func WithPlatform(a platform.Adapter) Option {
	return func(o *appOptions) {
		o.adapter = a
	}
}

// WithOutput redirects normal and diagnostic output.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *appOptions) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// WithSleeper overrides the pause between reopened windows.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(o *appOptions) {
		o.sleep = sleep
	}
}

// App creates the CLI application.
func App(opts ...Option) *cli.App {
	o := &appOptions{
		stdout: os.Stdout,
		stderr: os.Stderr,
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(o)
	}

	return &cli.App{
		Name:            "fsm",
		Usage:           "Firefox Session Manager: save, list and reopen browser sessions",
		Description:     "Runtime values come from a flag if given, else from FSM_SESSIONS_FILE,\nFSM_WINDOW_DELAY and FSM_TABS_DELAY, else from the config file.\nOnly --config-* flags are written back to the config file.",
		Version:         buildinfo.Version,
		HideVersion:     true,
		HideHelpCommand: true,
		Flags:           globalFlags(),
		Writer:          o.stdout,
		ErrWriter:       o.stderr,
		Action: func(c *cli.Context) error {
			return run(c, o)
		},
	}
}

// globalFlags returns the root flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagAdd,
			Aliases: []string{"a"},
			Usage:   "Store current session as `NAME`",
		},
		&cli.StringFlag{
			Name:    flagRemove,
			Aliases: []string{"r"},
			Usage:   "Remove stored session `NAME`",
		},
		&cli.StringFlag{
			Name:    flagUpdate,
			Aliases: []string{"u"},
			Usage:   "Update session `NAME` with current state",
		},
		&cli.StringFlag{
			Name:    flagOpen,
			Aliases: []string{"o"},
			Usage:   "Open stored session `NAME`",
		},
		&cli.BoolFlag{
			Name:    flagList,
			Aliases: []string{"l"},
			Usage:   "List stored sessions",
		},
		&cli.BoolFlag{
			Name:    flagCheck,
			Aliases: []string{"c"},
			Usage:   "Check and display the current session",
		},
		&cli.StringFlag{
			Name:    flagShow,
			Aliases: []string{"s"},
			Usage:   "Display stored session `NAME`",
		},
		&cli.BoolFlag{
			Name:    flagVerbose,
			Aliases: []string{"v"},
			Usage:   "Report progress on stderr",
		},
		&cli.BoolFlag{
			Name:    flagVersion,
			Aliases: []string{"V"},
			Usage:   "Show version and exit",
		},
		&cli.StringFlag{
			Name:  flagSessionsFile,
			Usage: "Use `FILE` to store sessions for this run (env $FSM_SESSIONS_FILE)",
		},
		&cli.StringFlag{
			Name:  flagConfigSessionsFile,
			Usage: "Set default sessions `FILE`",
		},
		&cli.IntFlag{
			Name:  flagWindowDelay,
			Usage: "Wait `SECONDS` after opening each window (env $FSM_WINDOW_DELAY)",
		},
		&cli.IntFlag{
			Name:  flagConfigWindowDelay,
			Usage: "Set default window open delay in `SECONDS`",
		},
		&cli.IntFlag{
			Name:  flagTabsDelay,
			Usage: "Wait `SECONDS` between windows (env $FSM_TABS_DELAY)",
		},
		&cli.IntFlag{
			Name:  flagConfigTabsDelay,
			Usage: "Set default tabs open delay in `SECONDS`",
		},
		&cli.StringFlag{
			Name:    flagConfig,
			Usage:   "Read configuration from `FILE` (.yaml/.yml for YAML)",
			EnvVars: []string{"FSM_CONFIG"},
		},
		&cli.StringFlag{
			Name:  flagSnapshot,
			Usage: "Read the current session from `FILE` instead of the Firefox profile",
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"f"},
			Usage:   "Output format: table, plain, json, yaml",
			Value:   string(output.FormatTable),
		},
		&cli.BoolFlag{
			Name:    flagWide,
			Aliases: []string{"w"},
			Usage:   "Show wide output (adds session age)",
		},
	}
}

// GlobalFlags holds the parsed root flags.
type GlobalFlags struct {
	Add     string
	Remove  string
	Update  string
	Open    string
	Show    string
	List    bool
	Check   bool
	Verbose bool

	Config   string
	Snapshot string
	Format   string
	Wide     bool

	Runtime config.Overrides
	Persist config.Overrides
}

// ParseGlobalFlags extracts the root flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Add:      c.String(flagAdd),
		Remove:   c.String(flagRemove),
		Update:   c.String(flagUpdate),
		Open:     c.String(flagOpen),
		Show:     c.String(flagShow),
		List:     c.Bool(flagList),
		Check:    c.Bool(flagCheck),
		Verbose:  c.Bool(flagVerbose),
		Config:   c.String(flagConfig),
		Snapshot: c.String(flagSnapshot),
		Format:   c.String(flagFormat),
		Wide:     c.Bool(flagWide),
		Runtime:  overrides(c, flagSessionsFile, flagWindowDelay, flagTabsDelay),
		Persist:  overrides(c, flagConfigSessionsFile, flagConfigWindowDelay, flagConfigTabsDelay),
	}
}

// overrides collects the flags the user actually passed.
func overrides(c *cli.Context, file, window, tabs string) config.Overrides {
	var o config.Overrides
	if c.IsSet(file) {
		v := c.String(file)
		o.SessionsFile = &v
	}
	if c.IsSet(window) {
		v := c.Int(window)
		o.WindowDelay = &v
	}
	if c.IsSet(tabs) {
		v := c.Int(tabs)
		o.TabsDelay = &v
	}
	return o
}

// hasAction reports whether any action flag was given.
func (f *GlobalFlags) hasAction() bool {
	return f.List || f.Check || f.Add != "" || f.Update != "" || f.Show != "" || f.Remove != "" || f.Open != ""
}

// env is what the actions share after startup.
type env struct {
	ctx      context.Context
	flags    *GlobalFlags
	svc      *service.SessionService
	out      io.Writer
	format   output.Format
	snapshot service.SnapshotLocator
}

func run(c *cli.Context, o *appOptions) error {
	flags := ParseGlobalFlags(c)

	if c.Bool(flagVersion) {
		fmt.Fprintln(c.App.Writer, buildinfo.Banner())
		if flags.Verbose {
			fmt.Fprintln(c.App.Writer, buildinfo.String())
		}
		return nil
	}

	format, err := output.ParseFormat(flags.Format)
	if err != nil {
		return err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Output = c.App.ErrWriter
	if flags.Verbose {
		logCfg.Level = "info"
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	logger.SetDefault(log)
	ctx := logger.WithLogger(c.Context, log)

	adapter := o.adapter
	if adapter == nil {
		if adapter, err = platform.Current(platform.WithSleeper(o.sleep)); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(ctx, adapter, flags)
	if err != nil {
		return err
	}

	repo := sessionfile.New(cfg.SessionsFile)
	created, err := repo.Ensure()
	if err != nil {
		return err
	}
	if created {
		log.Info("sessions file initialized", "path", repo.Path())
	}

	svc := service.NewSessionService(repo, snapshot.Reader{}, adapter,
		service.WithDelays(seconds(cfg.WindowDelay), seconds(cfg.TabsDelay)),
		service.WithSleeper(o.sleep),
	)

	if !flags.hasAction() {
		return cli.ShowAppHelp(c)
	}

	e := &env{
		ctx:    ctx,
		flags:  flags,
		svc:    svc,
		out:    c.App.Writer,
		format: format,
		snapshot: func() (string, error) {
			if flags.Snapshot != "" {
				return flags.Snapshot, nil
			}
			return adapter.SnapshotFile()
		},
	}
	return e.dispatch()
}

// loadConfig creates or updates the config file and layers runtime
// overrides on top of it.
func loadConfig(ctx context.Context, adapter platform.Adapter, flags *GlobalFlags) (*config.Config, error) {
	log := logger.FromContext(ctx)

	path := flags.Config
	if path == "" {
		var err error
		if path, err = adapter.ConfigFile(); err != nil {
			return nil, err
		}
	}

	defaults, err := config.PlatformDefault(adapter)
	if err != nil {
		return nil, err
	}

	res, err := config.Bootstrap(path, defaults, flags.Persist)
	if err != nil {
		return nil, err
	}
	switch {
	case res.CreatedDir:
		log.Info("created config directory", "path", filepath.Dir(path))
		fallthrough
	case res.Created:
		log.Info("created config file", "path", path)
	case res.Updated:
		log.Info("updated config file", "path", path)
	}

	return config.Resolve(res.Config, flags.Runtime)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
