package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/yndnr/fsm-go/internal/core/domain"
)

// Supported operating systems.
const (
	Linux   = "linux"
	Windows = "windows"
)

const (
	configDirName    = ".fsm"
	sessionsFileName = "sessions.json"
	configFileName   = "fsm.conf"
)

// Delays holds the pacing used when reopening a session, in seconds.
type Delays struct {
	Window int
	Tabs   int
}

// Adapter is the capability set fsm needs from the OS.
type Adapter interface {
	// Name returns the GOOS value the adapter serves.
	Name() string

	// DefaultSessionsFile returns the default sessions store location.
	DefaultSessionsFile() (string, error)

	// ConfigFile returns the default config file location.
	ConfigFile() (string, error)

	// SnapshotFile returns the recovery snapshot of the release profile.
	SnapshotFile() (string, error)

	// DefaultDelays returns the platform default delays.
	DefaultDelays() Delays

	// OpenWindow opens url in a new browser window and then waits delay
	// so the browser can finish creating the window.
	OpenWindow(url string, delay time.Duration) error

	// OpenTab opens url in a new tab of the most recent window.
	OpenTab(url string) error
}

// Launcher starts external processes without waiting for them.
type Launcher interface {
	Start(name string, args ...string) error
}

// LauncherFunc adapts a function to Launcher.
type LauncherFunc func(name string, args ...string) error

// Start calls f.
func (f LauncherFunc) Start(name string, args ...string) error {
	return f(name, args...)
}

// execLauncher starts real processes.
type execLauncher struct{}

func (execLauncher) Start(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// options configures an adapter.
type options struct {
	home     string
	browser  string
	launcher Launcher
	sleep    func(time.Duration)
}

// Option is a function that configures an Adapter.
type Option func(*options)

// WithHomeDir overrides the user home directory.
func WithHomeDir(dir string) Option {
	return func(o *options) {
		o.home = dir
	}
}

// WithBrowser overrides the browser executable.
func WithBrowser(path string) Option {
	return func(o *options) {
		o.browser = path
	}
}

// WithLauncher overrides how processes are started.
func WithLauncher(l Launcher) Option {
	return func(o *options) {
		o.launcher = l
	}
}

// WithSleeper overrides the function used to wait after opening a window.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(o *options) {
		o.sleep = sleep
	}
}

// Current returns the adapter for the running OS.
func Current(opts ...Option) (Adapter, error) {
	return New(runtime.GOOS, opts...)
}

// New returns the adapter for goos.
func New(goos string, opts ...Option) (Adapter, error) {
	o := options{
		launcher: execLauncher{},
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch goos {
	case Linux:
		if o.browser == "" {
			o.browser = "firefox"
		}
		return &linuxAdapter{base{opts: o}}, nil
	case Windows:
		if o.browser == "" {
			o.browser = windowsFirefoxPath
		}
		return &windowsAdapter{base{opts: o}}, nil
	default:
		return nil, domain.ErrUnsupportedPlatform.WithDetails(goos)
	}
}

// base holds what both adapters share.
type base struct {
	opts options
}

func (b *base) homeDir() (string, error) {
	if b.opts.home != "" {
		return b.opts.home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", domain.ErrConfigIO.WithDetails("resolve home directory").WithCause(err)
	}
	return home, nil
}

func (b *base) inConfigDir(name string) (string, error) {
	home, err := b.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, name), nil
}

// DefaultSessionsFile returns ~/.fsm/sessions.json.
func (b *base) DefaultSessionsFile() (string, error) {
	return b.inConfigDir(sessionsFileName)
}

// ConfigFile returns ~/.fsm/fsm.conf.
func (b *base) ConfigFile() (string, error) {
	return b.inConfigDir(configFileName)
}

func (b *base) start(name string, args ...string) error {
	if err := b.opts.launcher.Start(name, args...); err != nil {
		return domain.ErrBrowserLaunch.WithDetails(name).WithCause(err)
	}
	return nil
}

func (b *base) pause(delay time.Duration) {
	if delay > 0 {
		b.opts.sleep(delay)
	}
}
