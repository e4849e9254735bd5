package platform

import (
	"path/filepath"
	"time"
)

// linuxAdapter drives Firefox through its command line, falling back to
// xdg-open when the firefox binary cannot be started.
type linuxAdapter struct {
	base
}

func (a *linuxAdapter) Name() string { return Linux }

func (a *linuxAdapter) DefaultDelays() Delays {
	return Delays{Window: 0, Tabs: 0}
}

func (a *linuxAdapter) SnapshotFile() (string, error) {
	home, err := a.homeDir()
	if err != nil {
		return "", err
	}
	return findSnapshot(filepath.Join(home, ".mozilla", "firefox"))
}

func (a *linuxAdapter) OpenWindow(url string, delay time.Duration) error {
	if err := a.openWith("--new-window", url); err != nil {
		return err
	}
	a.pause(delay)
	return nil
}

func (a *linuxAdapter) OpenTab(url string) error {
	return a.openWith("--new-tab", url)
}

func (a *linuxAdapter) openWith(mode, url string) error {
	if err := a.start(a.opts.browser, mode, url); err == nil {
		return nil
	}
	return a.start("xdg-open", url)
}
