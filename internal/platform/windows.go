package platform

import (
	"path/filepath"
	"time"
)

// windowsFirefoxPath is the default Firefox install location.
const windowsFirefoxPath = `C:\Program Files\Mozilla Firefox\firefox.exe`

// windowsAdapter starts firefox.exe for windows and hands tabs to the
// default URL handler.
type windowsAdapter struct {
	base
}

func (a *windowsAdapter) Name() string { return Windows }

// DefaultDelays gives the browser time to come up; windows opened back
// to back otherwise collapse into one.
func (a *windowsAdapter) DefaultDelays() Delays {
	return Delays{Window: 3, Tabs: 5}
}

func (a *windowsAdapter) SnapshotFile() (string, error) {
	home, err := a.homeDir()
	if err != nil {
		return "", err
	}
	return findSnapshot(filepath.Join(home, "AppData", "Roaming", "Mozilla", "Firefox", "Profiles"))
}

func (a *windowsAdapter) OpenWindow(url string, delay time.Duration) error {
	if err := a.start(a.opts.browser, "--new-window", url); err != nil {
		return err
	}
	a.pause(delay)
	return nil
}

func (a *windowsAdapter) OpenTab(url string) error {
	return a.start("rundll32", "url.dll,FileProtocolHandler", url)
}
