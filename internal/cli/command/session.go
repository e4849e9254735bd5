package command

import (
	"fmt"
	"io"

	"github.com/yndnr/fsm-go/internal/cli/output"
	"github.com/yndnr/fsm-go/internal/core/domain"
)

// dispatch runs the requested actions in a fixed order: list, then one
// of check/add/update, then show, remove and open.
func (e *env) dispatch() error {
	f := e.flags

	if f.List {
		if err := e.list(); err != nil {
			return err
		}
	}

	switch {
	case f.Check:
		if err := e.check(); err != nil {
			return err
		}
	case f.Add != "":
		if err := e.save(f.Add, false); err != nil {
			return err
		}
	case f.Update != "":
		if err := e.save(f.Update, true); err != nil {
			return err
		}
	}

	if f.Show != "" {
		if err := e.show(f.Show); err != nil {
			return err
		}
	}

	if f.Remove != "" {
		if err := e.svc.Remove(e.ctx, f.Remove); err != nil {
			return err
		}
	}

	if f.Open != "" {
		return e.svc.Open(e.ctx, f.Open)
	}
	return nil
}

func (e *env) list() error {
	sessions, err := e.svc.List(e.ctx)
	if err != nil {
		return err
	}
	return output.NewFormatter(e.format, e.flags.Wide).Format(e.out, sessions)
}

func (e *env) check() error {
	windows, err := e.svc.Check(e.ctx, e.snapshot)
	if err != nil {
		return err
	}
	return e.printWindows(windows, windows)
}

func (e *env) save(name string, overwrite bool) error {
	var err error
	if overwrite {
		_, err = e.svc.Update(e.ctx, name, e.snapshot)
	} else {
		_, err = e.svc.Add(e.ctx, name, e.snapshot)
	}
	return err
}

func (e *env) show(name string) error {
	rec, err := e.svc.Get(e.ctx, name)
	if err != nil {
		return err
	}
	return e.printWindows(rec.Windows, rec)
}

// printWindows writes windows as an indented listing, or data through the
// JSON/YAML formatter when one was requested.
func (e *env) printWindows(windows []domain.Window, data any) error {
	switch e.format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(e.format, false).Format(e.out, data)
	default:
		return writeWindows(e.out, windows)
	}
}

// writeWindows prints "Window N:" followed by one tab-indented URL per line.
func writeWindows(w io.Writer, windows []domain.Window) error {
	for i, win := range windows {
		if _, err := fmt.Fprintf(w, "Window %d:\n", i+1); err != nil {
			return err
		}
		for _, url := range win {
			if _, err := fmt.Fprintf(w, "\t%s\n", url); err != nil {
				return err
			}
		}
	}
	return nil
}
