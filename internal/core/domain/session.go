// Package domain defines the core domain models for fsm.
package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
)

// TimestampLayout is the layout of SessionRecord.LastUpdated.
const TimestampLayout = "2006/01/02 15:04:05"

// Window is the ordered list of tab URLs of one browser window.
type Window []string

// SessionRecord is a saved browser layout.
type SessionRecord struct {
	// LastUpdated is the local time of the last add/update (TimestampLayout).
	LastUpdated string `json:"last_updated" yaml:"last_updated"`

	// Windows holds the windows in browser order.
	Windows []Window `json:"windows" yaml:"windows"`
}

// NewSessionRecord stamps windows with the given time.
func NewSessionRecord(windows []Window, now time.Time) SessionRecord {
	if windows == nil {
		windows = []Window{}
	}
	return SessionRecord{
		LastUpdated: FormatTimestamp(now),
		Windows:     windows,
	}
}

// WindowCount returns the number of windows.
func (r SessionRecord) WindowCount() int {
	return len(r.Windows)
}

// TabCount returns the number of tabs across all windows.
func (r SessionRecord) TabCount() int {
	return lo.SumBy(r.Windows, func(w Window) int { return len(w) })
}

// UpdatedAt parses LastUpdated in the local time zone.
func (r SessionRecord) UpdatedAt() (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, r.LastUpdated, time.Local)
}

// FormatTimestamp formats t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Sessions maps session names to records. It is the whole content of
// the sessions file.
type Sessions map[string]SessionRecord

// Has reports whether name is stored.
func (s Sessions) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the session names in lexical order.
func (s Sessions) Names() []string {
	names := lo.Keys(s)
	sort.Strings(names)
	return names
}

// ValidateSessionName rejects empty and blank names.
func ValidateSessionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrSessionNameInvalid.WithDetails("name must not be empty")
	}
	return nil
}
