package snapshot

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/yndnr/fsm-go/internal/core/domain"
)

// ExtractWindows walks a decompressed recovery document and returns the
// current URL of every tab, grouped by window.
func ExtractWindows(doc []byte) ([]domain.Window, error) {
	if !utf8.Valid(doc) {
		return nil, ErrInvalidUTF8
	}
	if !gjson.ValidBytes(doc) {
		return nil, ErrInvalidJSON
	}

	windows := gjson.GetBytes(doc, "windows")
	if !windows.IsArray() {
		return nil, fmt.Errorf("%w: missing windows list", ErrUnexpectedDoc)
	}

	result := make([]domain.Window, 0, len(windows.Array()))
	for i, w := range windows.Array() {
		tabs := w.Get("tabs")
		if !tabs.IsArray() {
			return nil, fmt.Errorf("%w: window %d has no tabs list", ErrUnexpectedDoc, i)
		}

		urls := make(domain.Window, 0, len(tabs.Array()))
		for j, tab := range tabs.Array() {
			url, err := currentURL(tab)
			if err != nil {
				return nil, fmt.Errorf("%w: window %d tab %d: %w", ErrUnexpectedDoc, i, j, err)
			}
			urls = append(urls, url)
		}
		result = append(result, urls)
	}

	return result, nil
}

var (
	errNoEntries    = errors.New("no entries list")
	errEmptyEntries = errors.New("empty entries list")
	errNoURL        = errors.New("last entry has no url")
)

// currentURL returns the url of the last history entry of a tab.
func currentURL(tab gjson.Result) (string, error) {
	entries := tab.Get("entries")
	if !entries.IsArray() {
		return "", errNoEntries
	}
	list := entries.Array()
	if len(list) == 0 {
		return "", errEmptyEntries
	}
	url := list[len(list)-1].Get("url")
	if url.Type != gjson.String {
		return "", errNoURL
	}
	return url.String(), nil
}
