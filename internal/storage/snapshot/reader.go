package snapshot

import (
	"os"

	"github.com/yndnr/fsm-go/internal/core/domain"
)

// Decode turns the raw bytes of a recovery file into windows.
func Decode(data []byte) ([]domain.Window, error) {
	windows, err := decode(data)
	if err != nil {
		return nil, domain.ErrSnapshotDecode.WithCause(err)
	}
	return windows, nil
}

// ReadFile reads and decodes the recovery file at path.
func ReadFile(path string) ([]domain.Window, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.ErrSnapshotDecode.WithDetails(path).WithCause(err)
	}
	windows, err := decode(data)
	if err != nil {
		return nil, domain.ErrSnapshotDecode.WithDetails(path).WithCause(err)
	}
	return windows, nil
}

func decode(data []byte) ([]domain.Window, error) {
	doc, err := Decompress(data)
	if err != nil {
		return nil, err
	}
	return ExtractWindows(doc)
}

// Reader decodes snapshots from the filesystem.
type Reader struct{}

// ReadWindows reads the recovery file at path.
func (Reader) ReadWindows(path string) ([]domain.Window, error) {
	return ReadFile(path)
}
