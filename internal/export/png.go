// Package export hands a snapshot of the drawing surface to the user.
package export

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the name offered for PNG downloads.
const DefaultFileName = "image.png"

var ErrDataURL = errors.New("malformed data url")

// Surface produces a bitmap snapshot of what is currently rendered.
type Surface interface {
	ToDataURL() (string, error)
}

// Downloader offers bytes to the user under a file name.
type Downloader interface {
	Download(name string, data []byte) error
}

// Trigger exports snapshots. It keeps no state between calls.
type Trigger struct {
	Surface     Surface
	Downloader  Downloader
	FileName    string
	PDFFileName string

	// BeforeSnapshot runs first; the board uses it to drop the selection
	// so the transform handle is not captured.
	BeforeSnapshot func()
}

// ExportSnapshot asks the surface for a PNG and passes it to the downloader.
func (t Trigger) ExportSnapshot() error {
	data, err := t.snapshot()
	if err != nil {
		return err
	}
	name := t.fileName()
	if err := t.Downloader.Download(name, data); err != nil {
		return fmt.Errorf("download %s: %w", name, err)
	}
	log.Printf("[EXPORT] Offered %s (%d bytes)", name, len(data))
	return nil
}

func (t Trigger) snapshot() ([]byte, error) {
	if t.BeforeSnapshot != nil {
		t.BeforeSnapshot()
	}
	url, err := t.Surface.ToDataURL()
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return DecodeDataURL(url)
}

func (t Trigger) fileName() string {
	if t.FileName == "" {
		return DefaultFileName
	}
	return t.FileName
}

// DecodeDataURL returns the payload of a base64 data URL.
func DecodeDataURL(url string) ([]byte, error) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return nil, fmt.Errorf("missing data: scheme: %w", ErrDataURL)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("not base64: %w", ErrDataURL)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataURL, err)
	}
	return data, nil
}

// DirDownloader saves downloads into a directory.
type DirDownloader struct {
	Dir string
}

func (d DirDownloader) Download(name string, data []byte) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", d.Dir, err)
	}
	path := filepath.Join(d.Dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
