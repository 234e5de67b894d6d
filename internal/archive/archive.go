// Package archive downloads and safely extracts untrusted skill archives.
//
// All formats are unpacked through a single bounded entry stream so the
// traversal, link, and resource-limit checks are applied uniformly. An
// extraction either completes fully under the limits or fails; callers
// discard the whole temporary directory on failure, so partially
// extracted content is never used.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/skillctl/skillctl/internal/skillerr"
)

// Kind identifies a supported archive format, derived from the source's
// trailing extension only. Archive content is never trusted to declare
// its own format.
type Kind string

const (
	KindZip   Kind = "zip"
	KindTar   Kind = "tar"
	KindTarGz Kind = "tar.gz"
)

// Hard resource limits for untrusted archives.
const (
	// MaxDownloadBytes caps the size of a downloaded archive.
	MaxDownloadBytes int64 = 200 << 20

	// MaxExtractedBytes caps the cumulative decompressed size. The
	// counter is checked per chunk so a decompression bomb is caught
	// mid-stream, not after the fact.
	MaxExtractedBytes int64 = 512 << 20

	// MaxEntries caps the number of archive entries.
	MaxEntries = 5000
)

// DetectKind classifies a source string by its trailing extension,
// case-insensitively. Returns false if the source is not an archive.
func DetectKind(source string) (Kind, bool) {
	lower := strings.ToLower(source)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return KindZip, true
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return KindTarGz, true
	case strings.HasSuffix(lower, ".tar"):
		return KindTar, true
	}
	return "", false
}

// FileName returns the local file name used for a downloaded archive.
func (k Kind) FileName() string {
	return "skill." + string(k)
}

// entryKind classifies an archive entry.
type entryKind int

const (
	entryFile entryKind = iota
	entryDir
	entryLink  // symlink or hard link, always rejected
	entryOther // fifo, device, etc., never materialized
)

// entry is one archive member exposed by an entry stream.
type entry struct {
	path string
	kind entryKind
	open func() (io.ReadCloser, error)
}

// entryStream yields archive entries in order, returning io.EOF when done.
type entryStream interface {
	Next() (*entry, error)
}

// Extract unpacks an archive file into dest, enforcing all limits and
// per-entry safety checks before any byte is written.
func Extract(archivePath string, kind Kind, dest string) error {
	switch kind {
	case KindZip:
		return extractZip(archivePath, dest)
	case KindTar:
		return extractTarFile(archivePath, dest, false)
	case KindTarGz:
		return extractTarFile(archivePath, dest, true)
	}
	return fmt.Errorf("unknown archive kind %q", kind)
}

// extractStream drains a stream into dest under the shared limits.
func extractStream(stream entryStream, dest string) error {
	var extracted int64
	count := 0

	for {
		e, err := stream.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading archive entry: %w", err)
		}

		count++
		if count > MaxEntries {
			return skillerr.TooManyEntries(count, MaxEntries)
		}

		if e.kind == entryLink {
			return skillerr.UnsafeLinkEntry(e.path)
		}

		safe, err := sanitizePath(e.path)
		if err != nil {
			return err
		}

		switch e.kind {
		case entryDir:
			if err := os.MkdirAll(filepath.Join(dest, safe), 0755); err != nil {
				return fmt.Errorf("creating directory: %w", err)
			}
		case entryFile:
			if err := writeEntry(e, filepath.Join(dest, safe), &extracted); err != nil {
				return err
			}
		}
		// entryOther is dropped: only regular files and directories
		// are materialized.
	}
}

func writeEntry(e *entry, outPath string, extracted *int64) error {
	reader, err := e.open()
	if err != nil {
		return fmt.Errorf("opening entry %s: %w", e.path, err)
	}
	defer reader.Close()

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	return copyBounded(out, reader, extracted, MaxExtractedBytes)
}

// copyBounded copies reader to writer, charging every chunk against the
// shared running total before it is accepted.
func copyBounded(w io.Writer, r io.Reader, total *int64, limit int64) error {
	buf := make([]byte, 8192)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			*total += int64(n)
			if *total > limit {
				return skillerr.ExtractedSizeExceeded(limit)
			}
			if _, werr := w.Write(buf[:n]); werr != nil {
				return fmt.Errorf("writing entry: %w", werr)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading entry: %w", err)
		}
	}
}

var drivePrefixPattern = regexp.MustCompile(`^[a-zA-Z]:`)

// sanitizePath normalizes an archive entry path, dropping "." components.
// Any parent-directory, root, or drive-prefix component is rejected.
func sanitizePath(name string) (string, error) {
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") {
		return "", skillerr.PathTraversal(name)
	}

	normalized := strings.ReplaceAll(name, "\\", "/")
	var parts []string
	for _, part := range strings.Split(normalized, "/") {
		switch part {
		case "", ".":
			continue
		case "..":
			return "", skillerr.PathTraversal(name)
		}
		if drivePrefixPattern.MatchString(part) {
			return "", skillerr.PathTraversal(name)
		}
		parts = append(parts, part)
	}

	return filepath.Join(parts...), nil
}
