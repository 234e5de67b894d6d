package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// zipStream adapts a zip file to the entry stream interface.
type zipStream struct {
	files []*zip.File
	next  int
}

func (s *zipStream) Next() (*entry, error) {
	if s.next >= len(s.files) {
		return nil, io.EOF
	}
	f := s.files[s.next]
	s.next++

	kind := entryFile
	switch {
	case f.Mode()&fs.ModeSymlink != 0:
		kind = entryLink
	case f.Mode().IsDir(), strings.HasSuffix(f.Name, "/"):
		kind = entryDir
	case !f.Mode().IsRegular():
		kind = entryOther
	}

	return &entry{
		path: f.Name,
		kind: kind,
		open: func() (io.ReadCloser, error) { return f.Open() },
	}, nil
}

func extractZip(archivePath, dest string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("reading zip %s: %w", archivePath, err)
	}
	defer reader.Close()

	return extractStream(&zipStream{files: reader.File}, dest)
}
