package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// tarStream adapts a tar reader to the entry stream interface.
type tarStream struct {
	reader *tar.Reader
}

func (s *tarStream) Next() (*entry, error) {
	header, err := s.reader.Next()
	if err != nil {
		return nil, err
	}

	var kind entryKind
	switch header.Typeflag {
	case tar.TypeReg:
		kind = entryFile
	case tar.TypeDir:
		kind = entryDir
	case tar.TypeSymlink, tar.TypeLink:
		kind = entryLink
	default:
		kind = entryOther
	}

	return &entry{
		path: header.Name,
		kind: kind,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(s.reader), nil
		},
	}, nil
}

func extractTarFile(archivePath, dest string, gzipped bool) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening tar %s: %w", archivePath, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if gzipped {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return fmt.Errorf("reading gzip %s: %w", archivePath, err)
		}
		defer gz.Close()
		reader = gz
	}

	return extractStream(&tarStream{reader: tar.NewReader(reader)}, dest)
}
