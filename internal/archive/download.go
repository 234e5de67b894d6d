package archive

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/skillctl/skillctl/internal/skillerr"
)

// allowedContentTypes maps each archive kind to the Content-Type values
// a server may declare for it.
var allowedContentTypes = map[Kind][]string{
	KindZip: {
		"application/zip",
		"application/x-zip-compressed",
		"application/octet-stream",
	},
	KindTar: {
		"application/x-tar",
		"application/octet-stream",
	},
	KindTarGz: {
		"application/gzip",
		"application/x-gzip",
		"application/octet-stream",
	},
}

// Download fetches an archive URL into destPath, enforcing the download
// byte limit and the Content-Type allow-list for the detected kind.
func Download(url string, kind Kind, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return skillerr.AcquisitionFailed(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return skillerr.AcquisitionFailed(url, fmt.Errorf("unexpected status %s", resp.Status))
	}

	if err := checkContentType(kind, resp.Header.Get("Content-Type")); err != nil {
		return err
	}

	if length := resp.Header.Get("Content-Length"); length != "" {
		if size, err := strconv.ParseInt(length, 10, 64); err == nil && size > MaxDownloadBytes {
			return skillerr.AcquisitionFailed(url,
				fmt.Errorf("download too large (%d bytes, limit %d)", size, MaxDownloadBytes))
		}
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}
	defer out.Close()

	var downloaded int64
	if err := copyBounded(out, resp.Body, &downloaded, MaxDownloadBytes); err != nil {
		if skillerr.HasCode(err, skillerr.CodeExtractedSizeExceeded) {
			return skillerr.AcquisitionFailed(url,
				fmt.Errorf("download exceeds limit (%d bytes)", MaxDownloadBytes))
		}
		return skillerr.AcquisitionFailed(url, err)
	}

	return nil
}

// checkContentType validates a declared Content-Type against the
// allow-list for the archive kind. An absent Content-Type is accepted.
func checkContentType(kind Kind, contentType string) error {
	if contentType == "" {
		return nil
	}

	lower := strings.ToLower(contentType)
	for _, allowed := range allowedContentTypes[kind] {
		if strings.HasPrefix(lower, allowed) {
			return nil
		}
	}
	return skillerr.UnsupportedContentType(contentType)
}
