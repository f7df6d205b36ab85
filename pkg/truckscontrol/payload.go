package truckscontrol

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// DecodePayload turns a raw upstream response body into XML text. The API
// answers either plain XML, a gzip stream, or a ZIP archive whose first
// entry is the document; the three are distinguished by magic bytes.
func DecodePayload(raw []byte) (string, error) {
	if len(raw) > 2 && raw[0] == 0x50 && raw[1] == 0x4B {
		reader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
		if err != nil {
			return "", err
		}

		// An archive with no entries falls through to the raw-text path.
		if len(reader.File) > 0 {
			entry, err := reader.File[0].Open()
			if err != nil {
				return "", err
			}
			defer entry.Close()

			contents, err := io.ReadAll(entry)
			if err != nil {
				return "", err
			}

			return string(contents), nil
		}
	}

	if len(raw) > 2 && raw[0] == 0x1F && raw[1] == 0x8B {
		reader, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return "", err
		}
		defer reader.Close()

		contents, err := io.ReadAll(reader)
		if err != nil {
			return "", err
		}

		return string(contents), nil
	}

	return string(raw), nil
}
