package gsheets

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultCredentialsPath is the conventional service-account file name used
// when neither a path nor an inline payload is configured.
const DefaultCredentialsPath = "credentials.json"

// ErrCredentialFormat reports credential material that is not well-formed
// JSON.
var ErrCredentialFormat = errors.New("malformed credentials payload")

// Credentials selects the service-account material for the Sheets client.
// An inline JSON payload takes precedence over the file path; with neither
// set, DefaultCredentialsPath is read.
type Credentials struct {
	Path string
	JSON []byte
}

// payload returns the raw service-account JSON, loading it from disk when no
// inline payload is present. The payload is sniffed before use so that a
// wrong file or a truncated env value fails here with ErrCredentialFormat
// instead of as an opaque auth failure later.
func (c Credentials) payload() ([]byte, error) {
	data := c.JSON
	if len(data) == 0 {
		path := c.Path
		if path == "" {
			path = DefaultCredentialsPath
		}
		slog.Debug("Loading credentials file", "path", path)
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read credentials: %w", err)
		}
	}

	if mt := mimetype.Detect(data); !mt.Is("application/json") {
		slog.Error("Credentials payload is not JSON", "detected", mt.String())
		return nil, fmt.Errorf("%w: detected %s", ErrCredentialFormat, mt.String())
	}
	return data, nil
}
