package schedule

import (
	"encoding/json"
	"fmt"
	"os"
)

// Source supplies the full raw record collection at startup. There is no
// subscription or incremental-update contract; Load returns everything the
// source has, already normalized, invalid records included so that callers
// can count what they skip.
type Source interface {
	Load() (Events, error)
}

type fileSource struct {
	path string
}

// FileSource reads raw event records from a JSON array file.
func FileSource(path string) Source {
	return fileSource{path: path}
}

func (s fileSource) Load() (Events, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("unable to read schedule source %s: %w", s.path, err)
	}
	raws := make([]Raw, 0)
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("unable to decode schedule source %s: %w", s.path, err)
	}
	return NormalizeAll(raws), nil
}
