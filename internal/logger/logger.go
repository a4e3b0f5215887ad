package logger

import (
	"io"
	"log"
	"os"
)

// New returns a logger writing to the file at path and, with echo set, to
// stderr as well. The returned closer releases the file.
func New(path string, echo bool) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = f
	if echo {
		w = io.MultiWriter(f, os.Stderr)
	}
	return log.New(w, "", log.LstdFlags), f, nil
}
