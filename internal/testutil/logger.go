package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger builds a text-handler slog logger writing into an
// in-memory buffer, so tests can assert on emitted log lines.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}
