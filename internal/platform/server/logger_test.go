package server

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_WarnsOnUnknownLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	newLogger(buf, "verbose")
	assert.Contains(t, buf.String(), "falling back to info level")
	assert.Contains(t, buf.String(), `"service":"`+ServiceName+`"`)
}

func TestLogger_HonoursLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	l := newLogger(buf, "error")
	l.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}
