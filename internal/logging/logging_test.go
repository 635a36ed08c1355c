package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_JSONWhenNotTTY(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false, false)

	logger.Info("rendered", "links", 3)

	assert.Contains(t, buf.String(), `"msg":"rendered"`)
	assert.Contains(t, buf.String(), `"links":3`)
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	quiet := newLogger(&buf, false, false)
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())

	verbose := newLogger(&buf, true, false)
	verbose.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_Printf(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false, false)

	logger.Printf("failed to render %s", "release")

	assert.Contains(t, buf.String(), "failed to render release")
}
