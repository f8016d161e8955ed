package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFrames(t *testing.T) {
	assert.Equal(t, "FPS: 60", FormatFrames(60))
	assert.Equal(t, "FPS: 0", FormatFrames(0))
}

func TestConsoleSink(t *testing.T) {
	var buf bytes.Buffer
	sink := Console(&buf)

	sink("FPS: 59")
	sink("FPS: 60")

	assert.Equal(t, "FPS: 59\nFPS: 60\n", buf.String())
}

func TestLoggerSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	Logger(logger)("FPS: 30")

	out := buf.String()
	assert.Contains(t, out, "diagnostic")
	assert.Contains(t, out, "FPS: 30")
}

func TestTeeSkipsNil(t *testing.T) {
	var a, b []string
	sink := Tee(
		func(line string) { a = append(a, line) },
		nil,
		func(line string) { b = append(b, line) },
	)

	sink("x")
	assert.Equal(t, []string{"x"}, a)
	assert.Equal(t, []string{"x"}, b)
}

func TestBuiltinSinksRegistered(t *testing.T) {
	names := List()
	for _, name := range []string{"console", "discard", "log"} {
		assert.Contains(t, names, name)
		assert.True(t, Exists(name))
	}
	assert.True(t, strings.Compare(names[0], names[len(names)-1]) < 0, "List should be sorted")
}

func TestCreateConsoleUsesOptions(t *testing.T) {
	var buf bytes.Buffer
	sink, err := Create("console", Options{Out: &buf})
	require.NoError(t, err)

	sink("FPS: 1")
	assert.Equal(t, "FPS: 1\n", buf.String())
}

func TestCreateUnknownSink(t *testing.T) {
	_, err := Create("carrier-pigeon", Options{})
	assert.Error(t, err)
	assert.False(t, Exists("carrier-pigeon"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("console", func(Options) Sink { return Discard })
	})
}
