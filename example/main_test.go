package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xgzlucario/dynarray/option"
)

var errWrite = errors.New("disk full")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func getConfig(reverse bool) config {
	return config{
		reverse: reverse,
		maxLine: 1 << 10,
		opt: &option.Option{
			InitialCapacity: 2,
			Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}
}

func TestRun(t *testing.T) {
	assert := assert.New(t)
	input := "pear\napple\nfig\nbanana\n"

	var out bytes.Buffer
	n, err := run(strings.NewReader(input), &out, getConfig(false))
	assert.Nil(err)
	assert.Equal(4, n)
	assert.Equal("apple\nbanana\nfig\npear\n", out.String())

	out.Reset()
	n, err = run(strings.NewReader(input), &out, getConfig(true))
	assert.Nil(err)
	assert.Equal(4, n)
	assert.Equal("pear\nfig\nbanana\napple\n", out.String())

	// empty input.
	out.Reset()
	n, err = run(strings.NewReader(""), &out, getConfig(false))
	assert.Nil(err)
	assert.Equal(0, n)
	assert.Equal("", out.String())
}

func TestRunGrowthLogged(t *testing.T) {
	assert := assert.New(t)

	var logs bytes.Buffer
	cfg := getConfig(false)
	cfg.opt.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := run(strings.NewReader("c\nb\na\n"), io.Discard, cfg)
	assert.Nil(err)
	assert.Contains(logs.String(), "from=2 to=4")
}

func TestRunLongLine(t *testing.T) {
	assert := assert.New(t)
	cfg := getConfig(false)

	// a line within maxLine is accepted.
	line := strings.Repeat("x", cfg.maxLine-1)
	var out bytes.Buffer
	n, err := run(strings.NewReader(line+"\n"), &out, cfg)
	assert.Nil(err)
	assert.Equal(1, n)
	assert.Equal(line+"\n", out.String())

	// a longer one is reported, not truncated.
	line = strings.Repeat("x", cfg.maxLine+1)
	_, err = run(strings.NewReader(line+"\n"), io.Discard, cfg)
	assert.ErrorIs(err, bufio.ErrTooLong)
}

func TestRunWriteError(t *testing.T) {
	assert := assert.New(t)

	n, err := run(strings.NewReader("b\na\n"), failWriter{}, getConfig(false))
	assert.ErrorIs(err, errWrite)
	assert.Equal(0, n)
}
