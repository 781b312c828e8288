package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/xgzlucario/dynarray"
	"github.com/xgzlucario/dynarray/bcmp"
	"github.com/xgzlucario/dynarray/option"
)

var (
	reverse  = flag.Bool("r", false, "sort in descending order")
	capacity = flag.Int("cap", option.DefaultOption.InitialCapacity, "initial capacity")
	verbose  = flag.Bool("v", false, "log growth events")
	maxLine  = flag.Int("maxline", 1<<20, "longest accepted input line in bytes")
)

// config of a single run.
type config struct {
	reverse bool
	maxLine int
	opt     *option.Option
}

// sorts stdin lines in byte order.
func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	n, err := run(os.Stdin, os.Stdout, config{
		reverse: *reverse,
		maxLine: *maxLine,
		opt: &option.Option{
			InitialCapacity: *capacity,
			Logger:          logger,
		},
	})
	if err != nil {
		logger.Error("sort lines", "err", err)
		os.Exit(1)
	}
	logger.Info("sorted", "lines", n)
}

// run reads lines from r, sorts them and writes them to w.
func run(r io.Reader, w io.Writer, cfg config) (int, error) {
	lines := dynarray.NewWithOption[[]byte](cfg.opt)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, cfg.maxLine)
	for scanner.Scan() {
		// Bytes is reused by the scanner.
		lines.Append([]byte(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("read: %w", err)
	}

	order := bcmp.FromComparer(comparer.DefaultComparer)
	if cfg.reverse {
		order = bcmp.Reverse(order)
	}
	lines.Sort(order)

	// bufio.Writer keeps the first error, Flush reports it.
	bw := bufio.NewWriter(w)
	for _, line := range lines.Items() {
		bw.Write(line)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("write: %w", err)
	}
	return lines.Len(), nil
}
