package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aglyzov/go-inftable/inftable"
	"github.com/aglyzov/go-inftable/inftable/zaptrace"
)

// LoadCommand fills a table with keys and reports on it.
type LoadCommand struct {
	Keys    []string
	Files   []string
	Deletes []string
	Prefix  string
	Paths   bool
	Dump    bool
	Verbose bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	logger *zap.Logger
	table  *inftable.Table[int]
}

func NewLoadCommand(stdin io.Reader, stdout, stderr io.Writer) *LoadCommand {
	return &LoadCommand{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
}

func (cmd *LoadCommand) Run() error {
	cmd.logger = zap.NewNop()
	if cmd.Verbose {
		cmd.logger = newLogger(cmd.Stderr)
	}
	defer cmd.logger.Sync() //nolint:errcheck

	cmd.table = inftable.New[int](inftable.WithTracer(zaptrace.New(cmd.logger)))

	for _, key := range cmd.Keys {
		cmd.add(key)
	}
	for _, name := range cmd.Files {
		if err := cmd.loadFile(name); err != nil {
			return err
		}
	}
	for _, key := range cmd.Deletes {
		if err := cmd.table.Delete(key); err != nil {
			fmt.Fprintf(cmd.Stderr, "skipping: %v\n", err)
		}
	}

	return cmd.report()
}

// add counts one occurrence of the key, reporting invalid keys instead of failing.
func (cmd *LoadCommand) add(key string) {
	count, _ := cmd.table.Get(key)
	if err := cmd.table.Insert(key, count+1); err != nil {
		fmt.Fprintf(cmd.Stderr, "skipping: %v\n", err)
	}
}

func (cmd *LoadCommand) loadFile(name string) error {
	var r io.Reader = cmd.Stdin

	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrapf(err, "opening %s", name)
		}
		defer f.Close()
		r = f
	}

	var (
		scanner = bufio.NewScanner(r)
		words   int
	)

	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		if word := normalize(scanner.Text()); word != "" {
			cmd.add(word)
			words++
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}

	cmd.logger.Info("loaded", zap.String("file", name), zap.Int("words", words), zap.Int("size", cmd.table.Size()))

	return nil
}

// normalize lowercases the word and drops everything outside 'a'..'z'.
func normalize(word string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, strings.ToLower(word))
}

func (cmd *LoadCommand) report() error {
	var items []inftable.Item[int]

	cmd.table.Iter(cmd.Prefix, func(item inftable.Item[int]) bool {
		items = append(items, item)
		return true
	})

	st := cmd.table.Stats()

	if _, err := fmt.Fprintf(cmd.Stdout, "size=%d nodes=%d depth=%d\n", cmd.table.Size(), st.Nodes, st.Depth); err != nil {
		return errors.Wrap(err, "writing summary")
	}

	if cmd.Paths {
		if err := cmd.writePaths(items); err != nil {
			return err
		}
	} else {
		for _, item := range items {
			if _, err := fmt.Fprintf(cmd.Stdout, "%s\t%d\n", item.Key, item.Val); err != nil {
				return errors.Wrapf(err, "writing key %s", item.Key)
			}
		}
	}

	if cmd.Dump {
		cmd.table.DebugDump(cmd.Stdout)
	}

	return nil
}

func (cmd *LoadCommand) writePaths(items []inftable.Item[int]) error {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.Stdout)

	// Don't uppercase the header values.
	t.Style().Format.Header = text.FormatDefault

	t.AppendHeader(table.Row{"key", "count", "path", "depth"})

	for _, item := range items {
		path, err := cmd.table.LocatePath(item.Key)
		if err != nil {
			return errors.Wrapf(err, "locating %s", item.Key)
		}
		t.AppendRow(table.Row{item.Key, item.Val, formatPath(path), len(path)})
	}
	t.Render()

	return nil
}

func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, idx := range path {
		if idx == inftable.TerminalSlot {
			parts[i] = "$"
		} else {
			parts[i] = fmt.Sprintf("%d(%c)", idx, 'a'+idx)
		}
	}
	return strings.Join(parts, " ")
}

func newLogger(w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}
