package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/KevoDB/seqview/pkg/common/cursor"
	"github.com/KevoDB/seqview/pkg/common/cursor/bounded"
	"github.com/KevoDB/seqview/pkg/common/cursor/composite"
	"github.com/KevoDB/seqview/pkg/common/cursor/filtered"
	"github.com/KevoDB/seqview/pkg/common/cursor/reversed"
	"github.com/KevoDB/seqview/pkg/common/cursor/traced"
	"github.com/KevoDB/seqview/pkg/common/log"
	"github.com/KevoDB/seqview/pkg/config"
	"github.com/KevoDB/seqview/pkg/digest"
	"github.com/KevoDB/seqview/pkg/stats"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrUnknownVariable = errors.New("unknown variable")
	ErrBadPredicate    = errors.New("bad predicate")
	ErrBadArgs         = errors.New("bad arguments")

	// errExit is returned by .exit to stop the command loop
	errExit = errors.New("exit")
)

// source is the sequence every command builds its views from: a named
// slice wrapped so that cursor movement shows up in debug logs
type source = traced.View[cursor.Slice[int], cursor.SliceCursor[int], *int]

// shell holds the named slices and executes commands against them
type shell struct {
	vars       map[string][]int
	out        io.Writer
	logger     log.Logger
	cfg        *config.Config
	configPath string
	stats      *stats.AtomicCollector
}

func newShell(cfg *config.Config, configPath string, out io.Writer, logger log.Logger) *shell {
	return &shell{
		vars:       make(map[string][]int),
		out:        out,
		logger:     logger,
		cfg:        cfg,
		configPath: configPath,
		stats:      stats.NewAtomicCollector(),
	}
}

// exec runs a single command line
func (sh *shell) exec(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	start := time.Now()
	err := sh.dispatch(parts)
	sh.stats.TrackOperationWithLatency(stats.OpCommand, uint64(time.Since(start).Nanoseconds()))
	if err != nil && !errors.Is(err, errExit) {
		sh.stats.TrackError(errorType(err))
	}
	return err
}

// errorType names err for the error counters
func errorType(err error) string {
	for _, sentinel := range []error{ErrUnknownCommand, ErrUnknownVariable, ErrBadPredicate, ErrBadArgs} {
		if errors.Is(err, sentinel) {
			return strings.ReplaceAll(sentinel.Error(), " ", "_")
		}
	}
	return "other"
}

func (sh *shell) dispatch(parts []string) error {
	cmd := strings.ToUpper(parts[0])
	args := parts[1:]
	sh.logger.Debug("exec %s %v", cmd, args)

	if strings.HasPrefix(cmd, ".") {
		return sh.execDot(strings.ToLower(cmd), args)
	}

	switch cmd {
	case "LET":
		return sh.let(args)
	case "SHOW":
		if len(args) != 1 {
			return fmt.Errorf("%w: SHOW requires a name", ErrBadArgs)
		}
		src, err := sh.source(args[0])
		if err != nil {
			return err
		}
		show(sh, src, digest.Pointee[int])
	case "FILTER", "TAKEWHILE":
		if len(args) != 2 {
			return fmt.Errorf("%w: %s requires a predicate and a name", ErrBadArgs, cmd)
		}
		pred, err := parsePredicate(args[0])
		if err != nil {
			return err
		}
		src, err := sh.source(args[1])
		if err != nil {
			return err
		}
		if cmd == "FILTER" {
			show(sh, filtered.Filter(pred, src), digest.Pointee[int])
		} else {
			show(sh, bounded.TakeWhile(pred, src), digest.Pointee[int])
		}
	case "CHAIN":
		srcs, err := sh.sources(args)
		if err != nil {
			return err
		}
		show(sh, composite.Chain(srcs...), digest.Pointee[int])
	case "ZIP":
		return sh.zip(args)
	case "REVERSE":
		if len(args) != 1 {
			return fmt.Errorf("%w: REVERSE requires a name", ErrBadArgs)
		}
		src, err := sh.source(args[0])
		if err != nil {
			return err
		}
		show(sh, reversed.Reverse(src), digest.Pointee[int])
	case "RFILTER":
		if len(args) < 2 {
			return fmt.Errorf("%w: RFILTER requires a predicate and at least one name", ErrBadArgs)
		}
		pred, err := parsePredicate(args[0])
		if err != nil {
			return err
		}
		srcs, err := sh.sources(args[1:])
		if err != nil {
			return err
		}
		show(sh, reversed.Reverse(filtered.Filter(pred, composite.Chain(srcs...))), digest.Pointee[int])
	case "ASSIGN":
		return sh.assign(args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
	}

	return nil
}

func (sh *shell) execDot(cmd string, args []string) error {
	switch cmd {
	case ".help":
		fmt.Fprint(sh.out, helpText)
	case ".exit":
		return errExit
	case ".level":
		if len(args) != 1 {
			return fmt.Errorf("%w: .level requires a level name", ErrBadArgs)
		}
		level, err := log.ParseLevel(args[0])
		if err != nil {
			return err
		}
		sh.logger.SetLevel(level)
		sh.cfg.Update(func(c *config.Config) {
			c.LogLevel = strings.ToLower(args[0])
		})
		fmt.Fprintf(sh.out, "Log level set to %s\n", level)
	case ".digest":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return fmt.Errorf("%w: .digest takes on or off", ErrBadArgs)
		}
		sh.cfg.Update(func(c *config.Config) {
			c.ShowDigest = args[0] == "on"
		})
		fmt.Fprintf(sh.out, "Digest %s\n", args[0])
	case ".save":
		path := sh.configPath
		if path == "" {
			path = config.DefaultConfigFileName
		}
		if err := sh.cfg.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "Configuration saved to %s\n", path)
	case ".stats":
		sh.printStats()
		if len(args) == 1 && strings.ToLower(args[0]) == "reset" {
			sh.stats.Reset()
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	return nil
}

// let defines or replaces a named slice
func (sh *shell) let(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: LET requires a name", ErrBadArgs)
	}

	values := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", ErrBadArgs, arg)
		}
		values = append(values, v)
	}

	sh.vars[args[0]] = values
	fmt.Fprintf(sh.out, "%s: %d elements\n", args[0], len(values))
	return nil
}

func (sh *shell) zip(args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return fmt.Errorf("%w: ZIP requires two or three names", ErrBadArgs)
	}
	srcs, err := sh.sources(args)
	if err != nil {
		return err
	}

	if len(srcs) == 2 {
		show(sh, composite.Zip2(srcs[0], srcs[1]), func(t composite.Tuple2[*int, *int]) string {
			return fmt.Sprintf("(%d,%d)", *t.V0, *t.V1)
		})
		return nil
	}
	show(sh, composite.Zip3(srcs[0], srcs[1], srcs[2]), func(t composite.Tuple3[*int, *int, *int]) string {
		return fmt.Sprintf("(%d,%d,%d)", *t.V0, *t.V1, *t.V2)
	})
	return nil
}

// assign writes a value through a cursor of a reverse or filter view and
// shows the underlying slice afterwards
func (sh *shell) assign(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: ASSIGN requires REVERSE or FILTER", ErrBadArgs)
	}

	var (
		target *int
		name   string
	)
	switch strings.ToUpper(args[0]) {
	case "REVERSE":
		if len(args) != 4 {
			return fmt.Errorf("%w: ASSIGN REVERSE requires name, position and value", ErrBadArgs)
		}
		name = args[1]
		src, err := sh.source(name)
		if err != nil {
			return err
		}
		target, err = at(reversed.Reverse(src), args[2])
		if err != nil {
			return err
		}
	case "FILTER":
		if len(args) != 5 {
			return fmt.Errorf("%w: ASSIGN FILTER requires predicate, name, position and value", ErrBadArgs)
		}
		pred, err := parsePredicate(args[1])
		if err != nil {
			return err
		}
		name = args[2]
		src, err := sh.source(name)
		if err != nil {
			return err
		}
		target, err = at(filtered.Filter(pred, src), args[3])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: ASSIGN %s", ErrUnknownCommand, args[0])
	}

	value, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", ErrBadArgs, args[len(args)-1])
	}
	*target = value

	src, _ := sh.source(name)
	show(sh, src, digest.Pointee[int])
	return nil
}

// at returns the element at the given position of seq
func at[S cursor.Sequence[C, *int], C cursor.Cursor[C, *int]](seq S, pos string) (*int, error) {
	n, err := strconv.Atoi(pos)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: bad position %q", ErrBadArgs, pos)
	}
	c, ok := cursor.Nth(seq, n)
	if !ok {
		return nil, fmt.Errorf("%w: position %d out of range", ErrBadArgs, n)
	}
	return c.Deref(), nil
}

func (sh *shell) source(name string) (source, error) {
	xs, ok := sh.vars[name]
	if !ok {
		return source{}, fmt.Errorf("%w: %s", ErrUnknownVariable, name)
	}
	return traced.Trace(sh.logger, name, cursor.Of(xs)).WithStats(sh.stats), nil
}

func (sh *shell) sources(names []string) ([]source, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: at least one name is required", ErrBadArgs)
	}
	srcs := make([]source, 0, len(names))
	for _, name := range names {
		src, err := sh.source(name)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, src)
	}
	return srcs, nil
}

// show prints one traversal of seq, honoring the configured print limit,
// followed by the element count and optionally the digest of a second
// traversal
func show[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any](sh *shell, seq S, format func(R) string) {
	limit, withDigest := sh.cfg.MaxPrint, sh.cfg.ShowDigest

	var b strings.Builder
	b.WriteByte('[')
	count := 0
	start := time.Now()
	for r := range cursor.All(seq) {
		if limit == 0 || count < limit {
			if count > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(format(r))
		} else if count == limit {
			b.WriteString(" ...")
		}
		count++
	}
	b.WriteByte(']')
	sh.stats.TrackOperationWithLatency(stats.OpTraversal, uint64(time.Since(start).Nanoseconds()))
	sh.stats.TrackElements(uint64(count))

	fmt.Fprintln(sh.out, b.String())
	fmt.Fprintf(sh.out, "%d elements\n", count)
	if withDigest {
		fmt.Fprintf(sh.out, "digest: %s\n", digest.String(digest.Sum64(seq, format)))
	}
}

// parsePredicate maps a predicate token to a predicate over the shell's
// integer slices
func parsePredicate(tok string) (func(*int) bool, error) {
	var pred func(int) bool
	switch tok {
	case "even":
		pred = func(n int) bool { return n%2 == 0 }
	case "odd":
		pred = func(n int) bool { return n%2 != 0 }
	case "pos":
		pred = func(n int) bool { return n > 0 }
	case "neg":
		pred = func(n int) bool { return n < 0 }
	case "nonzero":
		pred = func(n int) bool { return n != 0 }
	default:
		if len(tok) < 2 || (tok[0] != '<' && tok[0] != '>') {
			return nil, fmt.Errorf("%w: %q", ErrBadPredicate, tok)
		}
		bound, err := strconv.Atoi(tok[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPredicate, tok)
		}
		if tok[0] == '<' {
			pred = func(n int) bool { return n < bound }
		} else {
			pred = func(n int) bool { return n > bound }
		}
	}
	return cursor.ByValue(pred), nil
}

// printStats writes the cursor and command counters
func (sh *shell) printStats() {
	fmt.Fprintln(sh.out, "Cursors:")
	for _, op := range []stats.OperationType{stats.OpBegin, stats.OpNext, stats.OpPrev} {
		fmt.Fprintf(sh.out, "  • %s: %d\n", op, sh.stats.Count(op))
	}

	all := sh.stats.GetStats()
	fmt.Fprintln(sh.out, "Traversals:")
	fmt.Fprintf(sh.out, "  • count: %d\n", sh.stats.Count(stats.OpTraversal))
	fmt.Fprintf(sh.out, "  • elements: %d\n", all["elements"])
	if latency, ok := all["traversal_latency"].(map[string]any); ok {
		fmt.Fprintf(sh.out, "  • avg: %.3f ms\n", float64(latency["avg_ns"].(uint64))/1e6)
	}

	fmt.Fprintln(sh.out, "Errors:")
	errs := all["errors"].(map[string]uint64)
	for _, kind := range slices.Sorted(maps.Keys(errs)) {
		fmt.Fprintf(sh.out, "  • %s: %d\n", kind, errs[kind])
	}
}
