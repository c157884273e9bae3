package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/Tianpingan/tinysql/internal/index"
	"github.com/Tianpingan/tinysql/internal/types"
	"github.com/Tianpingan/tinysql/lib/atomic"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// NewIndexCommand returns a cli.Command for "tinysql index".
func NewIndexCommand() *cli.Command {
	return &cli.Command{
		Name:  "index",
		Usage: "Load and scan an ordered index of values",
		Flags: []cli.Flag{
			typeFlag(),
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "path of the index. Overrides the configuration file.",
			},
		},
		Subcommands: []*cli.Command{
			newIndexLoadCommand(),
			newIndexScanCommand(),
			newIndexLookupCommand(),
		},
	}
}

// openIndex opens the index selected by the flags of the parent command.
func openIndex(c *cli.Context) (*index.Index, *env, error) {
	e, err := getEnv(c)
	if err != nil {
		return nil, nil, err
	}

	t, err := typeArg(c, "type")
	if err != nil {
		return nil, nil, err
	}

	path := e.cfg.Index.Path
	if c.IsSet("path") {
		path = c.String("path")
	}

	idx, err := index.Open(path, t, e.cfg.IndexOptions(e.log))
	if err != nil {
		return nil, nil, err
	}

	return idx, e, nil
}

// closeIndex closes idx and adds its error, if any, to *err.
func closeIndex(idx *index.Index, err *error) {
	*err = errors.CombineErrors(*err, idx.Close())
}

func newIndexLoadCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "load",
		Usage:     "Load values from the standard input",
		UsageText: `tinysql index -t type [-p path] load [--start id]`,
		Description: `The load command reads one literal per line from the standard input and adds
it to the index. Row ids are assigned in input order, starting at --start.
Empty lines and lines starting with -- are skipped.
Values are written in a single batch: if any line fails, nothing is added.

$ printf '3\n-1\n2\n' | tinysql index -t INTEGER -p my.idx load
loaded 3 values`,
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "start",
				Usage: "row id of the first value.",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "number of concurrent writers.",
				Value: 4,
			},
		},
	}

	cmd.Action = func(c *cli.Context) (err error) {
		idx, e, err := openIndex(c)
		if err != nil {
			return err
		}
		defer closeIndex(idx, &err)

		ids := atomic.NewCounter(c.Uint64("start"), math.MaxUint64)
		start := ids.Get()

		err = loadIndex(c.Context, idx, c.App.Reader, ids, c.Int("workers"), e.log)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(c.App.Writer, "loaded %d values\n", ids.Get()-start)
		return err
	}

	return &cmd
}

type indexEntry struct {
	line  string
	rowID uint64
	value types.Value
}

// loadIndex reads literals from r and adds them to idx.
// Lines are parsed by the given number of workers and collected in a single
// batch, committed only once every line has been parsed and set.
func loadIndex(ctx context.Context, idx *index.Index, r io.Reader, ids *atomic.Counter, workers int, log logrus.FieldLogger) (err error) {
	if workers < 1 {
		workers = 1
	}

	b := idx.NewBatch()
	defer func() {
		err = errors.CombineErrors(err, b.Close())
	}()

	g, ctx := errgroup.WithContext(ctx)
	lines := make(chan indexEntry)
	parsed := make(chan indexEntry)

	g.Go(func() error {
		defer close(lines)

		s := bufio.NewScanner(r)
		for s.Scan() {
			line := strings.TrimSpace(s.Text())
			if line == "" || strings.HasPrefix(line, "--") {
				continue
			}

			id, ok := ids.Incr()
			if !ok {
				return errors.New("no more row ids available")
			}

			select {
			case lines <- indexEntry{line: line, rowID: id}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return errors.WithStack(s.Err())
	})

	var parsers sync.WaitGroup
	for i := 0; i < workers; i++ {
		parsers.Add(1)
		g.Go(func() error {
			defer parsers.Done()

			for e := range lines {
				v, err := parseValue(e.line, idx.Type())
				if err != nil {
					return errors.Wrapf(err, "row %d", e.rowID)
				}
				e.value = v

				select {
				case parsed <- e:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		parsers.Wait()
		close(parsed)
		return nil
	})

	// a pebble batch is not safe for concurrent use, a single goroutine fills it.
	g.Go(func() error {
		for e := range parsed {
			if err := b.Set(e.value, e.rowID); err != nil {
				return errors.Wrapf(err, "row %d", e.rowID)
			}

			log.WithFields(logrus.Fields{"value": e.value, "row": e.rowID}).Trace("indexed")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	return b.Commit()
}

func newIndexScanCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "scan",
		Usage:     "Print the content of the index in ascending order",
		UsageText: `tinysql index -t type [-p path] scan [--from literal] [--limit n]`,
		Description: `The scan command prints one "value<TAB>row id" pair per line.

$ tinysql index -t INTEGER -p my.idx scan --from 0
2	2
3	0`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "from",
				Usage: "only print values greater than or equal to this literal.",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "maximum number of pairs to print. 0 means no limit.",
			},
		},
	}

	cmd.Action = func(c *cli.Context) (err error) {
		idx, _, err := openIndex(c)
		if err != nil {
			return err
		}
		defer closeIndex(idx, &err)

		var pivot types.Value
		if c.IsSet("from") {
			pivot, err = parseValue(c.String("from"), idx.Type())
			if err != nil {
				return errors.Wrap(err, "invalid --from")
			}
		}

		limit := c.Int("limit")
		var n int
		errLimit := errors.New("limit reached")

		err = idx.Iterate(pivot, func(v types.Value, rowID uint64) error {
			if limit > 0 && n >= limit {
				return errLimit
			}
			n++

			if err := c.Context.Err(); err != nil {
				return err
			}

			_, err := fmt.Fprintf(c.App.Writer, "%s\t%d\n", v, rowID)
			return err
		})
		if errors.Is(err, errLimit) {
			return nil
		}
		return err
	}

	return &cmd
}

func newIndexLookupCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "lookup",
		Usage:     "Print the row ids of a value",
		UsageText: `tinysql index -t type [-p path] lookup literal`,
	}

	cmd.Action = func(c *cli.Context) (err error) {
		if err := exactArgs(c, 1); err != nil {
			return err
		}

		idx, _, err := openIndex(c)
		if err != nil {
			return err
		}
		defer closeIndex(idx, &err)

		v, err := parseValue(c.Args().First(), idx.Type())
		if err != nil {
			return err
		}

		ids, err := idx.Lookup(v)
		if err != nil {
			return err
		}

		for _, id := range ids {
			if _, err := fmt.Fprintln(c.App.Writer, id); err != nil {
				return err
			}
		}
		return nil
	}

	return &cmd
}
