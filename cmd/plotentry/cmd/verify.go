package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ssargent/plotentry/pkg/codec"
	"github.com/ssargent/plotentry/pkg/metrics"
	"github.com/ssargent/plotentry/pkg/table"
	"github.com/ssargent/plotentry/pkg/tablefile"
)

var (
	errVerifyFailed = errors.New("verification failed")
	errNotSortable  = errors.New("record kind has no sort key")
)

// verifyOptions controls what verifyFile checks
type verifyOptions struct {
	Kind       table.Kind
	BufferSize int
	Sorted     bool // Require non-decreasing y
}

// verifyResult is the outcome of checking one table file
type verifyResult struct {
	Path      string
	Records   int64
	Invalid   int64 // Records failing Validate
	Unsorted  int64 // Records whose y is below their predecessor's
	Truncated bool
}

// OK reports whether the file passed every check
func (r verifyResult) OK() bool {
	return r.Invalid == 0 && r.Unsorted == 0 && !r.Truncated
}

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <file>...",
	Short: "Check every record of one or more table files",
	Long: `Decode every record of each file, checking field ranges, the absence of a
partial trailing record and, with --sorted, that y never decreases.

Files are checked concurrently, up to the configured number of workers.
If a metrics textfile is configured, counters are written there when the
run finishes.

Example:
  plotentry verify --kind t3 --sorted table3_*.tmp`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}
		kind, err := kindFlag(cmd)
		if err != nil {
			return err
		}
		sorted, _ := cmd.Flags().GetBool("sorted")

		m := metrics.NewMetrics()
		opts := verifyOptions{Kind: kind, BufferSize: rt.config.BufferSize, Sorted: sorted}
		results, err := verifyFiles(cmd.Context(), args, opts, rt.config.Workers, m, rt.logger)
		if err != nil {
			return err
		}

		if path := rt.config.Metrics.Textfile; path != "" {
			if err := m.WriteTextfile(path); err != nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}
			rt.logger.Debug("metrics written", "path", path)
		}

		return reportResults(cmd.OutOrStdout(), results)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	addKindFlag(verifyCmd)
	verifyCmd.Flags().Bool("sorted", false, "Also require records to be sorted by y")
}

// verifyFiles checks paths concurrently. Results keep the order of paths.
func verifyFiles(ctx context.Context, paths []string, opts verifyOptions, workers int, m *metrics.Metrics, logger *slog.Logger) ([]verifyResult, error) {
	results := make([]verifyResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res, err := verifyFile(ctx, path, opts, m)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			logger.Info("table verified",
				"path", path,
				"kind", opts.Kind.String(),
				"records", res.Records,
				"invalid", res.Invalid,
				"unsorted", res.Unsorted,
				"truncated", res.Truncated)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// verifyFile decodes every record of one file. A partial trailing record is
// reported in the result rather than as an error.
func verifyFile(ctx context.Context, path string, opts verifyOptions, m *metrics.Metrics) (verifyResult, error) {
	res := verifyResult{Path: path}
	if opts.Sorted {
		if _, ok := opts.Kind.New().(codec.Keyed); !ok {
			return res, fmt.Errorf("%w: %s", errNotSortable, opts.Kind)
		}
	}

	r, err := tablefile.NewReader(tablefile.ReaderConfig{
		FilePath:   path,
		Kind:       opts.Kind,
		BufferSize: opts.BufferSize,
	})
	if err != nil {
		return res, err
	}
	defer r.Close()

	var prev uint64
	for {
		if res.Records%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		rec, err := r.ReadNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, tablefile.ErrTruncated) {
			res.Truncated = true
			break
		}
		if err != nil {
			return res, err
		}

		m.RecordRead(opts.Kind)
		bad := false
		if v, ok := rec.(codec.Validator); ok && v.Validate() != nil {
			res.Invalid++
			bad = true
		}
		if opts.Sorted {
			y := codec.GetY(rec.(codec.Keyed))
			if res.Records > 0 && y < prev {
				res.Unsorted++
				bad = true
			}
			prev = y
		}
		if bad {
			m.RecordInvalid(opts.Kind)
		}
		res.Records++
	}

	m.FileDone(opts.Kind, res.Invalid+res.Unsorted > 0, res.Truncated)
	return res, nil
}

func reportResults(w io.Writer, results []verifyResult) error {
	failed := 0
	for _, res := range results {
		status := "ok"
		if !res.OK() {
			status = "FAIL"
			failed++
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\trecords=%d\tinvalid=%d\tunsorted=%d\ttruncated=%t\n",
			status, res.Path, res.Records, res.Invalid, res.Unsorted, res.Truncated); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", errVerifyFailed, failed, len(results))
	}
	return nil
}
