package cmd

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ssargent/plotentry/pkg/codec"
	"github.com/ssargent/plotentry/pkg/phase1"
	"github.com/ssargent/plotentry/pkg/phase2"
	"github.com/ssargent/plotentry/pkg/tablefile"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print the records of a table file",
	Long: `Print the records of a table file, one per line.

Example:
  plotentry dump --kind t2 --start 100 --limit 10 table2.tmp`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}
		kind, err := kindFlag(cmd)
		if err != nil {
			return err
		}
		start, _ := cmd.Flags().GetInt64("start")
		limit, _ := cmd.Flags().GetInt64("limit")

		n, err := dumpTable(cmd.OutOrStdout(), tablefile.ReaderConfig{
			FilePath:    args[0],
			Kind:        kind,
			BufferSize:  rt.config.BufferSize,
			StartRecord: start,
		}, limit)
		if err != nil {
			return err
		}
		rt.logger.Debug("dump finished", "path", args[0], "kind", kind.String(), "records", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	addKindFlag(dumpCmd)
	dumpCmd.Flags().Int64("start", 0, "Index of the first record to print")
	dumpCmd.Flags().Int64("limit", 0, "Maximum number of records to print (0 = all)")
}

// dumpTable prints up to limit records and returns how many were printed
func dumpTable(w io.Writer, config tablefile.ReaderConfig, limit int64) (int64, error) {
	r, err := tablefile.NewReader(config)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	var n int64
	it := r.Iterator()
	for (limit <= 0 || n < limit) && it.Next() {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", r.Index()-1, formatRecord(it.Record())); err != nil {
			return n, err
		}
		n++
	}
	return n, it.Err()
}

// formatRecord renders the fields of any record kind on one line
func formatRecord(rec codec.Record) string {
	switch e := rec.(type) {
	case *phase1.Entry1:
		return fmt.Sprintf("y=%d x=%d meta=%s", e.Y, e.X, hex.EncodeToString(codec.AppendMeta(nil, e)))
	case *phase1.EntryMeta2:
		return formatMetaEntry(&e.Entry, e)
	case *phase1.EntryMeta3:
		return formatMetaEntry(&e.Entry, e)
	case *phase1.EntryMeta4:
		return formatMetaEntry(&e.Entry, e)
	case *phase1.Entry7:
		return fmt.Sprintf("y=%d pos=%d off=%d", e.Y, e.Pos, e.Off)
	case *phase1.TmpEntry1:
		return fmt.Sprintf("x=%d", e.X)
	case *phase1.TmpEntry:
		return fmt.Sprintf("pos=%d off=%d", e.Pos, e.Off)
	case *phase2.Entry:
		return fmt.Sprintf("key=%d pos=%d off=%d", e.Key, e.Pos, e.Off)
	}
	return fmt.Sprintf("%+v", rec)
}

func formatMetaEntry(e *phase1.Entry, meta codec.MetaGetter) string {
	return fmt.Sprintf("y=%d pos=%d off=%d meta=%s", e.Y, e.Pos, e.Off, hex.EncodeToString(codec.AppendMeta(nil, meta)))
}
