package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ssargent/plotentry/pkg/tablefile"
)

// statCmd represents the stat command
var statCmd = &cobra.Command{
	Use:   "stat <file>...",
	Short: "Report record counts of table files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}
		kind, err := kindFlag(cmd)
		if err != nil {
			return err
		}

		for _, path := range args {
			stats, err := tablefile.Stat(path, kind)
			if err != nil {
				return err
			}
			if stats.TrailingBytes != 0 {
				rt.logger.Warn("table file has a partial record", "path", path, "trailing_bytes", stats.TrailingBytes)
			}
			if err := printStats(cmd.OutOrStdout(), path, stats); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statCmd)
	addKindFlag(statCmd)
}

func printStats(w io.Writer, path string, stats tablefile.Stats) error {
	_, err := fmt.Fprintf(w, "%s\tkind=%s\trecord_size=%d\tsize=%d\trecords=%d\ttrailing=%d\n",
		path, stats.Kind, stats.Kind.DiskSize(), stats.Size, stats.Records, stats.TrailingBytes)
	return err
}
