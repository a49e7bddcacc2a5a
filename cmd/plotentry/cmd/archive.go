package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/plotentry/pkg/storage"
	"github.com/ssargent/plotentry/pkg/tablefile"
)

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Keep selected table records in a pebble archive",
	Long: `Copy records out of table files into a pebble archive, each under its own
ksuid, and read them back later.

Examples:
  plotentry archive import --kind t1 --start 10 --limit 5 table1.tmp
  plotentry archive get 2Kq8xTzYc3pXw1pN4mJm6rWcD0f`,
}

var archiveImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Copy records from a table file into the archive",
	Args:  cobra.ExactArgs(1),
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

		a, err := storage.NewArchive(archivePath(cmd, rt))
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer a.Close()

		ids, err := importTable(a, tablefile.ReaderConfig{
			FilePath:    args[0],
			Kind:        kind,
			BufferSize:  rt.config.BufferSize,
			StartRecord: start,
		}, limit)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
		}
		rt.logger.Info("records archived", "path", args[0], "kind", kind.String(), "records", len(ids))
		return nil
	},
}

var archiveGetCmd = &cobra.Command{
	Use:   "get <id>...",
	Short: "Print archived records",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		a, err := storage.NewArchive(archivePath(cmd, rt))
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer a.Close()

		for _, arg := range args {
			id, err := ksuid.Parse(arg)
			if err != nil {
				return fmt.Errorf("invalid record id %q: %w", arg, err)
			}
			kind, rec, err := a.Get(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", id, kind, formatRecord(rec))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archiveImportCmd, archiveGetCmd)
	archiveCmd.PersistentFlags().String("db", "", "Archive directory (default <data_dir>/archive)")

	addKindFlag(archiveImportCmd)
	archiveImportCmd.Flags().Int64("start", 0, "Index of the first record to copy")
	archiveImportCmd.Flags().Int64("limit", 0, "Maximum number of records to copy (0 = all)")
}

func archivePath(cmd *cobra.Command, rt *session) string {
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		return path
	}
	return filepath.Join(rt.config.DataDir, "archive")
}

// importTable copies up to limit records into a and returns their ids in
// file order
func importTable(a *storage.Archive, config tablefile.ReaderConfig, limit int64) ([]ksuid.KSUID, error) {
	r, err := tablefile.NewReader(config)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var ids []ksuid.KSUID
	it := r.Iterator()
	for (limit <= 0 || int64(len(ids)) < limit) && it.Next() {
		id, err := a.Put(config.Kind, it.Record())
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	if err := it.Err(); err != nil {
		return ids, err
	}
	return ids, a.Flush()
}
