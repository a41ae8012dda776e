package cmd

import (
	"fmt"
	"text/tabwriter"

	"asset-uploader/core/config"
	"asset-uploader/feature/ledger"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent uploads from the ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		db := rt.connectLedger()
		if db == nil {
			return fmt.Errorf("%w: the upload ledger is not available (set DATABASE_ENABLED=true)", config.ErrConfig)
		}

		records, err := ledger.NewRepository(db).Recent(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tSTATUS\tPATH\tKEY\tERROR")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.CreatedAt.Format("2006-01-02 15:04:05"), r.Status, r.LocalPath, r.ObjectKey, r.Error)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of records to show")
	RootCmd.AddCommand(historyCmd)
}
