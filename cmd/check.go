package cmd

import (
	"encoding/json"
	"fmt"

	"asset-uploader/feature/integrity"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check bucket reachability and the upload ledger",
	Long: `Verifies the bucket exists and reports the ledger state. With the ledger enabled,
it also lists recorded uploads missing from the bucket and objects the ledger never recorded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		db := rt.connectLedger()
		svc := integrity.NewService(rt.store, rt.cfg.Storage, rt.logger, db)

		bucket, bucketErr := svc.CheckBucket(cmd.Context())
		report := map[string]interface{}{
			"bucket": bucket,
			"ledger": svc.CheckLedger(cmd.Context()),
		}
		if db != nil && bucketErr == nil {
			if rec, err := svc.Reconcile(cmd.Context(), true); err != nil {
				report["reconcile"] = map[string]interface{}{"status": "error", "error": err.Error()}
			} else {
				report["reconcile"] = rec
			}
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return bucketErr
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
