package cmd

import (
	"fmt"
	"io"
	"os"

	"asset-uploader/feature/objects"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var downloadOutput string

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete an object (best effort)",
	Long:  `Removes an object from the bucket. Failures are logged and never change the exit status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := requireArg(args, "please provide an object key to delete")
		if err != nil {
			return err
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		res := rt.objects().Delete(cmd.Context(), objects.ObjectRef{Key: key})
		if res.OK() {
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", res.Key)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Could not delete %s: %v\n", res.Key, res.Err)
		}
		return nil
	},
}

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download <key>",
	Short: "Download an object",
	Long:  `Streams an object to a local file (-o) or to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := requireArg(args, "please provide an object key to download")
		if err != nil {
			return err
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		body, err := rt.objects().GetDownloadStream(cmd.Context(), objects.ObjectRef{Key: key})
		if err != nil {
			return err
		}
		defer body.Close()

		var dst io.Writer = cmd.OutOrStdout()
		if downloadOutput != "" {
			f, err := afero.NewOsFs().OpenFile(downloadOutput, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", downloadOutput, err)
			}
			defer f.Close()
			dst = f
		}

		n, err := io.Copy(dst, body)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", objects.ErrDownload, key, err)
		}
		rt.logger.Debug("Object downloaded", zap.String("key", key), zap.Int64("bytes", n))
		return nil
	},
}

// presignCmd represents the presign command
var presignCmd = &cobra.Command{
	Use:   "presign <key>",
	Short: "Print a presigned download URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := requireArg(args, "please provide an object key to presign")
		if err != nil {
			return err
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		u, err := rt.objects().GetPresignedDownloadURL(cmd.Context(), objects.ObjectRef{Key: key})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "", "Write to this file instead of stdout")

	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(downloadCmd)
	RootCmd.AddCommand(presignCmd)
}
