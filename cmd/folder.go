package cmd

import (
	"fmt"
	"io"

	"asset-uploader/core/config"
	"asset-uploader/feature/batch"
	"asset-uploader/feature/ledger"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	folderFilter    string
	folderRecursive bool
	folderPrivate   bool
)

// uploadFolderCmd represents the upload-folder command
var uploadFolderCmd = &cobra.Command{
	Use:   "upload-folder <folderPath>",
	Short: "Upload every matching file of a folder",
	Long: `Walks a folder and uploads the selected files one after another.
A failing file is reported and the batch continues. The command exits 0 once the batch completes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := batch.FilterByName(folderFilter)
		if err != nil {
			return fmt.Errorf("%w: %w", config.ErrConfig, err)
		}
		return runFolderUpload(cmd, args, filter, folderRecursive, folderPrivate)
	},
}

// uploadImagesCmd represents the upload-images command
var uploadImagesCmd = &cobra.Command{
	Use:   "upload-images <folderPath>",
	Short: "Upload all images of a folder tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFolderUpload(cmd, args, batch.Images, true, false)
	},
}

// uploadMediaCmd represents the upload-media command
var uploadMediaCmd = &cobra.Command{
	Use:   "upload-media <folderPath>",
	Short: "Upload all images and mp4 videos of a folder tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFolderUpload(cmd, args, batch.ImagesAndVideo, true, false)
	},
}

func runFolderUpload(cmd *cobra.Command, args []string, filter batch.Filter, recursive, private bool) error {
	root, err := requireArg(args, "please provide a folder path to upload")
	if err != nil {
		return err
	}

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.close()

	var recorder batch.Recorder
	if db := rt.connectLedger(); db != nil {
		recorder = ledger.NewRepository(db)
	}

	out := cmd.OutOrStdout()
	driver := batch.NewDriver(rt.objects(), afero.NewOsFs(), rt.logger, recorder)
	report := driver.Run(cmd.Context(), root, batch.Options{
		WalkOptions: batch.WalkOptions{Filter: filter, Recursive: recursive},
		Protected:   private,
		OnResult:    func(r batch.FileResult) { printResult(out, r) },
	})

	rt.logger.Info("Batch finished",
		zap.String("folder", root),
		zap.Int("uploaded", report.Uploaded),
		zap.Int("failed", report.Failed),
		zap.Bool("canceled", report.Canceled),
	)
	fmt.Fprintf(out, "\nUploaded: %d  Failed: %d\n", report.Uploaded, report.Failed)
	if report.Canceled {
		fmt.Fprintln(out, "Batch canceled before all files were processed.")
	}
	return nil
}

func printResult(w io.Writer, r batch.FileResult) {
	if r.State == batch.StateUploaded {
		fmt.Fprintf(w, "[OK]   %s -> %s\n", r.Path, r.URL)
		return
	}
	fmt.Fprintf(w, "[FAIL] %s: %v\n", r.Path, r.Err)
}

func init() {
	uploadFolderCmd.Flags().StringVar(&folderFilter, "filter", "all", "File filter: all, images or media")
	uploadFolderCmd.Flags().BoolVar(&folderRecursive, "recursive", true, "Descend into subfolders")
	uploadFolderCmd.Flags().BoolVar(&folderPrivate, "private", false, "Upload with a private ACL")

	RootCmd.AddCommand(uploadFolderCmd)
	RootCmd.AddCommand(uploadImagesCmd)
	RootCmd.AddCommand(uploadMediaCmd)
}
