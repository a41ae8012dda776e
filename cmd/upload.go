package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"asset-uploader/feature/batch"
	"asset-uploader/feature/objects"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var uploadPrivate bool

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <filePath>",
	Short: "Upload a single file",
	Long: `Uploads one local file under a timestamped key and prints its public URL.
Upload failures are logged; only a missing path or invalid configuration fails the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := requireArg(args, "please provide a file path to upload")
		if err != nil {
			return err
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		uploadFile(cmd.Context(), rt.objects(), afero.NewOsFs(), rt.logger, cmd.OutOrStdout(), path, uploadPrivate)
		return nil
	},
}

// uploadFile uploads one file and prints its URL. Failures are logged and it
// returns false.
func uploadFile(ctx context.Context, svc *objects.Service, fs afero.Fs, logger *zap.Logger, out io.Writer, path string, private bool) bool {
	info, err := fs.Stat(path)
	if err != nil {
		logger.Error("Error uploading file", zap.String("path", path), zap.Error(err))
		return false
	}
	if info.IsDir() {
		logger.Error("Error uploading file, path is a directory (use upload-folder)", zap.String("path", path))
		return false
	}

	name := filepath.Base(path)
	req := objects.UploadRequest{
		LocalPath:   path,
		DisplayName: name,
		MimeType:    batch.MimeType(name),
		SizeBytes:   info.Size(),
		IsPrivate:   private,
	}

	res, err := svc.Upload(ctx, req, objects.UploadOptions{Protected: private})
	if err != nil {
		logger.Error("Error uploading file", zap.String("path", path), zap.Error(err))
		return false
	}

	logger.Info("File uploaded successfully", zap.String("key", res.Key), zap.String("url", res.URL))
	fmt.Fprintln(out, res.URL)
	return true
}

func init() {
	uploadCmd.Flags().BoolVar(&uploadPrivate, "private", false, "Upload with a private ACL")
	RootCmd.AddCommand(uploadCmd)
}
