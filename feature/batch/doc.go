// Package batch uploads the files of a local folder.
//
// Walk enumerates a directory tree lazily, keeping files whose lowercased
// extension passes a Filter (AllFiles, Images, ImagesAndVideo or any
// ExtensionFilter). Driver consumes that sequence and uploads each file through
// an Uploader (normally *objects.Service), one at a time.
//
// Each file moves through pending, uploading and then uploaded or failed. A
// failure is logged and reported in the Report; the remaining files are still
// attempted. There are no retries.
//
// # Usage
//
//	driver := batch.NewDriver(svc, afero.NewOsFs(), logger, nil)
//	report := driver.Run(ctx, "./images", batch.Options{
//	    WalkOptions: batch.WalkOptions{Filter: batch.Images, Recursive: true},
//	})
package batch
