package batch

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Filter decides whether a file, identified by its lowercased extension
// (including the leading dot), takes part in a batch.
type Filter func(ext string) bool

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".bmp"}

var videoExtensions = []string{".mp4"}

// ExtensionFilter accepts files whose extension is in exts. Case is ignored and
// the leading dot is optional.
func ExtensionFilter(exts ...string) Filter {
	allowed := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = struct{}{}
	}
	return func(ext string) bool {
		_, ok := allowed[ext]
		return ok
	}
}

// AllFiles accepts every file.
func AllFiles(string) bool { return true }

// Images accepts common image formats.
var Images = ExtensionFilter(imageExtensions...)

// ImagesAndVideo accepts images plus mp4 video.
var ImagesAndVideo = ExtensionFilter(append(append([]string{}, imageExtensions...), videoExtensions...)...)

// FilterByName resolves a filter from its command-line name.
func FilterByName(name string) (Filter, error) {
	switch strings.ToLower(name) {
	case "", "all":
		return AllFiles, nil
	case "images":
		return Images, nil
	case "media":
		return ImagesAndVideo, nil
	default:
		return nil, fmt.Errorf("unknown filter %q (want all, images or media)", name)
	}
}

// MimeType infers the content type stored for a batch upload:
// video/mp4 for .mp4, image/{ext} for image files, otherwise the system
// table, falling back to application/octet-stream.
func MimeType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case ext == ".mp4":
		return "video/mp4"
	case Images(ext):
		return "image/" + strings.TrimPrefix(ext, ".")
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
