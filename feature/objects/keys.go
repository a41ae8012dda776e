package objects

import (
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// keyClock issues strictly increasing millisecond timestamps.
// When the wall clock has not moved past the last stamp, the last stamp + 1 is used,
// so keys generated by one process never share a timestamp.
type keyClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func newKeyClock(now func() time.Time) *keyClock {
	if now == nil {
		now = time.Now
	}
	return &keyClock{now: now}
}

func (c *keyClock) next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := c.now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms
	return ms
}

// splitName returns the base name and extension (with dot) of a file name.
func splitName(name string) (string, string) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext), ext
}

// uploadKey builds {prefix}{base}-{stamp}{ext}.
func uploadKey(prefix, name string, stamp int64) string {
	base, ext := splitName(name)
	return prefix + base + "-" + strconv.FormatInt(stamp, 10) + ext
}

// streamKey builds {prefix}{name}.{ext}.
func streamKey(prefix, name, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return prefix + name
	}
	return prefix + name + "." + ext
}
