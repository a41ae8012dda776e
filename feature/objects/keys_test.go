package objects

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyClock_Monotonic(t *testing.T) {
	clock := newKeyClock(fixedClock)

	first := clock.next()
	second := clock.next()
	assert.Equal(t, first+1, second)
}

func TestKeyClock_FollowsWallClock(t *testing.T) {
	now := time.UnixMilli(1000)
	clock := newKeyClock(func() time.Time { return now })

	assert.Equal(t, int64(1000), clock.next())
	now = time.UnixMilli(5000)
	assert.Equal(t, int64(5000), clock.next())
}

func TestKeyClock_ConcurrentCallersNeverCollide(t *testing.T) {
	clock := newKeyClock(fixedClock)

	var (
		mu    sync.Mutex
		seen  = make(map[int64]struct{})
		wg    sync.WaitGroup
		total = 200
	)
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stamp := clock.next()
			mu.Lock()
			seen[stamp] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, total)
}

func TestUploadKey(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		file   string
		want   string
	}{
		{"Simple", "", "a.png", "a-42.png"},
		{"WithPrefix", "img/", "a.png", "img/a-42.png"},
		{"NestedPath", "", "/images/sub/c.jpg", "c-42.jpg"},
		{"NoExtension", "", "README", "README-42"},
		{"DottedName", "", "archive.tar.gz", "archive.tar-42.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uploadKey(tt.prefix, tt.file, 42))
		})
	}
}

func TestStreamKey(t *testing.T) {
	assert.Equal(t, "p/report.pdf", streamKey("p/", "report", "pdf"))
	assert.Equal(t, "p/report.pdf", streamKey("p/", "report", ".pdf"))
	assert.Equal(t, "report", streamKey("", "report", ""))
}
