package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// DefaultConcurrency bounds simultaneous downloads.
const DefaultConcurrency = 6

var httpClient = &http.Client{Timeout: 10 * time.Second}

// Images is a disk + memory cache for remote header artwork. Decoded images
// are kept as image.Image; GPU upload is left to the draw thread.
type Images struct {
	cacheDir string
	client   *http.Client
	log      *slog.Logger

	mu     sync.RWMutex
	memory map[string]image.Image

	group singleflight.Group
	sem   *semaphore.Weighted
}

// NewImages creates a cache rooted at cacheDir.
func NewImages(cacheDir string, concurrency int64, log *slog.Logger) (*Images, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Images{
		cacheDir: cacheDir,
		client:   httpClient,
		log:      log,
		memory:   make(map[string]image.Image),
		sem:      semaphore.NewWeighted(concurrency),
	}, nil
}

// Get returns a cached image if available, or nil.
func (ic *Images) Get(url string) image.Image {
	ic.mu.RLock()
	defer ic.mu.RUnlock()
	return ic.memory[url]
}

// Fetch returns the image at url, downloading it at most once no matter how
// many callers ask concurrently.
func (ic *Images) Fetch(ctx context.Context, url string) (image.Image, error) {
	if img := ic.Get(url); img != nil {
		return img, nil
	}

	v, err, shared := ic.group.Do(url, func() (any, error) {
		// A caller that missed memory may arrive just after another download
		// finished.
		if img := ic.Get(url); img != nil {
			return img, nil
		}
		if err := ic.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer ic.sem.Release(1)

		img, err := ic.load(ctx, url)
		if err != nil {
			return nil, err
		}
		ic.mu.Lock()
		ic.memory[url] = img
		ic.mu.Unlock()
		return img, nil
	})
	if err != nil {
		ic.log.Warn("image load failed", "url", url, "err", err)
		return nil, err
	}
	if shared {
		ic.log.Debug("image load shared", "url", url)
	}
	return v.(image.Image), nil
}

// LoadAsync fetches url in the background. The callback runs on the loading
// goroutine; callers hand the result back to the draw thread themselves.
func (ic *Images) LoadAsync(url string, callback func(image.Image, error)) {
	if img := ic.Get(url); img != nil {
		callback(img, nil)
		return
	}
	go func() {
		callback(ic.Fetch(context.Background(), url))
	}()
}

func (ic *Images) load(ctx context.Context, url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	if f, err := os.Open(diskPath); err == nil {
		img, _, err := image.Decode(f)
		f.Close()
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := ic.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	img, _, err := image.Decode(io.TeeReader(resp.Body, f))
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}
	return img, nil
}

func (ic *Images) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *Images) CacheDir() string {
	return ic.cacheDir
}

// Clear drops the in-memory images. Disk entries stay.
func (ic *Images) Clear() {
	ic.mu.Lock()
	ic.memory = make(map[string]image.Image)
	ic.mu.Unlock()
}

// ClearDisk removes all cached images from disk.
func (ic *Images) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
