package asset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"backdrop/internal/scene"

	"github.com/schollz/progressbar/v3"
)

// Result is the single value delivered by a fetch
type Result struct {
	Object *scene.Object
	Err    error
}

// Fetcher loads a model asynchronously. The returned channel receives exactly
// one Result and is then closed.
type Fetcher interface {
	Fetch(ctx context.Context, source string) <-chan Result
}

// Loader fetches OBJ models from disk or over HTTP
type Loader struct {
	Client *http.Client

	// Progress, when set, receives a byte progress bar while the model streams in
	Progress io.Writer
}

// NewLoader creates a loader that reports progress to w (nil disables it)
func NewLoader(w io.Writer) *Loader {
	return &Loader{Client: http.DefaultClient, Progress: w}
}

// Fetch starts loading source in the background
func (l *Loader) Fetch(ctx context.Context, source string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		obj, err := l.Load(ctx, source)
		out <- Result{Object: obj, Err: err}
	}()
	return out
}

// Load reads and decodes source synchronously
func (l *Loader) Load(ctx context.Context, source string) (*scene.Object, error) {
	rc, size, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := l.readAll(rc, size, source)
	if err != nil {
		return nil, fmt.Errorf("could not read model %s: %w", source, err)
	}

	obj, err := DecodeOBJ(modelName(source), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode model %s: %w", source, err)
	}
	return obj, nil
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, int64, error) {
	if !isRemote(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, 0, fmt.Errorf("could not open model file: %w", err)
		}
		size := int64(-1)
		if info, err := f.Stat(); err == nil {
			size = info.Size()
		}
		return f, size, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("could not build request: %w", err)
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("could not fetch model: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("could not fetch model: %s", resp.Status)
	}
	return resp.Body, resp.ContentLength, nil
}

func (l *Loader) readAll(r io.Reader, size int64, source string) ([]byte, error) {
	var buf bytes.Buffer
	var w io.Writer = &buf

	if l.Progress != nil {
		if size <= 0 {
			size = -1
		}
		bar := progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(l.Progress),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetDescription("loading "+modelName(source)),
			progressbar.OptionSetRenderBlankState(true),
		)
		defer bar.Close()
		w = io.MultiWriter(&buf, bar)
	}

	if _, err := io.Copy(w, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func modelName(source string) string {
	base := path.Base(strings.ReplaceAll(source, "\\", "/"))
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
