package tabular

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Opener opens locations on local disk, in Google Cloud Storage (gs://bucket/object), or on the web (http[s]://).
type Opener struct {
	// Anonymous skips credential lookup when talking to Google Cloud Storage, which is enough for public buckets.
	Anonymous bool
	// HTTPClient is used for http and https locations. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
}

// Ext returns the lower-case file extension of a location without the leading dot.
func Ext(location string) string {
	p := location
	if u, err := url.Parse(location); err == nil && u.Path != "" {
		p = u.Path
	}
	return strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
}

func (o Opener) storageClient(ctx context.Context) (*storage.Client, error) {
	var opts []option.ClientOption
	if o.Anonymous {
		opts = append(opts, option.WithoutAuthentication())
	}
	return storage.NewClient(ctx, opts...)
}

// gsReadCloser closes the storage client along with the object reader.
type gsReadCloser struct {
	*storage.Reader
	client *storage.Client
}

func (r gsReadCloser) Close() error {
	err := r.Reader.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// gsWriteCloser closes the storage client after the object writer is flushed.
type gsWriteCloser struct {
	*storage.Writer
	client *storage.Client
}

func (w gsWriteCloser) Close() error {
	err := w.Writer.Close()
	if cerr := w.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// Open returns a reader for the given location.
func (o Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "gs":
		client, err := o.storageClient(ctx)
		if err != nil {
			return nil, err
		}
		obj := client.Bucket(u.Host).Object(strings.Trim(u.Path, "/"))
		r, err := obj.NewReader(ctx)
		if err != nil {
			client.Close()
			return nil, err
		}
		return gsReadCloser{Reader: r, client: client}, nil

	case "http", "https":
		client := o.HTTPClient
		if client == nil {
			client = http.DefaultClient
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to do request: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status getting '%s': %s", location, resp.Status)
		}
		return resp.Body, nil

	case "file":
		fallthrough
	case "":
		return os.Open(u.Path)

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", location)
	}
}

// Create returns a writer for the given location. Web locations cannot be written.
func (o Opener) Create(ctx context.Context, location string) (io.WriteCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "gs":
		client, err := o.storageClient(ctx)
		if err != nil {
			return nil, err
		}
		obj := client.Bucket(u.Host).Object(strings.Trim(u.Path, "/"))
		return gsWriteCloser{Writer: obj.NewWriter(ctx), client: client}, nil

	case "file":
		fallthrough
	case "":
		return os.Create(u.Path)

	default:
		return nil, fmt.Errorf("unable to determine how to create '%s'", location)
	}
}
