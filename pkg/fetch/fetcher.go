package fetch

import (
	"context"
	"io"
)

// Fetcher retrieves the body of a remote resource. The caller must close
// the returned reader.
type Fetcher interface {
	Get(ctx context.Context, url string) (io.ReadCloser, error)
}
