package fetch

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// maxErrorBody bounds the amount of response body kept in status errors.
const maxErrorBody = 4e+6

type HTTPFetcher struct {
	client *http.Client
}

// StatusError is returned when the remote server answers with anything
// other than 200 OK.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return "unexpected response http status " + e.Status + ":\n" + string(e.Body)
}

// Get implements fetch.Fetcher.
func (f *HTTPFetcher) Get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if res.StatusCode != http.StatusOK {
		defer res.Body.Close()

		body, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return nil, errors.WithStack(&StatusError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       body,
		})
	}

	return res.Body, nil
}

func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPFetcher{
		client: client,
	}
}

var _ Fetcher = &HTTPFetcher{}
