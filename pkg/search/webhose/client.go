package webhose

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/bornholm/rango/pkg/fetch"
	"github.com/bornholm/rango/pkg/search"
	"github.com/pkg/errors"
)

// Client implements the search.Client interface using the Webhose search API.
type Client struct {
	endpoint  string
	keyFile   string
	fetcher   fetch.Fetcher
	onFailure FailureHandlerFunc
}

// Search implements search.Client.
//
// Credential errors are returned to the caller. Any failure of the query
// itself is logged, reported to the failure handler and turned into an
// empty result list, so an empty list means either no match or no answer.
func (c *Client) Search(ctx context.Context, terms string, size int) ([]search.Result, error) {
	if size <= 0 {
		size = search.DefaultSize
	}

	key, err := LoadAPIKey(c.keyFile)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if key == "" {
		return nil, errors.Wrapf(search.ErrAuthentication, "credential file '%s' is empty", c.keyFile)
	}

	searchURL, err := c.searchURL(key, terms, size)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "executing search", slog.String("endpoint", c.endpoint), slog.String("terms", terms), slog.Int("size", size))

	results, err := c.query(ctx, searchURL, size)
	if err != nil {
		err = search.Unavailable(err)

		slog.ErrorContext(ctx, "error when querying the webhose api", slog.String("terms", terms), slog.Any("error", err))

		if c.onFailure != nil {
			c.onFailure(ctx, terms, err)
		}

		return []search.Result{}, nil
	}

	slog.DebugContext(ctx, "search completed", slog.String("terms", terms), slog.Int("results", len(results)))

	return results, nil
}

func (c *Client) query(ctx context.Context, searchURL string, size int) ([]search.Result, error) {
	body, err := c.fetcher.Get(ctx, searchURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	results, err := parseResponse(data, size)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return results, nil
}

// searchURL builds the request url. Parameters keep the order expected by
// the API documentation and any query already present on the endpoint is replaced.
func (c *Client) searchURL(key string, terms string, size int) (string, error) {
	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return "", errors.Wrapf(search.ErrConfiguration, "invalid endpoint '%s': %s", c.endpoint, err)
	}

	if endpoint.Scheme == "" || endpoint.Host == "" {
		return "", errors.Wrapf(search.ErrConfiguration, "invalid endpoint '%s': absolute url expected", c.endpoint)
	}

	var query strings.Builder

	query.WriteString("token=")
	query.WriteString(escape(key))
	query.WriteString("&format=json")
	query.WriteString("&q=")
	query.WriteString(escape(terms))
	query.WriteString("&sort=relevancy")
	query.WriteString("&size=")
	query.WriteString(strconv.Itoa(size))

	endpoint.RawQuery = query.String()

	return endpoint.String(), nil
}

// escape percent-encodes s for use as a query parameter value, with spaces
// encoded as %20.
func escape(s string) string {
	// QueryEscape encodes literal '+' as %2B so any remaining '+' is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// NewClient creates a new Webhose search API client.
func NewClient(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = fetch.DefaultFetcher()
	}

	return &Client{
		endpoint:  opts.Endpoint,
		keyFile:   opts.KeyFile,
		fetcher:   fetcher,
		onFailure: opts.FailureHandler,
	}
}

// RunQuery searches the Webhose API with a client using the default
// endpoint, credential file and fetcher.
func RunQuery(ctx context.Context, terms string, size int) ([]search.Result, error) {
	return NewClient().Search(ctx, terms, size)
}

var _ search.Client = &Client{}
