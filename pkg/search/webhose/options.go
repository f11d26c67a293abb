package webhose

import (
	"context"

	"github.com/bornholm/rango/pkg/fetch"
)

// DefaultEndpoint is the Webhose search API root.
const DefaultEndpoint = "http://webhose.io/search"

// FailureHandlerFunc receives query-time failures that Search swallows.
// The error always matches search.ErrUnavailable.
type FailureHandlerFunc func(ctx context.Context, terms string, err error)

type Options struct {
	Endpoint       string
	KeyFile        string
	Fetcher        fetch.Fetcher
	FailureHandler FailureHandlerFunc
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Endpoint: DefaultEndpoint,
		KeyFile:  DefaultKeyFile,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithEndpoint overrides the search API root url
func WithEndpoint(endpoint string) OptionFunc {
	return func(opts *Options) {
		opts.Endpoint = endpoint
	}
}

// WithKeyFile sets the credential file read on each search
func WithKeyFile(filename string) OptionFunc {
	return func(opts *Options) {
		opts.KeyFile = filename
	}
}

// WithFetcher sets the transport used to reach the search API.
// The process default fetcher is used otherwise.
func WithFetcher(fetcher fetch.Fetcher) OptionFunc {
	return func(opts *Options) {
		opts.Fetcher = fetcher
	}
}

// WithFailureHandler registers a hook called whenever a query fails and an
// empty result list is returned instead.
func WithFailureHandler(fn FailureHandlerFunc) OptionFunc {
	return func(opts *Options) {
		opts.FailureHandler = fn
	}
}
