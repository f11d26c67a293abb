package fetch

import (
	"net/http"
)

var defaultFetcher Fetcher = NewHTTPFetcher(http.DefaultClient)

// SetDefault replaces the fetcher used by clients created without one
func SetDefault(fetcher Fetcher) {
	defaultFetcher = fetcher
}

func DefaultFetcher() Fetcher {
	return defaultFetcher
}
