package webhose

import (
	"encoding/json"

	"github.com/bornholm/rango/pkg/search"
	"github.com/pkg/errors"
)

// Fields are pointers so that absent keys can be told apart from empty values.
type apiResponse struct {
	Posts *[]apiPost `json:"posts"`
}

type apiPost struct {
	Title *string `json:"title"`
	URL   *string `json:"url"`
	Text  *string `json:"text"`
}

func parseResponse(data []byte, size int) ([]search.Result, error) {
	var res apiResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	if res.Posts == nil {
		return nil, errors.New("missing 'posts' field in response")
	}

	posts := *res.Posts
	if len(posts) > size {
		posts = posts[:size]
	}

	results := make([]search.Result, 0, len(posts))

	for i, p := range posts {
		switch {
		case p.Title == nil:
			return nil, errors.Errorf("missing 'title' field in post #%d", i)
		case p.URL == nil:
			return nil, errors.Errorf("missing 'url' field in post #%d", i)
		case p.Text == nil:
			return nil, errors.Errorf("missing 'text' field in post #%d", i)
		}

		results = append(results, search.Result{
			Title:   *p.Title,
			Link:    *p.URL,
			Summary: search.Truncate(*p.Text, search.SummaryMaxLength),
		})
	}

	return results, nil
}
