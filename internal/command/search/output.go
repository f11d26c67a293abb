package search

import (
	"encoding/json"
	"fmt"
	"io"

	se "github.com/bornholm/rango/pkg/search"
	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"
)

type document struct {
	Query   string      `json:"query" yaml:"query"`
	Results []se.Result `json:"results" yaml:"results"`
}

func render(w io.Writer, format string, terms string, results []se.Result) error {
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(document{Query: terms, Results: results}); err != nil {
			return errors.Wrapf(err, "failed to encode results")
		}

		if err := encoder.Close(); err != nil {
			return errors.WithStack(err)
		}

		return nil

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(document{Query: terms, Results: results}); err != nil {
			return errors.Wrapf(err, "failed to encode results")
		}

		return nil

	default:
		return renderText(w, results)
	}
}

func renderText(w io.Writer, results []se.Result) error {
	if len(results) == 0 {
		if _, err := io.WriteString(w, "No results found.\n"); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}

	for i, r := range results {
		if _, err := fmt.Fprintf(w, "%d. %s\n   %s\n   %s\n\n", i+1, r.Title, r.Link, r.Summary); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
