package search

import (
	"net/url"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var formats = []string{FormatText, FormatYAML, FormatJSON}

type options struct {
	Size        int
	KeyFile     string
	Endpoint    string
	Format      string
	Output      string
	Save        bool
	FailOnError bool
}

// validate reports every invalid option at once
func (o options) validate() error {
	var merr *multierror.Error

	if o.Size <= 0 {
		merr = multierror.Append(merr, errors.Errorf("size must be a positive integer, got %d", o.Size))
	}

	if o.KeyFile == "" {
		merr = multierror.Append(merr, errors.New("key file must not be empty"))
	}

	if endpoint, err := url.Parse(o.Endpoint); err != nil {
		merr = multierror.Append(merr, errors.Wrapf(err, "invalid endpoint '%s'", o.Endpoint))
	} else if endpoint.Scheme == "" || endpoint.Host == "" {
		merr = multierror.Append(merr, errors.Errorf("invalid endpoint '%s': absolute url expected", o.Endpoint))
	}

	if !slices.Contains(formats, o.Format) {
		merr = multierror.Append(merr, errors.Errorf("unknown format '%s', expected one of %v", o.Format, formats))
	}

	if o.Save && o.Output == "-" {
		merr = multierror.Append(merr, errors.New("save and output to stdout are mutually exclusive"))
	}

	return merr.ErrorOrNil()
}

func extension(format string) string {
	if format == FormatText {
		return "txt"
	}

	return format
}
