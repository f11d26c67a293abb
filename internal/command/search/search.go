package search

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bornholm/rango/internal/logx"
	se "github.com/bornholm/rango/pkg/search"
	"github.com/bornholm/rango/pkg/search/webhose"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Search() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search the Webhose API for the given terms",
		ArgsUsage: "[terms...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "size",
				Value:   se.DefaultSize,
				Aliases: []string{"n"},
				EnvVars: []string{"RANGO_SEARCH_SIZE"},
				Usage:   "Maximum number of results",
			},
			&cli.StringFlag{
				Name:      "key-file",
				Value:     webhose.DefaultKeyFile,
				Aliases:   []string{"k"},
				EnvVars:   []string{"RANGO_SEARCH_KEY_FILE"},
				Usage:     "File whose first line is the Webhose API key",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:    "endpoint",
				Value:   webhose.DefaultEndpoint,
				EnvVars: []string{"RANGO_SEARCH_ENDPOINT"},
				Usage:   "Webhose search API url",
			},
			&cli.StringFlag{
				Name:    "format",
				Value:   FormatText,
				Aliases: []string{"f"},
				EnvVars: []string{"RANGO_SEARCH_FORMAT"},
				Usage:   fmt.Sprintf("Output format (%s)", strings.Join(formats, ", ")),
			},
			&cli.StringFlag{
				Name:      "output",
				Value:     "",
				Aliases:   []string{"o"},
				EnvVars:   []string{"RANGO_SEARCH_OUTPUT"},
				Usage:     "Output file, '-' for stdout",
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:    "save",
				EnvVars: []string{"RANGO_SEARCH_SAVE"},
				Usage:   "Write results to a file named after the search terms",
			},
			&cli.BoolFlag{
				Name:    "fail-on-error",
				EnvVars: []string{"RANGO_SEARCH_FAIL_ON_ERROR"},
				Usage:   "Exit with an error when the query fails instead of printing no results",
			},
		},
		Action: func(cliCtx *cli.Context) error {
			opts := options{
				Size:        cliCtx.Int("size"),
				KeyFile:     cliCtx.String("key-file"),
				Endpoint:    cliCtx.String("endpoint"),
				Format:      cliCtx.String("format"),
				Output:      cliCtx.String("output"),
				Save:        cliCtx.Bool("save"),
				FailOnError: cliCtx.Bool("fail-on-error"),
			}

			if err := opts.validate(); err != nil {
				return errors.Wrap(err, "invalid options")
			}

			terms := strings.Join(cliCtx.Args().Slice(), " ")

			if cliCtx.NArg() == 0 {
				prompted, err := promptTerms(cliCtx.App.Writer, cliCtx.App.Reader)
				if err != nil {
					return errors.Wrap(err, "could not read search terms")
				}

				terms = prompted
			}

			terms = strings.TrimSpace(terms)
			if terms == "" {
				return errors.New("please specify search terms")
			}

			// The client logs the terms itself
			ctx := logx.WithAttrs(cliCtx.Context, slog.String("format", opts.Format))

			var queryErr error

			client := webhose.NewClient(
				webhose.WithEndpoint(opts.Endpoint),
				webhose.WithKeyFile(opts.KeyFile),
				webhose.WithFailureHandler(func(_ context.Context, _ string, err error) {
					queryErr = err
				}),
			)

			results, err := client.Search(ctx, terms, opts.Size)
			if err != nil {
				return errors.Wrap(err, "search failed")
			}

			if queryErr != nil && opts.FailOnError {
				return errors.Wrap(queryErr, "search failed")
			}

			slog.InfoContext(ctx, "search done", slog.String("terms", terms), slog.Int("results", len(results)))

			var buff bytes.Buffer

			if err := render(&buff, opts.Format, terms, results); err != nil {
				return errors.WithStack(err)
			}

			output := opts.Output
			if output == "" && opts.Save {
				output = outputFilename(terms, opts.Format)
			}

			if output == "" || output == "-" {
				if _, err := cliCtx.App.Writer.Write(buff.Bytes()); err != nil {
					return errors.WithStack(err)
				}

				return nil
			}

			if err := os.WriteFile(output, buff.Bytes(), 0644); err != nil {
				return errors.Wrapf(err, "failed to write results")
			}

			slog.InfoContext(ctx, "results written", slog.String("output", output))

			return nil
		},
	}
}

// defaultFilename is used when the search terms produce an empty slug
const defaultFilename = "results"

func outputFilename(terms string, format string) string {
	name := slug.Make(terms)
	if name == "" {
		name = defaultFilename
	}

	return name + "." + extension(format)
}

func promptTerms(w io.Writer, r io.Reader) (string, error) {
	if _, err := io.WriteString(w, "Enter search terms:\n"); err != nil {
		return "", errors.WithStack(err)
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.WithStack(err)
	}

	return line, nil
}
