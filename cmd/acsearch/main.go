/*
Command acsearch finds all keywords of a dictionary in text files and saves
the matches as tab separated values.

Usage:

	acsearch -d dictionary.tsv -t text.txt [-t more.txt …] [-o output.tsv]
	         [--case-insensitive] [--word-bounds] [--nfc] [--yaml]
	         [--workers N] [--config acsearch.yaml]

The dictionary file holds one entry per line, a keyword and an optional label
separated by a tab. With --yaml, the dictionary is read from a YAML mapping
or sequence instead.

The output holds one line per match, with columns

	source  start  end  keyword  value

where start and end are character offsets into the text file.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"unicode/utf8"

	"github.com/npillmayer/acsearch"
	"github.com/npillmayer/acsearch/internal/config"
	"github.com/npillmayer/acsearch/internal/zerologadapter"
	"github.com/npillmayer/acsearch/tsvdict"
	"github.com/npillmayer/acsearch/yamldict"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/pflag"
)

// tracer writes to trace with key 'cli'
func tracer() tracing.Trace {
	return tracing.Select("cli")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Execution failed. Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags := config.NewFlagSet("acsearch")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}
	settings, conf, err := config.Load(flags)
	if err != nil {
		return err
	}
	if err := conf.Validate(); err != nil {
		return err
	}
	teardown, err := setupTracing(settings)
	if err != nil {
		return err
	}
	defer teardown()

	a, err := loadDictionary(conf)
	if err != nil {
		return err
	}
	tracer().Infof("dictionary %s: %s", conf.DictionaryFile, a)
	texts, err := readTexts(conf.TextFiles, conf.NFC)
	if err != nil {
		return err
	}
	results, err := a.SearchMany(ctx, texts, conf.Workers)
	if err != nil {
		return err
	}
	return saveMatches(conf.OutputFile, stdout, conf.TextFiles, results)
}

func setupTracing(conf schuko.Configuration) (func(), error) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("zerolog", zerologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("zerolog-console", zerologadapter.GetConsoleAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return nil, fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return trace2go.Teardown, nil
}

func loadDictionary(conf *config.Config) (*acsearch.Automaton[string], error) {
	f, err := os.Open(conf.DictionaryFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	opts := []acsearch.Option{
		acsearch.WithCaseSensitive(!conf.CaseInsensitive),
		acsearch.WithCheckBounds(conf.WordBounds),
		acsearch.WithNormalization(conf.NFC),
	}
	var a *acsearch.Automaton[string]
	if conf.YAML {
		a, err = yamldict.Load(f, opts...)
	} else {
		a, err = tsvdict.Load(f, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", conf.DictionaryFile, err)
	}
	return a, nil
}

func readTexts(paths []string, nfc bool) ([]string, error) {
	texts := make([]string, len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%s: %w: text is not valid UTF-8", path, acsearch.ErrInvalidInput)
		}
		texts[i] = string(data)
		if nfc {
			texts[i] = acsearch.Normalize(texts[i])
		}
	}
	return texts, nil
}

func saveMatches(path string, stdout io.Writer, sources []string, results [][]acsearch.Match[string]) (err error) {
	out := stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}
	w := tsvdict.NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	n := 0
	for i, matches := range results {
		if err := w.WriteAll(sources[i], matches); err != nil {
			return err
		}
		n += len(matches)
	}
	tracer().Infof("saved %d matches to %s", n, path)
	return w.Flush()
}
