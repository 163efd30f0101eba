package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	pa "github.com/benoitkugler/svgstyle/css/parser"
	pr "github.com/benoitkugler/svgstyle/css/properties"
	"github.com/benoitkugler/svgstyle/logger"
	"github.com/benoitkugler/svgstyle/matrix"
	"github.com/benoitkugler/svgstyle/svg"
)

type elementDump struct {
	Tag   string            `yaml:"tag"`
	ID    string            `yaml:"id,omitempty"`
	Depth int               `yaml:"depth"`
	Style map[string]string `yaml:"style"`

	// Transform is the matrix (a, b, c, d, e, f), omitted for the identity.
	Transform []float64 `yaml:"transform,omitempty,flow"`
}

type fileDump struct {
	File     string        `yaml:"file"`
	Imports  []string      `yaml:"imports,omitempty"`
	Elements []elementDump `yaml:"elements"`
}

func readStylesheet(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read style sheet: %w", err)
	}
	return pa.DecodeStylesheet(data, ""), nil
}

func dumpFile(path string, opts svg.Options, strict bool, props []pr.KnownProp) (fileDump, error) {
	f, err := os.Open(path)
	if err != nil {
		return fileDump{}, fmt.Errorf("unable to open source: %w", err)
	}
	defer f.Close()

	var doc *svg.Document
	if strict {
		doc, err = svg.ParseXML(f, opts)
	} else {
		doc, err = svg.ParseWithOptions(f, opts)
	}
	if err != nil {
		return fileDump{}, fmt.Errorf("%s: %w", path, err)
	}

	out := fileDump{File: path, Imports: doc.StyleSheet.Imports()}
	doc.Walk(func(n *svg.Node, depth int) bool {
		el := elementDump{Tag: n.Tag, ID: n.Get(pr.PID), Depth: depth, Style: make(map[string]string, len(props))}
		for _, p := range props {
			el.Style[p.String()] = n.Style.Get(p).String()
		}
		if tr, err := n.Transform(); err != nil {
			logger.WarningLogger.Debugw("ignored transform", zap.String("tag", n.Tag), zap.Error(err))
		} else if tr != matrix.Identity() {
			el.Transform = []float64{tr.A, tr.B, tr.C, tr.D, tr.E, tr.F}
		}
		out.Elements = append(out.Elements, el)
		return true
	})
	return out, nil
}

func runDump(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return errors.New("no input file")
	}
	cfg := envFromContext(ctx).cfg

	opts := svg.Options{UserAgent: cfg.UserAgent}
	var err error
	for _, path := range append(append([]string(nil), cfg.Stylesheets...), cmd.StringSlice("css")...) {
		css, er := readStylesheet(path)
		if er != nil {
			return er
		}
		opts.ExtraCSS = append(opts.ExtraCSS, css)
	}

	props := cfg.SelectedProperties()
	var dumps []fileDump
	for _, path := range cmd.Args().Slice() {
		if er := ctx.Err(); er != nil {
			return multierr.Append(err, er)
		}
		dump, er := dumpFile(path, opts, cmd.Bool("xml"), props)
		if er != nil {
			logger.WarningLogger.Warnw("Unable to process file", zap.String("file", path), zap.Error(er))
			err = multierr.Append(err, er)
			continue
		}
		dumps = append(dumps, dump)
	}

	enc := yaml.NewEncoder(cmd.Root().Writer)
	enc.SetIndent(2)
	if er := enc.Encode(dumps); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to write output: %w", er))
	}
	if er := enc.Close(); er != nil {
		err = multierr.Append(err, er)
	}
	return err
}

func runTokens(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return errors.New("expected exactly one style sheet")
	}
	css, err := readStylesheet(cmd.Args().First())
	if err != nil {
		return err
	}
	z := pa.NewTokenizer(css)
	z.KeepComments = cmd.Bool("comments")
	w := cmd.Root().Writer
	tokens := z.Tokenize()
	if cmd.Bool("serialize") {
		if _, err := fmt.Fprintln(w, pa.Serialize(tokens)); err != nil {
			return fmt.Errorf("unable to write output: %w", err)
		}
		return nil
	}
	for _, token := range tokens {
		if _, err := fmt.Fprintln(w, token); err != nil {
			return fmt.Errorf("unable to write output: %w", err)
		}
	}
	return nil
}
