package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	tu "github.com/benoitkugler/svgstyle/utils/testutils"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), append([]string{"svgstyle"}, args...))
	return out.String(), err
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	image := writeFile(t, dir, "image.svg", `<svg><style>@import "x.css"; rect { fill: red }</style><rect id="r" stroke="blue" transform="translate(1 2)"/><defs/></svg>`)
	user := writeFile(t, dir, "user.css", "#r { stroke: green }")
	cfg := writeFile(t, dir, "config.yaml", "properties: [fill, stroke, display]\n")

	for _, strict := range []bool{false, true} {
		args := []string{"--config", cfg, "dump", "--css", user}
		if strict {
			args = append(args, "--xml")
		}
		out, err := run(t, append(args, image)...)
		tu.AssertNoErr(t, err)

		var dumps []fileDump
		tu.AssertNoErr(t, yaml.Unmarshal([]byte(out), &dumps))
		tu.AssertEqual(t, len(dumps), 1)
		tu.AssertEqual(t, dumps[0].Imports, []string{"x.css"})
		els := dumps[0].Elements
		tu.AssertEqual(t, len(els), 4)
		tu.AssertEqual(t, els[2], elementDump{Tag: "rect", ID: "r", Depth: 1, Style: map[string]string{
			"fill": "#ff0000", "stroke": "#008000", "display": "inline",
		}, Transform: []float64{1, 0, 0, 1, 1, 2}})
		tu.AssertEqual(t, els[3].Style["display"], "none")
	}
}

func TestDumpErrors(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.svg", "<svg/>")
	invalid := writeFile(t, dir, "invalid.svg", "<p>nothing</p>")

	out, err := run(t, "dump", valid, invalid, filepath.Join(dir, "missing.svg"))
	if err == nil || !strings.Contains(err.Error(), "missing <svg> element") {
		t.Fatalf("unexpected error %v", err)
	}
	// valid files are still printed
	tu.AssertEqual(t, strings.Contains(out, "valid.svg"), true)

	// the multi file error is reported, not turned into an exit
	tu.AssertEqual(t, len(multierr.Errors(err)), 2)
	tu.AssertEqual(t, errWasHandled, true)

	if _, err = run(t, "dump"); err == nil {
		t.Fatal("expected error without input")
	}
	if _, err = run(t, "dump", "--css", filepath.Join(dir, "missing.css"), valid); err == nil {
		t.Fatal("expected error for missing style sheet")
	}
}

func TestTokens(t *testing.T) {
	css := writeFile(t, t.TempDir(), "a.css", "rect/* c */{fill:red}")
	out, err := run(t, "tokens", css)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, out, `<ident "rect">
<{>
<ident "fill">
<:>
<ident "red">
<}>
`)
	out, err = run(t, "tokens", "--comments", css)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, strings.Count(out, "\n"), 7)

	out, err = run(t, "tokens", "--serialize", css)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, out, "rect{fill:red}\n")
}

func TestDumpConfig(t *testing.T) {
	out, err := run(t, "dumpconfig", "--default")
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, strings.Contains(out, "user_agent: true"), true)

	out, err = run(t, "dumpconfig")
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, strings.Contains(out, "level: normal"), true)
}
