package config

import (
	"os"
	"path/filepath"
	"testing"

	pr "github.com/benoitkugler/svgstyle/css/properties"
	tu "github.com/benoitkugler/svgstyle/utils/testutils"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, cfg.Version, 1)
	tu.AssertEqual(t, cfg.Logging.Level, "normal")
	tu.AssertEqual(t, cfg.UserAgent, true)

	props := cfg.SelectedProperties()
	tu.AssertEqual(t, props[0], pr.PClipPath)
	for _, p := range props {
		if !p.IsCSS() {
			t.Fatalf("%s is not a CSS property", p)
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
logging:
  level: debug
stylesheets: [a.css, b.css]
user_agent: false
properties: [fill, Stroke-Width]
`)
	cfg, err := LoadConfiguration(path)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, cfg.Logging.Level, "debug")
	tu.AssertEqual(t, cfg.Stylesheets, []string{"a.css", "b.css"})
	tu.AssertEqual(t, cfg.UserAgent, false)
	tu.AssertEqual(t, cfg.SelectedProperties(), []pr.KnownProp{pr.PFill, pr.PStrokeWidth})

	// partial files keep the defaults
	cfg, err = LoadConfiguration(writeConfig(t, "stylesheets: [c.css]\n"))
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, cfg.UserAgent, true)
	tu.AssertEqual(t, cfg.Stylesheets, []string{"c.css"})
}

func TestLoadConfiguration_Invalid(t *testing.T) {
	for _, content := range []string{
		"version: 2\n",
		"logging:\n  level: verbose\n",
		"unknown_field: 1\n",
		"properties: [x]\n",
		"stylesheets: ['']\n",
	} {
		if _, err := LoadConfiguration(writeConfig(t, content)); err == nil {
			t.Errorf("expected error for %q", content)
		}
	}
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	tu.AssertNoErr(t, err)
	data, err := Dump(cfg)
	tu.AssertNoErr(t, err)
	again, err := unmarshalConfig(data, &Config{})
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, again, cfg)
}
