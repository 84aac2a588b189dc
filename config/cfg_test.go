package config

import (
	"os"
	"path/filepath"
	"testing"

	"dtc/geom"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("unable to load default configuration: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("unexpected version: %d", cfg.Version)
	}

	state, err := cfg.Document.NewState()
	if err != nil {
		t.Fatalf("unable to build state from defaults: %v", err)
	}
	if !state.Page.Size.W.ApproxEq(geom.Mm(210)) || !state.Page.Size.H.ApproxEq(geom.Mm(297)) {
		t.Errorf("expected A4 page, got %+v", state.Page.Size)
	}
	if !state.Page.Margins.Left.Resolve(state.Font.Size).ApproxEq(geom.Cm(2.5)) {
		t.Errorf("unexpected margin: %s", state.Page.Margins.Left)
	}
	if !state.Font.Size.ApproxEq(geom.Pt(11)) {
		t.Errorf("unexpected font size: %s", state.Font.Size)
	}
	if len(state.Font.Families) != 1 || state.Font.Families[0] != "serif" {
		t.Errorf("unexpected families: %v", state.Font.Families)
	}
	if !state.Par.Spacing.Resolve(geom.Pt(10)).ApproxEq(geom.Pt(12)) {
		t.Errorf("unexpected paragraph spacing: %s", state.Par.Spacing)
	}
	if state.Lang.Dir != geom.DirLtr {
		t.Errorf("unexpected direction: %s", state.Lang.Dir)
	}
}

func TestConfigurationOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
document:
  page:
    width: 100mm
    height: 150mm
  font:
    size: 9pt
  language: he
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("unable to load configuration: %v", err)
	}
	state, err := cfg.Document.NewState()
	if err != nil {
		t.Fatalf("unable to build state: %v", err)
	}

	// overridden values
	if !state.Page.Size.W.ApproxEq(geom.Mm(100)) || !state.Page.Size.H.ApproxEq(geom.Mm(150)) {
		t.Errorf("explicit page size not applied: %+v", state.Page.Size)
	}
	if !state.Font.Size.ApproxEq(geom.Pt(9)) {
		t.Errorf("font size not applied: %s", state.Font.Size)
	}
	if state.Lang.Dir != geom.DirRtl {
		t.Errorf("expected right-to-left for Hebrew, got %s", state.Lang.Dir)
	}
	// defaults survive underneath
	if !state.Par.Leading.Resolve(geom.Pt(10)).ApproxEq(geom.Pt(5)) {
		t.Errorf("default leading lost: %s", state.Par.Leading)
	}
}

func TestConfigurationRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nnonsense: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("expected unknown field to fail configuration load")
	}
}

func TestNewStateBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DocumentConfig)
	}{
		{name: "bad margin", mutate: func(c *DocumentConfig) { c.Page.Margin = "wide" }},
		{name: "bad font size", mutate: func(c *DocumentConfig) { c.Font.Size = "11" }},
		{name: "width without height", mutate: func(c *DocumentConfig) { c.Page.Width = "100mm" }},
		{name: "bad preset", mutate: func(c *DocumentConfig) { c.Page.Preset = "tabloid" }},
		{name: "bad leading", mutate: func(c *DocumentConfig) { c.Par.Leading = "half" }},
		{name: "bad language", mutate: func(c *DocumentConfig) { c.Language = "not a tag" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfiguration("")
			if err != nil {
				t.Fatalf("unable to load default configuration: %v", err)
			}
			tt.mutate(&cfg.Document)
			if _, err := cfg.Document.NewState(); err == nil {
				t.Error("expected state construction to fail")
			}
		})
	}
}

func TestPageSizePresets(t *testing.T) {
	for _, name := range PageSizePresetNames() {
		preset, err := ParsePageSizePreset(name)
		if err != nil {
			t.Fatalf("ParsePageSizePreset(%q): %v", name, err)
		}
		w, h := preset.Dimensions()
		if w <= 0 || h <= 0 {
			t.Errorf("suspicious dimensions for %s: %v x %v", name, w, h)
		}
		if w >= h {
			t.Errorf("portrait presets must be taller than wide: %s is %v x %v", name, w, h)
		}
	}
}

func TestDumpRoundTrip(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("unable to dump configuration: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	back, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("dumped configuration does not load back: %v", err)
	}
	if back.Document.Font.Size != cfg.Document.Font.Size || back.Document.Page.Preset != cfg.Document.Page.Preset {
		t.Error("dumped configuration lost document settings")
	}
}
