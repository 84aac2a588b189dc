package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"dtc/exec"
	"dtc/geom"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	PageConfig struct {
		Preset string `yaml:"preset" validate:"omitempty,oneof=a4 a5 letter legal"`
		// explicit dimensions override the preset
		Width  string `yaml:"width,omitempty"`
		Height string `yaml:"height,omitempty"`
		Margin string `yaml:"margin" validate:"required"`
	}

	FontConfig struct {
		Families []string `yaml:"families" validate:"min=1,dive,required"`
		Size     string   `yaml:"size" validate:"required"`
	}

	ParConfig struct {
		Leading     string `yaml:"leading" validate:"required"`
		Spacing     string `yaml:"spacing" validate:"required"`
		WordSpacing string `yaml:"word_spacing" validate:"required"`
	}

	DocumentConfig struct {
		Page      PageConfig `yaml:"page"`
		Font      FontConfig `yaml:"font"`
		Par       ParConfig  `yaml:"paragraph"`
		Language  string     `yaml:"language" validate:"required,bcp47_language_tag"`
		Direction string     `yaml:"direction,omitempty" validate:"omitempty,oneof=ltr rtl"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// NewState builds the initial execution state from document settings.
func (conf *DocumentConfig) NewState() (exec.State, error) {
	state := exec.NewState()

	size, err := conf.Page.size()
	if err != nil {
		return state, err
	}
	state.Page.Size = size

	margin, err := geom.ParseLinear(conf.Page.Margin)
	if err != nil {
		return state, fmt.Errorf("bad page margin: %w", err)
	}
	state.Page.Margins = geom.UniformSides(margin)

	if state.Font.Size, err = geom.ParseLength(conf.Font.Size); err != nil {
		return state, fmt.Errorf("bad font size: %w", err)
	}
	state.Font.Families = append([]string{}, conf.Font.Families...)

	if state.Par.Leading, err = geom.ParseLinear(conf.Par.Leading); err != nil {
		return state, fmt.Errorf("bad leading: %w", err)
	}
	if state.Par.Spacing, err = geom.ParseLinear(conf.Par.Spacing); err != nil {
		return state, fmt.Errorf("bad paragraph spacing: %w", err)
	}
	if state.Par.WordSpacing, err = geom.ParseLinear(conf.Par.WordSpacing); err != nil {
		return state, fmt.Errorf("bad word spacing: %w", err)
	}

	if state.Lang, err = exec.NewLangState(conf.Language); err != nil {
		return state, fmt.Errorf("bad language tag: %w", err)
	}
	if len(conf.Direction) > 0 {
		if state.Lang.Dir, err = geom.ParseDir(conf.Direction); err != nil {
			return state, fmt.Errorf("bad direction: %w", err)
		}
	}
	return state, nil
}

func (conf *PageConfig) size() (geom.Size, error) {
	if len(conf.Width) > 0 || len(conf.Height) > 0 {
		if len(conf.Width) == 0 || len(conf.Height) == 0 {
			return geom.Size{}, fmt.Errorf("page width and height must be set together")
		}
		w, err := geom.ParseLength(conf.Width)
		if err != nil {
			return geom.Size{}, fmt.Errorf("bad page width: %w", err)
		}
		h, err := geom.ParseLength(conf.Height)
		if err != nil {
			return geom.Size{}, fmt.Errorf("bad page height: %w", err)
		}
		return geom.Size{W: w, H: h}, nil
	}
	preset, err := ParsePageSizePreset(conf.Preset)
	if err != nil {
		return geom.Size{}, err
	}
	w, h := preset.Dimensions()
	return geom.Size{W: geom.Mm(w), H: geom.Mm(h)}, nil
}
