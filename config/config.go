package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultConfigFile is looked up in the working directory; a missing
// file is not an error and the defaults below apply.
const DefaultConfigFile = "blog.yaml"

// PageFilename is the file written inside each per-slug output
// directory.
const PageFilename = "index.html"

// Config holds every path and knob the build uses. It is constructed
// once at startup and passed to each component; nothing reads
// configuration ambiently.
type Config struct {
	SourceDir      string `yaml:"source_dir"`
	OutputDir      string `yaml:"output_dir"`
	TemplateFile   string `yaml:"template_file"`
	ListingFile    string `yaml:"listing_file"`
	BaseURL        string `yaml:"base_url"`
	HighlightStyle string `yaml:"highlight_style"`
}

func Default() Config {
	return Config{
		SourceDir:      "blog_src",
		OutputDir:      "blog",
		TemplateFile:   "blog/_template.html",
		ListingFile:    "blog/index.html",
		BaseURL:        "",
		HighlightStyle: "monokai",
	}
}

// Load returns the defaults overridden by the YAML file at filename,
// if it exists. Unset keys keep their default values.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if cfg.HighlightStyle == "" {
		cfg.HighlightStyle = Default().HighlightStyle
	}

	return cfg, nil
}
