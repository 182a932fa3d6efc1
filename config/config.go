package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"quoridor/meta"
	"quoridor/render"
)

// RelativePath locates the configuration file under the XDG config home.
var RelativePath = filepath.Join("quoridor", "config.yaml")

var ErrGraphicalRendering = errors.New("graphical rendering is not supported")

type RenderMode string

const (
	RenderText      RenderMode = "text"
	RenderGraphical RenderMode = "graphical"
)

func ParseRenderMode(s string) (RenderMode, error) {
	switch mode := RenderMode(s); mode {
	case RenderText, RenderGraphical:
		return mode, nil
	}
	return "", fmt.Errorf("unknown render mode %q (want %s or %s)", s, RenderText, RenderGraphical)
}

func (m *RenderMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	mode, err := ParseRenderMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

type Config struct {
	Server     string            `yaml:"server"`
	Secrets    map[string]string `yaml:"secrets"` // IDUL -> secret
	Depth      int               `yaml:"depth"`
	Goroutines int               `yaml:"goroutines"`
	Walls      int               `yaml:"walls"` // Wall stock of matches hosted by serve
	Render     RenderMode        `yaml:"render"`
}

func Default() Config {
	return Config{
		Server:     meta.SERVER_URL,
		Secrets:    map[string]string{},
		Depth:      meta.DEPTH,
		Goroutines: meta.GO_ROUTINES,
		Walls:      meta.WALLS,
		Render:     RenderText,
	}
}

// Load reads the configuration at path over the defaults. An empty path
// searches the XDG config directories and falls back to the defaults when
// no file exists.
func Load(path string) (Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(RelativePath)
		if err != nil {
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.Server == "":
		return errors.New("server is empty")
	case c.Depth < 1:
		return fmt.Errorf("depth must be positive, got %d", c.Depth)
	case c.Goroutines < 1:
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	case c.Walls < 0 || c.Walls > meta.WALLS:
		return fmt.Errorf("walls must be between 0 and %d, got %d", meta.WALLS, c.Walls)
	}
	return nil
}

// Secret returns the token registered for idul.
func (c Config) Secret(idul string) (string, error) {
	secret, ok := c.Secrets[idul]
	if !ok {
		return "", fmt.Errorf("no secret configured for %s in %s", idul, RelativePath)
	}
	return secret, nil
}

// Renderer builds the renderer selected by the render mode.
func (c Config) Renderer() (render.Renderer, error) {
	switch c.Render {
	case RenderText, "":
		return render.Text{}, nil
	case RenderGraphical:
		return nil, ErrGraphicalRendering
	}
	return nil, fmt.Errorf("unknown render mode %q", c.Render)
}
