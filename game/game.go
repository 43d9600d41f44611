package game

import (
	"math/rand/v2"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config describes how to build a board for one game.
type Config struct {
	Rows     int `yaml:"rows"`
	Columns  int `yaml:"columns"`
	NumMines int `yaml:"mines"`

	// Seed for mine placement and relocation; 0 picks a random one
	Seed uint64 `yaml:"seed,omitempty"`

	// Whether the first reveal moves a mine out of the way
	SafeFirstReveal bool `yaml:"safe_first_reveal"`

	// Path to a layout file to load the board from instead of placing
	// mines at random
	LayoutPath string `yaml:"layout,omitempty"`
}

func NewConfig() Config {
	return Config{
		Rows:            16,
		Columns:         30,
		NumMines:        99,
		SafeFirstReveal: true,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	config := NewConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(b, &config); err != nil {
		return config, errors.Wrapf(err, "parse config %s", path)
	}
	return config, nil
}

func (config Config) Validate() error {
	if config.LayoutPath != "" {
		return nil
	}
	return validateDimensions(config.Rows, config.Columns, config.NumMines)
}

func (config Config) source() *rand.Rand {
	if config.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(config.Seed, config.Seed))
}

// NewBoard builds the board the config describes.
func (config Config) NewBoard() (*Board, error) {
	if config.LayoutPath == "" {
		return NewBoard(config.Rows, config.Columns, config.NumMines, config.source())
	}

	b, err := os.ReadFile(config.LayoutPath)
	if err != nil {
		return nil, errors.Wrapf(err, "read layout %s", config.LayoutPath)
	}
	layout, err := LoadLayout(string(b))
	if err != nil {
		return nil, err
	}
	if layout.Seed == 0 {
		layout.Seed = config.Seed
	}
	return layout.CreateBoard()
}
