package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

// xdgConfigFile is looked up in the XDG config directories when no local file exists.
const xdgConfigFile = "gridgames/config.yml"

type Config struct {
	LogLevel   string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string   `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	GridLine   GridLine `yaml:"grid-line"`
}

type GridLine struct {
	DefaultSize       int             `yaml:"default-size" env:"GRID_DEFAULT_SIZE" env-default:"3"`
	DefaultDifficulty string          `yaml:"default-difficulty" env:"GRID_DEFAULT_DIFFICULTY" env-default:"hard"`
	RandomSeed        uint64          `yaml:"random-seed" env:"GRID_RANDOM_SEED" env-default:"0"`
	Profiles          []SearchProfile `yaml:"profiles"`
}

// SearchProfile sets the search depth of each difficulty for one board size. A depth of 0 is a full search.
type SearchProfile struct {
	Size                  int     `yaml:"size"`
	Easy                  int     `yaml:"easy"`
	Medium                int     `yaml:"medium"`
	Hard                  int     `yaml:"hard"`
	RandomMoveProbability float64 `yaml:"random-move-probability"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the file at path when there is one and the environment otherwise.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}

// ResolvePath prefers name, then the XDG config file, and returns an empty path when neither exists.
// An absolute name is always returned so that a missing explicit file is reported by Load.
func ResolvePath(name string) string {
	_, err := os.Stat(name)
	if err == nil || !errors.Is(err, os.ErrNotExist) || filepath.IsAbs(name) {
		return name
	}

	path, err := xdg.SearchConfigFile(xdgConfigFile)
	if err != nil {
		return ""
	}

	return path
}
