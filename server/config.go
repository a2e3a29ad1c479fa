package server

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep-server/game"
	"gopkg.in/yaml.v2"
	"math/rand"
	"os"
	"time"
)

const DefaultPort = 4443

type Config struct {
	// Whether players stay connected after digging a mine
	Debug bool `yaml:"debug"`
	Port  int  `yaml:"port"`

	// Side length of a random board. Ignored when File is set.
	Size int `yaml:"size"`
	// Path to a board file to load instead of generating a random board
	File string `yaml:"file"`
	// Seed for the random board; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	LogLevel string `yaml:"log_level"`
}

func NewConfig() Config {
	return Config{
		Debug:    false,
		Port:     DefaultPort,
		Size:     game.DefaultSize,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// LoadConfig reads a YAML config file on top of the defaults
func LoadConfig(path string) (Config, error) {
	config := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, nil
}

func (config Config) Validate() error {
	if config.Port < 0 || config.Port > 65535 {
		return errors.Errorf("port %d out of range", config.Port)
	}
	if config.File == "" && config.Size <= 0 {
		return errors.Errorf("board size must be positive, got %d", config.Size)
	}
	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return err
	}
	return nil
}

// CreateBoard builds the board the server will share between all players
func (config Config) CreateBoard() (*game.Board, error) {
	if config.File != "" {
		return game.LoadBoardFile(config.File)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return game.NewRandomBoard(config.Size, rand.New(rand.NewSource(seed))), nil
}
