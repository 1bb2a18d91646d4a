package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeTree  = "tree"
	ModePlay  = "play"
	ModeServe = "serve"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string `yaml:"mode" env:"MODE" env-default:"tree"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Tree     Tree   `yaml:"tree"`
	Play     Play   `yaml:"play"`
	Redis    Redis  `yaml:"redis"`
}

type Tree struct {
	Board          string  `yaml:"board" env:"TREE_BOARD" env-default:"EOOEXEXOE"`
	Output         string  `yaml:"output" env:"TREE_OUTPUT" env-default:"./output.svg"`
	Format         string  `yaml:"format" env:"TREE_FORMAT" env-default:"svg"`
	MaxEmptyCells  int     `yaml:"max-empty-cells" env:"TREE_MAX_EMPTY_CELLS" env-default:"6"`
	Captions       bool    `yaml:"captions" env:"TREE_CAPTIONS" env-default:"false"`
	PNGScale       float64 `yaml:"png-scale" env:"TREE_PNG_SCALE" env-default:"0.25"`
	PNGSupersample int     `yaml:"png-supersample" env:"TREE_PNG_SUPERSAMPLE" env-default:"2"`
}

type Play struct {
	Board string        `yaml:"board" env:"PLAY_BOARD" env-default:"EEEEEEEEE"`
	Delay time.Duration `yaml:"delay" env:"PLAY_DELAY" env-default:"1s"`
}

// Redis - an empty host keeps games in memory.
type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
