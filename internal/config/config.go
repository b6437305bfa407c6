package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidBoardSize = errors.New("board size must be positive")
	ErrInvalidPokemon   = errors.New("expected pokemon must be positive")
)

type Config struct {
	LogLevel   string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string    `yaml:"socket-port" env:"SOCKET_PORT" env-default:"50051"`
	Game       Game      `yaml:"game"`
	Redis      Redis     `yaml:"redis"`
	RateLimit  RateLimit `yaml:"rate-limit"`
}

type Game struct {
	BoardSize            int           `yaml:"board-size" env:"BOARD_SIZE" env-default:"10"`
	ExpectedPokemon      int           `yaml:"expected-pokemon" env:"EXPECTED_POKEMON" env-default:"5"`
	MaxPlacementAttempts int           `yaml:"max-placement-attempts" env-default:"64"`
	RenderInterval       time.Duration `yaml:"render-interval" env:"RENDER_INTERVAL" env-default:"1s"`
	TrainerIcons         []string      `yaml:"trainer-icons" env:"TRAINER_ICONS"`
	PokemonIcons         []string      `yaml:"pokemon-icons" env:"POKEMON_ICONS"`
}

type Redis struct {
	Enabled        bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host           string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port           string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB             int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	DialTimeout    time.Duration `yaml:"dial-timeout" env-default:"5s"`
	KeyPrefix      string        `yaml:"key-prefix" env-default:"pokemonou"`
	MirrorInterval time.Duration `yaml:"mirror-interval" env-default:"1s"`
}

type RateLimit struct {
	RequestsPerSecond float64 `yaml:"requests-per-second" env-default:"50"`
	Burst             int     `yaml:"burst" env-default:"100"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Game.BoardSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBoardSize, that.Game.BoardSize)
	}

	if that.Game.ExpectedPokemon <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPokemon, that.Game.ExpectedPokemon)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
