package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/springfieldsr/go-pong/game"
)

var ErrInvalid = errors.New("invalid config")

// Config is the runtime configuration of the pong binary. An empty Listen
// runs the simulator headless for Frames frames.
type Config struct {
	Listen         string `toml:"listen"`
	FrameMs        int    `toml:"frame_ms"`
	Difficulty     string `toml:"difficulty"`
	Seed           int64  `toml:"seed"`
	Frames         int    `toml:"frames"`
	Autoplay       bool   `toml:"autoplay"`
	SendQueue      int    `toml:"send_queue"`
	BroadcastEvery int    `toml:"broadcast_every"`
}

func Default() Config {
	return Config{
		FrameMs:        16,
		Difficulty:     game.Medium.String(),
		Frames:         3600,
		SendQueue:      100,
		BroadcastEvery: 1,
	}
}

// Load reads path as TOML over the defaults, then envFile, then PONG_*
// variables. Missing files are skipped.
func Load(path, envFile string) (Config, error) {
	c := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &c); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return c, fmt.Errorf("config %s: %w", path, err)
			}
		} else {
			log.Printf("Loaded config from %s", path)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err == nil {
			log.Println("Successfully loaded environment variables")
		} else if !errors.Is(err, os.ErrNotExist) {
			return c, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}

	if err := c.applyEnv(); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c *Config) applyEnv() error {
	if v, err := GetEnvVariable("PONG_LISTEN"); err == nil {
		c.Listen = v
	}
	if v, err := GetEnvVariable("PONG_DIFFICULTY"); err == nil {
		c.Difficulty = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"PONG_FRAME_MS", &c.FrameMs},
		{"PONG_FRAMES", &c.Frames},
		{"PONG_SEND_QUEUE", &c.SendQueue},
		{"PONG_BROADCAST_EVERY", &c.BroadcastEvery},
	}
	for _, e := range ints {
		v, err := GetEnvVariable(e.name)
		if err != nil {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, e.name, v)
		}
		*e.dst = n
	}

	if v, err := GetEnvVariable("PONG_SEED"); err == nil {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: PONG_SEED=%q is not a number", ErrInvalid, v)
		}
		c.Seed = n
	}
	if v, err := GetEnvVariable("PONG_AUTOPLAY"); err == nil {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: PONG_AUTOPLAY=%q is not a bool", ErrInvalid, v)
		}
		c.Autoplay = b
	}
	return nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.FrameMs <= 0:
		return fmt.Errorf("%w: frame_ms must be positive, got %d", ErrInvalid, c.FrameMs)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames must not be negative, got %d", ErrInvalid, c.Frames)
	case c.SendQueue <= 0:
		return fmt.Errorf("%w: send_queue must be positive, got %d", ErrInvalid, c.SendQueue)
	case c.BroadcastEvery <= 0:
		return fmt.Errorf("%w: broadcast_every must be positive, got %d", ErrInvalid, c.BroadcastEvery)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Level returns the configured difficulty.
func (c Config) Level() (game.Difficulty, error) {
	return game.ParseDifficulty(c.Difficulty)
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", errors.New("empty variable name")
	}
	b, ok := os.LookupEnv(v)
	if !ok || b == "" {
		return "", fmt.Errorf("%s not set", v)
	}
	return b, nil
}
