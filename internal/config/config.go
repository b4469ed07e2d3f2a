package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"confsched/schedule"
)

// RoomMeta mirrors schedule.RoomMeta for the YAML surface.
type RoomMeta struct {
	Capacity string `yaml:"capacity"`
	Area     string `yaml:"area"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address of the schedule server.
	Listen string `yaml:"listen"`

	// Source is the path of the raw schedule records JSON file.
	Source string `yaml:"source"`

	// RefreshCron is a cron-style schedule string (e.g. "*/5 * * * *")
	// used by the server to re-import the source file periodically.
	// Empty disables the refresh.
	RefreshCron string `yaml:"refresh"`

	// Rooms overrides or extends the built-in room metadata table.
	Rooms map[string]RoomMeta `yaml:"rooms"`
}

func Default() *Config {
	return &Config{
		Listen:      "localhost:9999",
		RefreshCron: "*/5 * * * *",
		Rooms:       map[string]RoomMeta{},
	}
}

// Normalize fills in missing values so partially-filled configs behave.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "localhost:9999"
	}
	if c.Rooms == nil {
		c.Rooms = map[string]RoomMeta{}
	}
}

// Load loads configuration from the given YAML path. A missing file yields
// the defaults; an empty path is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// RoomTable merges the configured room metadata over the built-in table.
func (c *Config) RoomTable() schedule.StaticRooms {
	rooms := make(schedule.StaticRooms, len(schedule.DefaultRooms)+len(c.Rooms))
	for id, meta := range schedule.DefaultRooms {
		rooms[id] = meta
	}
	for id, meta := range c.Rooms {
		rooms[id] = schedule.RoomMeta{Capacity: meta.Capacity, Area: meta.Area}
	}
	return rooms
}
