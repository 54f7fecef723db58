package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"lisa_evolver/logx"
)

// Config is the resolved run configuration. Values come from the defaults,
// then an optional TOML file, then explicitly set command-line flags.
type Config struct {
	Image       string `toml:"image"`
	Shape       string `toml:"shape"`
	Square      bool   `toml:"square"`
	Addr        string `toml:"addr"`
	Port        int    `toml:"port"`
	Seed        int64  `toml:"seed"`
	Workers     int    `toml:"workers"`
	MaxSize     int    `toml:"max_size"`
	TUI         bool   `toml:"tui"`
	HistorySize int    `toml:"history_size"`
}

func DefaultConfig() Config {
	return Config{
		Image:       "lisa.jpg",
		Addr:        "localhost",
		Port:        8080,
		Workers:     runtime.NumCPU(),
		HistorySize: 1000,
	}
}

// LoadConfigFile decodes path over cfg. Keys not present in the file keep
// their current value.
func LoadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	md, err := toml.NewDecoder(f).Decode(cfg)
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		logx.LogConfig("%s", logx.Warnf("ignoring unknown config keys: %s", strings.Join(keys, ", ")))
	}
	return nil
}

// Validate rejects values the program cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Image == "" {
		errs = append(errs, errors.New("image path is empty"))
	}
	if _, err := ParseShapeKind(c.Shape); err != nil {
		errs = append(errs, err)
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.MaxSize < 0 {
		errs = append(errs, fmt.Errorf("max_size must not be negative, got %d", c.MaxSize))
	}
	if c.HistorySize < 1 {
		errs = append(errs, fmt.Errorf("history_size must be positive, got %d", c.HistorySize))
	}
	return errors.Join(errs...)
}

// Kind resolves the shape variant. -square wins over the shape name; an
// invalid name is rejected by Validate and falls back to circles here.
func (c Config) Kind() ShapeKind {
	if c.Square {
		return KindSquare
	}
	k, _ := ParseShapeKind(c.Shape)
	return k
}

// ListenAddr is the host:port the viewer binds.
func (c Config) ListenAddr() string {
	return net.JoinHostPort(c.Addr, strconv.Itoa(c.Port))
}

// ViewerURL is the status page link printed at startup. Wildcard binds are
// shown as localhost.
func (c Config) ViewerURL() string {
	host := c.Addr
	switch host {
	case "", "0.0.0.0", "::", "[::]":
		host = "localhost"
	}
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Port)) + "/lisa"
}

// Rows lists the configuration for logx.PrintConfig.
func (c Config) Rows() []logx.Row {
	seed := any(c.Seed)
	if c.Seed == 0 {
		seed = "time-based"
	}
	maxSize := any(c.MaxSize)
	if c.MaxSize == 0 {
		maxSize = "original"
	}
	return []logx.Row{
		{Key: "image", Value: c.Image},
		{Key: "shape", Value: c.Kind()},
		{Key: "listen", Value: c.ListenAddr()},
		{Key: "seed", Value: seed},
		{Key: "workers", Value: c.Workers},
		{Key: "max size", Value: maxSize},
		{Key: "tui", Value: c.TUI},
		{Key: "history", Value: c.HistorySize},
	}
}

// cliFlags holds the parsed flag values before they are merged into Config.
type cliFlags struct {
	config      string
	image       string
	shape       string
	square      bool
	addr        string
	port        int
	seed        int64
	workers     int
	maxSize     int
	tui         bool
	historySize int
}

func registerFlags(fs *flag.FlagSet) *cliFlags {
	def := DefaultConfig()
	f := &cliFlags{}
	fs.StringVar(&f.config, "config", "", "optional TOML config file")
	fs.StringVar(&f.image, "image", def.Image, "target image (jpeg, png, gif, bmp, tiff, webp)")
	fs.StringVar(&f.shape, "shape", def.Shape, "shape variant: circle or square")
	fs.BoolVar(&f.square, "square", def.Square, "evolve squares instead of circles (same as -shape square)")
	fs.StringVar(&f.addr, "addr", def.Addr, "viewer listen host")
	fs.IntVar(&f.port, "port", def.Port, "viewer listen port")
	fs.Int64Var(&f.seed, "seed", def.Seed, "random seed (0 = time-based, nonzero = reproducible)")
	fs.IntVar(&f.workers, "workers", def.Workers, "parallel render/score workers")
	fs.IntVar(&f.maxSize, "max-size", def.MaxSize, "downscale the target so its longest side is at most this (0 = keep)")
	fs.BoolVar(&f.tui, "tui", def.TUI, "show the terminal dashboard")
	fs.IntVar(&f.historySize, "history", def.HistorySize, "score samples kept for /history.png")
	return f
}

// ParseConfig resolves defaults, the optional config file and the flags
// that were explicitly set on the command line, in that order.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	f := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if f.config != "" {
		if err := LoadConfigFile(f.config, &cfg); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "image":
			cfg.Image = f.image
		case "shape":
			cfg.Shape = f.shape
		case "square":
			cfg.Square = f.square
		case "addr":
			cfg.Addr = f.addr
		case "port":
			cfg.Port = f.port
		case "seed":
			cfg.Seed = f.seed
		case "workers":
			cfg.Workers = f.workers
		case "max-size":
			cfg.MaxSize = f.maxSize
		case "tui":
			cfg.TUI = f.tui
		case "history":
			cfg.HistorySize = f.historySize
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
