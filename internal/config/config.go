package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type PlayerConfig struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Output string `yaml:"output"` // stderr, stdout or a file path
}

type PlayersConfig struct {
	Player1 PlayerConfig `yaml:"player1"`
	Player2 PlayerConfig `yaml:"player2"`
}

// List returns the players in turn order.
func (p PlayersConfig) List() [2]PlayerConfig {
	return [2]PlayerConfig{p.Player1, p.Player2}
}

type Config struct {
	Players PlayersConfig `yaml:"players"`
	Color   bool          `yaml:"color"`
	Logging LoggingConfig `yaml:"logging"`
}

func DefaultConfig() *Config {
	return &Config{
		Players: PlayersConfig{
			Player1: PlayerConfig{Name: "Player 1", Symbol: "X"},
			Player2: PlayerConfig{Name: "Player 2", Symbol: "O"},
		},
		Color: true,
		Logging: LoggingConfig{
			Level:  "warn",
			Output: "stderr",
		},
	}
}

// Load reads the YAML file at path on top of the defaults and then applies
// CONNECT4_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	for i, p := range []*PlayerConfig{&c.Players.Player1, &c.Players.Player2} {
		prefix := fmt.Sprintf("CONNECT4_PLAYER%d_", i+1)
		p.Name = GetEnv(prefix+"NAME", p.Name)
		p.Symbol = GetEnv(prefix+"SYMBOL", p.Symbol)
	}
	c.Color = GetEnvAsBool("CONNECT4_COLOR", c.Color)
	c.Logging.Level = GetEnv("CONNECT4_LOG_LEVEL", c.Logging.Level)
	c.Logging.Output = GetEnv("CONNECT4_LOG_OUTPUT", c.Logging.Output)
}

func (c *Config) Validate() error {
	players := c.Players.List()
	for i, p := range players {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("player %d: name must not be empty", i+1)
		}
		r, size := utf8.DecodeRuneInString(p.Symbol)
		if size == 0 || size != len(p.Symbol) || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return fmt.Errorf("player %d: symbol %q must be a single visible character", i+1, p.Symbol)
		}
	}
	if players[0].Symbol == players[1].Symbol {
		return fmt.Errorf("players must use different symbols, both are %q", players[0].Symbol)
	}

	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	if c.Logging.Output == "" {
		return fmt.Errorf("logging output must not be empty")
	}
	return nil
}

func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zap.InfoLevel, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvAsBool keeps the default when the variable is unset or unparsable.
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
