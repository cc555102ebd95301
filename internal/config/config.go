package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 客户端配置
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Sound SoundConfig `yaml:"sound"`
	Redis RedisConfig `yaml:"redis"`
	Log   LogConfig   `yaml:"log"`
}

// GameConfig 游戏配置
type GameConfig struct {
	ComputerDelay int    `yaml:"computer_delay_ms"` // 电脑出牌前的停顿（毫秒）
	Seed          uint64 `yaml:"seed"`              // 随机种子，0 表示使用系统熵源
}

// SoundConfig 音效配置
type SoundConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// RedisConfig Redis 配置，Addr 为空时不记录对局
type RedisConfig struct {
	Addr        string `yaml:"addr"`
	Password    string `yaml:"password"`
	DB          int    `yaml:"db"`
	HistorySize int    `yaml:"history_size"` // 保留的对局记录条数
}

// LogConfig 日志配置
type LogConfig struct {
	Dir string `yaml:"dir"` // 为空时使用 ~/.crazy-eights
}

const (
	defaultComputerDelay = 1500
	defaultSoundDir      = "assets/sounds"
	defaultHistorySize   = 50
)

// ComputerDelayDuration 返回电脑出牌停顿时长
func (c *GameConfig) ComputerDelayDuration() time.Duration {
	return time.Duration(c.ComputerDelay) * time.Millisecond
}

// SoundEnabled 音效是否开启，未配置时默认开启
func (c *SoundConfig) SoundEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults 设置默认值
func (c *Config) applyDefaults() {
	if c.Game.ComputerDelay <= 0 {
		c.Game.ComputerDelay = defaultComputerDelay
	}
	if c.Sound.Dir == "" {
		c.Sound.Dir = defaultSoundDir
	}
	if c.Redis.HistorySize <= 0 {
		c.Redis.HistorySize = defaultHistorySize
	}
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
