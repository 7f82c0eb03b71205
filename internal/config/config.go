package config

import (
	"log"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
)

type MainConfig struct {
	AppName     string `toml:"appName"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	SSLRedirect bool   `toml:"sslRedirect"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	LogPath    string `toml:"logPath"`
	MaxSize    int    `toml:"maxSize"`
	MaxBackups int    `toml:"maxBackups"`
	MaxAge     int    `toml:"maxAge"`
	Compress   bool   `toml:"compress"`
}

type JwtConfig struct {
	Key         string `toml:"key"`
	ExpireHours int    `toml:"expireHours"`
	Issuer      string `toml:"issuer"`
}

type KafkaConfig struct {
	Enabled      bool     `toml:"enabled"`
	Brokers      []string `toml:"brokers"`
	ClientID     string   `toml:"clientID"`
	ContactTopic string   `toml:"contactTopic"`
	Version      string   `toml:"version"`
}

// MCPConfig MCP Server 配置
type MCPConfig struct {
	Enabled bool   `toml:"enabled"`
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type Config struct {
	MainConfig  `toml:"mainConfig"`
	LogConfig   `toml:"logConfig"`
	JwtConfig   `toml:"jwtConfig"`
	KafkaConfig `toml:"kafkaConfig"`
	MCPConfig   `toml:"mcpConfig"`
}

// DefaultConfigPath 未设置 CONTACTBOOK_CONFIG 时读取的配置文件
const DefaultConfigPath = "configs/config_local.toml"

var (
	config   *Config
	loadOnce sync.Once
)

// Default 返回默认配置
func Default() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName: "ContactBook",
			Host:    "0.0.0.0",
			Port:    8000,
		},
		LogConfig: LogConfig{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
		JwtConfig: JwtConfig{
			ExpireHours: 24,
		},
		KafkaConfig: KafkaConfig{
			ClientID:     "contactbook",
			ContactTopic: "contactbook.contact.events",
			Version:      "2.8.0",
		},
		MCPConfig: MCPConfig{
			Name:    "contactbook",
			Version: "1.0.0",
		},
	}
}

// LoadConfig 在默认配置之上解码 path 指向的 toml 文件
func LoadConfig(path string) (*Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return conf, err
	}
	return conf, nil
}

func GetConfig() *Config {
	loadOnce.Do(func() {
		path := os.Getenv("CONTACTBOOK_CONFIG")
		if path == "" {
			path = DefaultConfigPath
		}
		conf, err := LoadConfig(path)
		if err != nil {
			log.Printf("加载配置文件失败: %v, 尝试使用默认设置", err)
		}
		config = conf
	})
	return config
}
