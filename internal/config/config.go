package config

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultUserAgent is the default User-Agent string sent with all upstream requests.
	DefaultUserAgent = "ShowFinder/1.0 (+https://github.com/Belphemur/ShowFinder)"

	// DefaultTVMazeBaseURL is the root of the public TVmaze API.
	DefaultTVMazeBaseURL = "http://api.tvmaze.com/"

	// DefaultImageURL is shown for shows that TVmaze has no poster for.
	DefaultImageURL = "https://static.tvmaze.com/uploads/images/medium_portrait/147/369403.jpg"
)

type Config struct {
	TVMazeBaseURL         string `mapstructure:"tvmaze_base_url"`
	DefaultImageURL       string `mapstructure:"default_image_url"`
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s", "1m", etc.
	UserAgent             string `mapstructure:"user_agent"`
	MaxRetries            int    `mapstructure:"max_retries"`
	Server                struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	GRPC struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"grpc"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	LogLevel string `mapstructure:"log_level"`
	Log      struct {
		File       string `mapstructure:"file"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAgeDays int    `mapstructure:"max_age_days"`
	} `mapstructure:"log"`
	Session struct {
		Secret string `mapstructure:"secret"`
		TTL    string `mapstructure:"ttl"` // idle lifetime of a page, Go duration string
	} `mapstructure:"session"`
	Store struct {
		Provider string `mapstructure:"provider"` // "memory" or "redis"
		Size     int    `mapstructure:"size"`     // maximum number of pages kept by the memory provider
	} `mapstructure:"store"`
	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
	loggerMu     sync.RWMutex
)

func init() {
	// Console logger until the configuration tells us where else to write
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	logger = newLogger(config)
	level := applyLogLevel(config.LogLevel)

	logger.Info().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
	logger.Info().Msg("Configuration loaded successfully")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variable support
	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetDefault("tvmaze_base_url", DefaultTVMazeBaseURL)
	viper.SetDefault("default_image_url", DefaultImageURL)
	viper.SetDefault("client_timeout", "30s")
	viper.SetDefault("max_retries", 0)
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.address", "localhost")
	viper.SetDefault("grpc.enabled", true)
	viper.SetDefault("grpc.port", 50051)
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.port", 9090)
	viper.SetDefault("log.max_size_mb", 50)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("log.max_age_days", 14)
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("store.provider", "memory")
	viper.SetDefault("store.size", 10000)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.TVMazeBaseURL == "" {
		config.TVMazeBaseURL = DefaultTVMazeBaseURL
	}
	if config.DefaultImageURL == "" {
		config.DefaultImageURL = DefaultImageURL
	}

	return &config, nil
}

// newLogger builds the console logger and, when log.file is set, tees it into a
// size-rotated file.
func newLogger(cfg *Config) zerolog.Logger {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stdout}
	if cfg.Log.File != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
			Compress:   true,
		})
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// applyLogLevel parses raw and sets it as the global zerolog level, falling back to info.
func applyLogLevel(raw string) zerolog.Level {
	level := zerolog.InfoLevel
	if raw != "" {
		if parsedLevel, err := zerolog.ParseLevel(raw); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", raw).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)

	loggerMu.Lock()
	logger = logger.Level(level)
	loggerMu.Unlock()

	return level
}

// WatchConfig re-applies the log level whenever the config file changes.
// It is a no-op when no config file was found.
func WatchConfig() {
	if viper.ConfigFileUsed() == "" {
		return
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		level := applyLogLevel(viper.GetString("log_level"))
		l := GetLogger()
		l.Info().Str("file", e.Name).Str("level", level.String()).Msg("Config file changed, log level re-applied")
	})
	viper.WatchConfig()
}

func GetConfig() *Config {
	return globalConfig
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
