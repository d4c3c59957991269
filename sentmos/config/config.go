package config

import (
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/lingprep/sentmos/sentmos"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Sentmos SentmosConfig `mapstructure:"sentmos"`
}

// SentmosConfig stores the data-preparation settings.
type SentmosConfig struct {
	// Model is the pretrained tokenizer model name, e.g. "bert-base-uncased".
	Model     string `mapstructure:"model"`
	MaxSeqLen int    `mapstructure:"maxSeqLen"`
	Workers   int    `mapstructure:"workers"`
	CacheDir  string `mapstructure:"cacheDir"`
	// DatasetDir is where train/test CSV files are looked up by the consumer.
	DatasetDir string `mapstructure:"datasetDir"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("..")
		viper.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		viper.AddConfigPath(internal.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set default values
	viper.SetDefault("sentmos.model", internal.DefaultModel)
	viper.SetDefault("sentmos.maxSeqLen", internal.DefaultMaxSeqLen)
	viper.SetDefault("sentmos.workers", 0)
	viper.SetDefault("sentmos.cacheDir", internal.DefaultCacheDir)
	viper.SetDefault("sentmos.datasetDir", ".")

	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // e.g. sentmos.maxSeqLen becomes SENTMOS_MAXSEQLEN

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults will be used. This is not an
			// error for the application to halt on.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}
