package config

import (
	"os"
	"path/filepath"
	"testing"

	internal "github.com/lingprep/sentmos/sentmos"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite tests the config package functionality
type ConfigTestSuite struct {
	suite.Suite
	tempDir string
	origDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	// viper keeps global state; start every test from a clean slate
	viper.Reset()

	// Save original directory
	var err error
	suite.origDir, err = os.Getwd()
	require.NoError(suite.T(), err)

	// Create temporary directory for testing
	tempDir, err := os.MkdirTemp("", "sentmos-config-test-*")
	require.NoError(suite.T(), err)
	suite.tempDir = tempDir

	// Change to temp directory so LoadConfig("") cannot pick up a stray
	// config.yaml from the repo
	err = os.Chdir(tempDir)
	require.NoError(suite.T(), err)
}

func (suite *ConfigTestSuite) TearDownTest() {
	if suite.origDir != "" {
		os.Chdir(suite.origDir)
	}
	if suite.tempDir != "" {
		os.RemoveAll(suite.tempDir)
	}
}

func (suite *ConfigTestSuite) TestLoadConfigWithDefaults() {
	cfg, err := LoadConfig("")

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), cfg)

	assert.Equal(suite.T(), internal.DefaultModel, cfg.Sentmos.Model)
	assert.Equal(suite.T(), internal.DefaultMaxSeqLen, cfg.Sentmos.MaxSeqLen)
	assert.Equal(suite.T(), 0, cfg.Sentmos.Workers)
	assert.Equal(suite.T(), internal.DefaultCacheDir, cfg.Sentmos.CacheDir)
	assert.Equal(suite.T(), ".", cfg.Sentmos.DatasetDir)
}

func (suite *ConfigTestSuite) TestLoadConfigWithFile() {
	configContent := `
sentmos:
  model: "bert-base-german-cased"
  maxSeqLen: 128
  workers: 4
  cacheDir: "./test-cache"
  datasetDir: "./data"
`

	configFile := filepath.Join(suite.tempDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(configContent), 0o644)
	require.NoError(suite.T(), err)

	cfg, err := LoadConfig(configFile)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), cfg)

	assert.Equal(suite.T(), "bert-base-german-cased", cfg.Sentmos.Model)
	assert.Equal(suite.T(), 128, cfg.Sentmos.MaxSeqLen)
	assert.Equal(suite.T(), 4, cfg.Sentmos.Workers)
	assert.Equal(suite.T(), "./test-cache", cfg.Sentmos.CacheDir)
	assert.Equal(suite.T(), "./data", cfg.Sentmos.DatasetDir)
}

func (suite *ConfigTestSuite) TestLoadConfigPartialFile() {
	// Values absent from the file fall back to defaults
	configContent := `
sentmos:
  model: "roberta-base"
`

	configFile := filepath.Join(suite.tempDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(configContent), 0o644)
	require.NoError(suite.T(), err)

	cfg, err := LoadConfig(configFile)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "roberta-base", cfg.Sentmos.Model)
	assert.Equal(suite.T(), internal.DefaultMaxSeqLen, cfg.Sentmos.MaxSeqLen)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidFile() {
	// An explicit non-existent path should error
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigMalformedFile() {
	malformedContent := `
sentmos:
  model: "bert-base-uncased"
  invalid_yaml: [unclosed bracket
`

	configFile := filepath.Join(suite.tempDir, "malformed.yaml")
	err := os.WriteFile(configFile, []byte(malformedContent), 0o644)
	require.NoError(suite.T(), err)

	cfg, err := LoadConfig(configFile)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestAppConfigGlobal() {
	cfg, err := LoadConfig("")
	require.NoError(suite.T(), err)

	// AppConfig should be set after loading
	assert.Equal(suite.T(), cfg.Sentmos.Model, AppConfig.Sentmos.Model)
	assert.Equal(suite.T(), cfg.Sentmos.MaxSeqLen, AppConfig.Sentmos.MaxSeqLen)
}
