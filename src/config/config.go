package config

import (
	"crypto/ecdsa"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/braidnetworks/braid/src/common"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Default filenames.
const (
	// DefaultKeyfile is the default name of the file containing the validator's
	// private key
	DefaultKeyfile = "priv_key"

	// DefaultPeersFile is the default name of the file containing the peer set
	DefaultPeersFile = "peers.json"
)

// Default configuration values.
const (
	DefaultLogLevel  = "debug"
	DefaultCacheSize = 10000
)

// Config contains all the configuration properties of a Braid node.
type Config struct {
	// DataDir is the top-level directory containing Braid configuration and
	// data
	DataDir string `mapstructure:"datadir"`

	// LogLevel determines the chattiness of the log output.
	LogLevel string `mapstructure:"log"`

	// LogFile is an optional path to a file where log output is mirrored. If
	// empty, logs only go to stderr.
	LogFile string `mapstructure:"log-file"`

	// Moniker defines the friendly name of this node
	Moniker string `mapstructure:"moniker"`

	// CacheSize is the max number of items in in-memory caches.
	CacheSize int `mapstructure:"cache-size"`

	// Key is the private key of the validator.
	Key *ecdsa.PrivateKey

	logger *logrus.Logger
}

// NewDefaultConfig returns a config object with default values.
func NewDefaultConfig() *Config {
	config := &Config{
		DataDir:   DefaultDataDir(),
		LogLevel:  DefaultLogLevel,
		CacheSize: DefaultCacheSize,
	}

	return config
}

// NewTestConfig returns a config object with default values and a special
// logger for debugging tests.
func NewTestConfig(t testing.TB, level logrus.Level) *Config {
	config := NewDefaultConfig()
	config.logger = common.NewTestLogger(t, level)
	return config
}

// SetDataDir sets the top-level Braid directory.
func (c *Config) SetDataDir(dataDir string) {
	c.DataDir = dataDir
}

// Keyfile returns the full path of the file containing the private key.
func (c *Config) Keyfile() string {
	return filepath.Join(c.DataDir, DefaultKeyfile)
}

// PeersFile returns the full path of the file containing the peer set.
func (c *Config) PeersFile() string {
	return filepath.Join(c.DataDir, DefaultPeersFile)
}

// Logger returns a formatted logrus Entry, with prefix set to "braid". If
// LogFile is set, a hook mirrors all levels to that file.
func (c *Config) Logger() *logrus.Entry {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.Level = LogLevel(c.LogLevel)
		c.logger.Formatter = new(prefixed.TextFormatter)

		if c.LogFile != "" {
			f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				c.logger.WithError(err).Errorf("Failed to open log file %s, using stderr only", c.LogFile)
			} else {
				f.Close()
				pathMap := lfshook.PathMap{}
				for _, level := range logrus.AllLevels {
					if level <= c.logger.Level {
						pathMap[level] = c.LogFile
					}
				}
				c.logger.Hooks.Add(lfshook.NewHook(
					pathMap,
					&logrus.TextFormatter{},
				))
			}
		}
	}
	return c.logger.WithField("prefix", "braid")
}

// DefaultDataDir return the default directory name for top-level Braid config
// based on the underlying OS, attempting to respect conventions.
func DefaultDataDir() string {
	// Try to place the data folder in the user's home dir
	home := HomeDir()
	if home != "" {
		if runtime.GOOS == "darwin" {
			return filepath.Join(home, ".Braid")
		} else if runtime.GOOS == "windows" {
			return filepath.Join(home, "AppData", "Roaming", "Braid")
		} else {
			return filepath.Join(home, ".braid")
		}
	}
	// As we cannot guess a stable location, return empty and handle later
	return ""
}

// HomeDir returns the user's home directory.
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// LogLevel parses a string into a Logrus log level.
func LogLevel(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.DebugLevel
	}
}
