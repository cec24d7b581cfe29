package commands

import (
	"github.com/braidnetworks/braid/src/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var _config = config.NewDefaultConfig()

//RootCmd is the root command for Braid
var RootCmd = &cobra.Command{
	Use:              "braid",
	Short:            "braid consensus store",
	TraverseChildren: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func init() {
	RootCmd.PersistentFlags().String("datadir", _config.DataDir, "Top-level directory for configuration and data")
	RootCmd.PersistentFlags().String("log", _config.LogLevel, "debug, info, warn, error, fatal, panic")
	RootCmd.PersistentFlags().String("log-file", _config.LogFile, "Optional file to mirror log output to")
	RootCmd.PersistentFlags().String("moniker", _config.Moniker, "Optional name")
	RootCmd.PersistentFlags().Int("cache-size", _config.CacheSize, "Number of items in LRU caches")
}

func loadConfig(cmd *cobra.Command) error {

	err := bindFlagsLoadViper(cmd)
	if err != nil {
		return err
	}

	_config.SetDataDir(_config.DataDir)

	_config.Logger().WithFields(logrus.Fields{
		"DataDir":   _config.DataDir,
		"LogLevel":  _config.LogLevel,
		"LogFile":   _config.LogFile,
		"Moniker":   _config.Moniker,
		"CacheSize": _config.CacheSize,
	}).Debug("Config")

	return nil
}

// Bind all flags and read the config into viper
func bindFlagsLoadViper(cmd *cobra.Command) error {
	// Register flags with viper. Include flags from this command and all other
	// persistent flags from the parent
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// first unmarshal to read from CLI flags
	if err := viper.Unmarshal(_config); err != nil {
		return err
	}

	// look for config file in [datadir]/braid.toml (.json, .yaml also work)
	viper.SetConfigName("braid")         // name of config file (without extension)
	viper.AddConfigPath(_config.DataDir) // search root directory

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		_config.Logger().Debugf("Using config file: %s", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		_config.Logger().Debugf("No config file found in: %s", _config.DataDir)
	} else {
		return err
	}

	// second unmarshal to read from config file
	return viper.Unmarshal(_config)
}
