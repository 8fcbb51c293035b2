package store

import (
	"errors"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultDataDir = "~/.daybook"
	envPrefix      = "DAYBOOK"
)

// Config locates the data directory and, optionally, a journal file that
// overrides the one stored in settings.
type Config interface {
	DataDir() string
	JournalPath() string
}

// LoadConfig reads .daybook.yaml from $DAYBOOK_CONFIG_PATH, the working
// directory or the home directory. DAYBOOK_DATA and DAYBOOK_PATH override
// the file.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("data", defaultDataDir)
	v.SetDefault("path", "")
	v.SetConfigName(".daybook") // .yaml is implicit
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	data, err := homedir.Expand(v.GetString("data"))
	if err != nil {
		return nil, err
	}
	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Data: data, Path: path, File: v.ConfigFileUsed()}, nil
}

type fileConfig struct {
	Data string `json:"data"`
	Path string `json:"path"`
	File string `json:"file,omitempty"`
}

func (f *fileConfig) DataDir() string {
	return f.Data
}

func (f *fileConfig) JournalPath() string {
	return f.Path
}

// ConfigFile reports which config file was read, if any.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.File
	}
	return ""
}
