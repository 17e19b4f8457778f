package configx

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	envFile   string
	flagSetup sync.Once
)

// MustNew loads a config struct from the environment and panics on failure.
// Intended for process startup only.
func MustNew[T any](prefix string) *T {
	conf, err := New[T](prefix)
	if err != nil {
		panic(err)
	}
	return conf
}

// New populates T from environment variables with the given prefix. An env
// file may be supplied with the -env flag; otherwise ./.env is used when
// present. Values already set in the environment win over file values.
func New[T any](prefix string) (*T, error) {
	path := envFlagValue()
	switch {
	case path != "":
		if err := exportEnvFile(path); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", path, err)
		}
	default:
		if err := exportEnvFileIfPresent(".env"); err != nil {
			return nil, fmt.Errorf("load default env file: %w", err)
		}
	}

	var conf T
	if err := envconfig.Process(prefix, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func envFlagValue() string {
	flagSetup.Do(func() {
		if flag.Lookup("env") == nil {
			flag.StringVar(&envFile, "env", "", "path to .env file")
		}
		if !flag.Parsed() {
			flag.Parse()
		}
	})
	return strings.TrimSpace(envFile)
}

func exportEnvFileIfPresent(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	return exportEnvFile(path)
}

func exportEnvFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	for key, value := range v.AllSettings() {
		name := strings.ToUpper(key)
		if _, exists := os.LookupEnv(name); exists {
			continue
		}
		if err := os.Setenv(name, fmt.Sprint(value)); err != nil {
			return err
		}
	}
	return nil
}
