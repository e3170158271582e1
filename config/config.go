// Package config reads the settings of the wscontract command from
// defaults, an optional YAML file, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/fiorix/wscontract/classname"
)

// Setting keys.
const (
	KeyGenerics    = "generics"
	KeyAdapters    = "adapters"
	KeyConversions = "conversions"
	KeyDebug       = "debug"
	KeyPretty      = "pretty"
	KeyFormat      = "format"
)

// Adapter modes. Auto applies adapters only when generics are off.
const (
	AdaptersAuto = "auto"
	AdaptersOn   = "on"
	AdaptersOff  = "off"
)

// Output formats of describe.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Name of the config file searched in the home directory, without
// extension.
const Name = ".wscontract"

// Config holds the settings of a run.
type Config struct {
	Generics bool
	Adapters string
	// Conversions remaps packages of client classnames, from package to
	// package.
	Conversions map[string]string
	Debug       bool
	Pretty      bool
	Format      string
}

// SetDefaults sets the default value of every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyGenerics, true)
	v.SetDefault(KeyAdapters, AdaptersAuto)
	v.SetDefault(KeyConversions, []string{})
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyPretty, true)
	v.SetDefault(KeyFormat, FormatYAML)
}

// ReadInConfig reads the config file at path into v, or the file named
// Name in the home directory when path is empty. A missing home config is
// not an error. Settings are also read from WSCONTRACT_* variables.
func ReadInConfig(v *viper.Viper, path string) error {
	v.SetEnvPrefix("wscontract")
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		v.AddConfigPath(home)
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
	}
	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			log.Debug().Msg("config file not found")
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	log.Debug().Str("file", v.ConfigFileUsed()).Msg("using config file")
	return nil
}

// Load returns the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	c := &Config{
		Generics: v.GetBool(KeyGenerics),
		Adapters: strings.ToLower(v.GetString(KeyAdapters)),
		Debug:    v.GetBool(KeyDebug),
		Pretty:   v.GetBool(KeyPretty),
		Format:   strings.ToLower(v.GetString(KeyFormat)),
	}
	switch c.Adapters {
	case AdaptersAuto, AdaptersOn, AdaptersOff:
	default:
		return nil, fmt.Errorf("config: %s must be %s, %s or %s, not %q",
			KeyAdapters, AdaptersAuto, AdaptersOn, AdaptersOff, c.Adapters)
	}
	switch c.Format {
	case FormatYAML, FormatJSON:
	default:
		return nil, fmt.Errorf("config: unknown %s %q", KeyFormat, c.Format)
	}
	conv, err := ParseConversions(v.GetStringSlice(KeyConversions))
	if err != nil {
		return nil, err
	}
	c.Conversions = conv
	return c, nil
}

// ParseConversions parses from=to package conversions.
func ParseConversions(pairs []string) (map[string]string, error) {
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		from, to, ok := strings.Cut(p, "=")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" {
			return nil, fmt.Errorf("config: bad conversion %q, want from=to", p)
		}
		m[from] = to
	}
	return m, nil
}

// Converter returns the classname converter configured by c.
func (c *Config) Converter() *classname.Converter {
	opts := []classname.Option{
		classname.WithGenerics(c.Generics),
		classname.WithConversions(c.Conversions),
	}
	switch c.Adapters {
	case AdaptersOn:
		opts = append(opts, classname.WithAdapters(true))
	case AdaptersOff:
		opts = append(opts, classname.WithAdapters(false))
	}
	return classname.New(opts...)
}
