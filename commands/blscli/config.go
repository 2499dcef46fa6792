package blscli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/signatory-io/bls"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultConfigName = "bls-cli.yaml"

type Config struct {
	// Variant selects the curve assignment: "minpk" or "minsig".
	Variant string `yaml:"variant,omitempty"`
	// Scheme is "basic", "aug" or "pop".
	Scheme string `yaml:"scheme,omitempty"`
	// CipherSuite is the domain separation tag, passed verbatim. The value
	// "standard" substitutes the standard suite for the variant and scheme.
	CipherSuite string `yaml:"cipher_suite,omitempty"`

	path string
}

func (c *Config) Default() {
	c.Variant = "minpk"
	c.Scheme = "basic"
}

func (c *Config) RegisterFlags(f *pflag.FlagSet) {
	f.StringVar(&c.path, "config", "", "configuration file (default "+defaultConfigName+" in the user config directory)")
	f.String("variant", "", "curve assignment: minpk or minsig")
	f.String("scheme", "", "signing scheme: basic, aug or pop")
	f.String("dst", "", "domain separation tag, or \"standard\" for the standard ciphersuite")
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultConfigName
	}
	return filepath.Join(dir, defaultConfigName)
}

// Load reads the configuration file if present and applies flag overrides.
func (c *Config) Load(f *pflag.FlagSet) error {
	path := c.path
	if path == "" {
		path = defaultConfigPath()
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	} else if c.path != "" {
		// an explicitly requested file must exist
		return err
	}
	for _, opt := range []struct {
		name string
		dst  *string
	}{
		{"variant", &c.Variant},
		{"scheme", &c.Scheme},
		{"dst", &c.CipherSuite},
	} {
		if f.Changed(opt.name) {
			v, err := f.GetString(opt.name)
			if err != nil {
				panic(err)
			}
			*opt.dst = v
		}
	}
	if _, err := c.variant(); err != nil {
		return err
	}
	_, err := c.options()
	return err
}

func (c *Config) variant() (variant, error) {
	switch c.Variant {
	case "", "minpk":
		return minPkVariant{}, nil
	case "minsig":
		return minSigVariant{}, nil
	default:
		return nil, fmt.Errorf("unknown curve assignment: %s", c.Variant)
	}
}

func (c *Config) options() (*bls.Options, error) {
	var opts bls.Options
	switch c.Scheme {
	case "", "basic":
		opts.Scheme = bls.Basic
	case "aug":
		opts.Scheme = bls.MessageAugmentation
	case "pop":
		opts.Scheme = bls.ProofOfPossession
	default:
		return nil, fmt.Errorf("unknown scheme: %s", c.Scheme)
	}
	switch c.CipherSuite {
	case "":
	case "standard":
		v, err := c.variant()
		if err != nil {
			return nil, err
		}
		opts.CipherSuite = []byte(v.StandardCipherSuite(opts.Scheme))
	default:
		opts.CipherSuite = []byte(c.CipherSuite)
	}
	return &opts, nil
}

func newConfigCommand(conf *Config) *cobra.Command {
	cmd := cobra.Command{
		Use:     "config",
		Aliases: []string{"conf"},
		Short:   "bls-cli configuration commands",
	}
	cmd.AddCommand(newConfigInitCommand(conf))
	return &cmd
}

func newConfigInitCommand(conf *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := yaml.Marshal(conf)
			if err != nil {
				return err
			}
			path := conf.path
			if path == "" {
				path = defaultConfigPath()
			}
			if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
				return err
			}
			if err := os.WriteFile(path, buf, 0600); err != nil {
				return err
			}
			log.WithField("path", path).Info("configuration written")
			return nil
		},
	}
}
