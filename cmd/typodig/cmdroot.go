// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/siemens/typodig/fqdn"
	"github.com/siemens/typodig/pool"
	"github.com/siemens/typodig/resolve"
	"github.com/siemens/typodig/variant"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/thediveo/lxkns/log"
)

// envPrefix is the prefix of environment variables overriding flag defaults,
// such as TYPODIG_WORKERS.
const envPrefix = "TYPODIG"

// config is the effective configuration of a typodig run, after merging
// flags, environment variables and an optional configuration file.
type config struct {
	Keywords   []string
	Zones      []string
	Workers    int
	Timeout    time.Duration
	Nameserver string
	Netns      string
	LeetLimit  int
	Progress   bool
	DryRun     bool
	Debug      bool
}

func newRootCmd() (rootCmd *cobra.Command) {
	v := viper.New()
	rootCmd = &cobra.Command{
		Use:   "typodig [flags] keyword...",
		Short: "typodig generates typosquatting domains for keywords and digs up which of them resolve",
		Long: `typodig generates look-alike variants of the specified keywords, such as
brand names, combines them with a list of top-level domain zones and then
reports all candidate domains that resolve to IP addresses, in the form of
"domain : address address...".`,
		Version:      "0.9",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			if cfgfile := v.GetString("config"); cfgfile != "" {
				v.SetConfigFile(cfgfile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("cannot read configuration: %w", err)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, args)
			if err != nil {
				return err
			}
			if cfg.Debug {
				log.SetLevel(log.DebugLevel)
				log.Debugf("debug logging enabled")
			}
			var resolver resolve.Resolver
			if !cfg.DryRun {
				if resolver, err = newResolver(cfg); err != nil {
					return fmt.Errorf("cannot set up name resolution: %w", err)
				}
			}
			return DigAndReport(cmd.Context(), cfg, resolver, cmd.OutOrStdout())
		},
	}
	// Sets up the flags.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "",
		"configuration file (YAML, TOML, JSON) with flag defaults")
	flags.Bool("debug", false,
		"enable debugging output")
	flags.StringSlice("zones", fqdn.DefaultZones(),
		"top-level domain zones to combine keyword variants with")
	flags.Int("workers", 50,
		"number of concurrent resolution workers")
	flags.Duration("timeout", pool.DefaultTimeout,
		"time limit of an individual lookup")
	flags.String("nameserver", "",
		"query this DNS server directly instead of using the system resolver")
	flags.String("netns", "",
		"query the DNS server from inside the network namespace at this path, requires --nameserver")
	flags.Int("leet-limit", variant.DefaultLeetLimit,
		"maximum number of letters taking part in digit substitutions")
	flags.Bool("progress", false,
		"show a live progress line on stderr")
	flags.Bool("dry-run", false,
		"only print the candidate domains, without resolving them")
	return
}

// bindFlags binds the specified flags to the viper instance, so that
// environment variables with the TYPODIG_ prefix and configuration files can
// override the flag defaults, while explicitly set flags always win.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("cannot bind flags to configuration: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// loadConfig returns the validated configuration from the specified viper
// instance, together with the keywords passed as CLI args.
func loadConfig(v *viper.Viper, args []string) (*config, error) {
	cfg := &config{
		Zones:      fqdn.NormalizeZones(splitList(v.GetStringSlice("zones"))),
		Workers:    v.GetInt("workers"),
		Timeout:    v.GetDuration("timeout"),
		Nameserver: strings.TrimSpace(v.GetString("nameserver")),
		Netns:      strings.TrimSpace(v.GetString("netns")),
		LeetLimit:  v.GetInt("leet-limit"),
		Progress:   v.GetBool("progress"),
		DryRun:     v.GetBool("dry-run"),
		Debug:      v.GetBool("debug"),
	}
	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			log.Warnf("skipping empty keyword")
			continue
		}
		keyword, err := variant.Normalize(arg)
		if err != nil {
			return nil, err
		}
		cfg.Keywords = append(cfg.Keywords, keyword)
	}
	if cfg.Workers < 1 || cfg.Workers > 1000 {
		return nil, fmt.Errorf("--workers out of range [1..1000]")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("--timeout must be positive")
	}
	if cfg.LeetLimit < 1 || cfg.LeetLimit > 24 {
		return nil, fmt.Errorf("--leet-limit out of range [1..24]")
	}
	if cfg.Netns != "" {
		if cfg.Nameserver == "" {
			return nil, fmt.Errorf("--netns requires --nameserver")
		}
		if _, err := os.Stat(cfg.Netns); err != nil {
			return nil, fmt.Errorf("invalid --netns: %w", err)
		}
	}
	return cfg, nil
}

// splitList splits list elements further at commas, as environment variables
// and configuration files might pass comma-separated lists as single
// elements.
func splitList(list []string) []string {
	elements := []string{}
	for _, el := range list {
		elements = append(elements, strings.Split(el, ",")...)
	}
	return elements
}
