package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
)

// Config holds the CLI configuration.
type Config struct {
	Subscription  string `json:"subscription,omitempty"   mapstructure:"subscription"   yaml:"subscription,omitempty"`
	ResourceGroup string `json:"resource-group,omitempty" mapstructure:"resource-group" yaml:"resource-group,omitempty"`
	Account       string `json:"account,omitempty"        mapstructure:"account"        yaml:"account,omitempty"`
	Endpoint      string `json:"endpoint,omitempty"       mapstructure:"endpoint"       yaml:"endpoint,omitempty"`
	TenantID      string `json:"tenant-id,omitempty"      mapstructure:"tenant-id"      yaml:"tenant-id,omitempty"`
	ClientID      string `json:"client-id,omitempty"      mapstructure:"client-id"      yaml:"client-id,omitempty"`
	ClientSecret  string `json:"client-secret,omitempty"  mapstructure:"client-secret"  yaml:"client-secret,omitempty"`
	Token         string `json:"token,omitempty"          mapstructure:"token"          yaml:"token,omitempty"`
	Output        string `json:"output,omitempty"         mapstructure:"output"         yaml:"output,omitempty"`
	Verbose       bool   `json:"verbose,omitempty"        mapstructure:"verbose"        yaml:"verbose,omitempty"`
	// RetryMax and RetryWait tune the transport retries. Zero keeps the
	// library defaults.
	RetryMax  int           `json:"retry-max,omitempty"  mapstructure:"retry-max"  yaml:"retry-max,omitempty"`
	RetryWait time.Duration `json:"retry-wait,omitempty" mapstructure:"retry-wait" yaml:"retry-wait,omitempty"`
}

var stringKeys = []string{
	"subscription",
	"resource-group",
	"account",
	"endpoint",
	"tenant-id",
	"client-id",
	"client-secret",
	"token",
	"output",
}

// SetDefaults registers Viper defaults.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("endpoint", constants.DefaultEndpoint)
	v.SetDefault("output", defaultOutputFormat())
	v.SetDefault("verbose", false)
}

// BindFlags registers the global flags on the root command.
func BindFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringP("config", "c", "", "config file (default is $HOME/.azauto/config.yml)")
	f.StringP("subscription", "s", "", "Azure subscription id")
	f.StringP("resource-group", "g", "", "resource group name")
	f.StringP("account", "A", "", "automation account name")
	f.String("endpoint", "", "Azure Resource Manager endpoint")
	f.String("tenant-id", "", "tenant id for client secret authentication")
	f.String("client-id", "", "client id for client secret authentication")
	f.String("client-secret", "", "client secret for client secret authentication")
	f.StringP("token", "t", "", "pre-acquired bearer token")
	f.StringP("output", "o", "", "output format (table, json, yaml)")
	f.BoolP("verbose", "v", false, "log HTTP traffic to stderr")
	f.Int("retry-max", 0, "maximum retries of failed requests (0 uses the default)")
	f.Duration("retry-wait", 0, "minimum wait between retries (0 uses the default)")
}

// DefaultConfigPath returns $HOME/.azauto/config.yml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".azauto", "config.yml"), nil
}

// LoadConfig loads configuration from flags, environment variables, config file,
// and defaults using the Viper priority chain: flags > env > file > defaults.
func LoadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	SetDefaults(v)

	v.SetEnvPrefix("AZAUTO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := readConfigFile(v, cmd)
	if err != nil {
		return nil, err
	}

	for _, key := range stringKeys {
		bindFlagIfSet(v, cmd, key)
	}

	if cmd.Flags().Changed("verbose") {
		val, _ := cmd.Flags().GetBool("verbose")
		v.Set("verbose", val)
	}

	if cmd.Flags().Changed("retry-max") {
		val, _ := cmd.Flags().GetInt("retry-max")
		v.Set("retry-max", val)
	}

	if cmd.Flags().Changed("retry-wait") {
		val, _ := cmd.Flags().GetDuration("retry-wait")
		v.Set("retry-wait", val)
	}

	cfg := &Config{
		Subscription:  v.GetString("subscription"),
		ResourceGroup: v.GetString("resource-group"),
		Account:       v.GetString("account"),
		Endpoint:      v.GetString("endpoint"),
		TenantID:      v.GetString("tenant-id"),
		ClientID:      v.GetString("client-id"),
		ClientSecret:  v.GetString("client-secret"),
		Token:         v.GetString("token"),
		Output:        v.GetString("output"),
		Verbose:       v.GetBool("verbose"),
		RetryMax:      v.GetInt("retry-max"),
		RetryWait:     v.GetDuration("retry-wait"),
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper, cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		v.SetConfigFile(configPath)

		err := v.ReadInConfig()
		if err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}

		return nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return nil //nolint:nilerr // no home directory means no default config file
	}

	v.AddConfigPath(filepath.Dir(defaultPath))
	v.SetConfigName("config")
	v.SetConfigType("yml")

	err = v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("reading config file: %w", err)
	}

	return nil
}

// bindFlagIfSet sets a Viper key from a Cobra flag only when the flag was explicitly provided.
func bindFlagIfSet(v *viper.Viper, cmd *cobra.Command, name string) {
	if cmd.Flags().Changed(name) {
		val, _ := cmd.Flags().GetString(name)
		v.Set(name, val)
	}
}

// Scope returns the subscription, resource group and account, failing on
// the first one missing.
func (c *Config) Scope() (string, string, string, error) {
	switch {
	case c.Subscription == "":
		return "", "", "", constants.ErrNoSubscription
	case c.ResourceGroup == "":
		return "", "", "", constants.ErrNoResourceGroup
	case c.Account == "":
		return "", "", "", constants.ErrNoAccount
	}

	return c.Subscription, c.ResourceGroup, c.Account, nil
}

// Masked returns a copy with secrets hidden.
func (c *Config) Masked() *Config {
	masked := *c

	if masked.ClientSecret != "" {
		masked.ClientSecret = constants.Masked
	}

	if masked.Token != "" {
		masked.Token = constants.Masked
	}

	return &masked
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or persist CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}

			masked := cfg.Masked()

			return render(cmd.OutOrStdout(), cfg.Output, masked, []string{"Property", "Value"}, [][]string{
				{"Subscription", orNA(masked.Subscription)},
				{"Resource Group", orNA(masked.ResourceGroup)},
				{"Account", orNA(masked.Account)},
				{"Endpoint", masked.Endpoint},
				{"Tenant ID", orNA(masked.TenantID)},
				{"Client ID", orNA(masked.ClientID)},
				{"Client Secret", orNA(masked.ClientSecret)},
				{"Token", orNA(masked.Token)},
				{"Output", masked.Output},
			})
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the scope flags to a config file",
		Long:  "Persist subscription, resource group, account and endpoint so later commands can omit them. Secrets are never written.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}

			if path == "" {
				path, err = DefaultConfigPath()
				if err != nil {
					return err
				}
			}

			persisted := Config{
				Subscription:  cfg.Subscription,
				ResourceGroup: cfg.ResourceGroup,
				Account:       cfg.Account,
				Endpoint:      cfg.Endpoint,
				TenantID:      cfg.TenantID,
				ClientID:      cfg.ClientID,
			}

			data, err := yaml.Marshal(&persisted)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
			if err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}

			err = os.WriteFile(path, data, constants.ConfigFilePerm)
			if err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "file to write (default is $HOME/.azauto/config.yml)")

	return cmd
}
