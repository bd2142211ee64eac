package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/helpwire-io/deskapi/internal/constants"
	"github.com/helpwire-io/deskapi/pkg/desk"
	"github.com/helpwire-io/deskapi/pkg/deskclient"
)

// Config represents the CLI configuration.
type Config struct {
	Endpoint   string `json:"endpoint,omitempty"    yaml:"endpoint,omitempty"`
	Subdomain  string `json:"subdomain,omitempty"   yaml:"subdomain,omitempty"`
	Email      string `json:"email,omitempty"       yaml:"email,omitempty"`
	APIToken   string `json:"api_token,omitempty"   yaml:"api_token,omitempty"`
	OAuthToken string `json:"oauth_token,omitempty" yaml:"oauth_token,omitempty"`

	// Global settings
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// configFilePath returns the path of the active config file.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".deskapi", "config.yml")
}

// loadConfig reads the CLI configuration from disk. A missing file yields an
// empty config.
func loadConfig() *Config {
	config := &Config{}

	path := configFilePath()
	if path == "" {
		return config
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own config flag
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

// saveConfig writes the CLI configuration to disk.
func saveConfig(config *Config) error {
	path := configFilePath()
	if path == "" {
		return constants.ErrConfigNotWritable
	}

	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// CreateClient builds an API client from flags, environment, and the config
// file. Flags win over the config file.
func CreateClient() (desk.Client, error) {
	config := loadConfig()

	endpoint := viper.GetString("endpoint")
	if endpoint == "" {
		endpoint = config.Endpoint
	}

	subdomain := viper.GetString("subdomain")
	if subdomain == "" {
		subdomain = config.Subdomain
	}

	if endpoint == "" && subdomain == "" {
		return nil, constants.ErrNoEndpointConfigured
	}

	if config.Email == "" && config.APIToken == "" && config.OAuthToken == "" {
		return nil, constants.ErrNoCredentials
	}

	deskConfig := &desk.Config{
		Endpoint:   endpoint,
		Subdomain:  subdomain,
		Email:      config.Email,
		APIToken:   config.APIToken,
		OAuthToken: config.OAuthToken,
		RetryMax:   constants.DefaultRetryMax,
	}

	if viper.GetBool("verbose") {
		deskConfig.Debug = true
		deskConfig.Logger = NewStderrLogger()
	}

	return deskclient.New(context.Background(), deskConfig)
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage desk CLI configuration including credentials and settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			display := *config
			if display.APIToken != "" {
				display.APIToken = Masked
			}

			if display.OAuthToken != "" {
				display.OAuthToken = Masked
			}

			return renderObject(display, func(table tableRenderer) {
				table.Header("Setting", "Value")
				_ = table.Append("endpoint", display.Endpoint)
				_ = table.Append("subdomain", display.Subdomain)
				_ = table.Append("email", display.Email)
				_ = table.Append("api_token", display.APIToken)
				_ = table.Append("oauth_token", display.OAuthToken)
				_ = table.Append("output", display.Output)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value (endpoint, subdomain, email, api_token, oauth_token, output)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigKey(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigKey(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Unset %s\n", args[0])

			return nil
		},
	}
}

func setConfigKey(config *Config, key, value string) error {
	switch key {
	case "endpoint":
		config.Endpoint = value
	case "subdomain":
		config.Subdomain = value
	case "email":
		config.Email = value
	case "api_token":
		config.APIToken = value
	case "oauth_token":
		config.OAuthToken = value
	case "output":
		if value != "" && value != constants.FormatTable && value != constants.FormatJSON && value != constants.FormatYAML {
			return constants.ErrInvalidOutput
		}

		config.Output = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	return nil
}
