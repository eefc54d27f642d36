package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

// Config represents the CLI configuration.
type Config struct {
	Network     string `json:"network,omitempty"      yaml:"network,omitempty"`
	URL         string `json:"url,omitempty"          yaml:"url,omitempty"`
	Output      string `json:"output,omitempty"       yaml:"output,omitempty"`
	Verbose     bool   `json:"verbose"                yaml:"verbose"`
	NATSURL     string `json:"nats_url,omitempty"     yaml:"nats_url,omitempty"`
	NATSSubject string `json:"nats_subject,omitempty" yaml:"nats_subject,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Horizon CLI configuration stored in $HOME/.horizon/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration after flags and environment are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			return renderProperties(cmd.OutOrStdout(), config, [][2]string{
				{"Network", orNA(config.Network)},
				{"URL", orNA(config.URL)},
				{"Output", orNA(config.Output)},
				{"Verbose", formatBool(config.Verbose)},
				{"NATS URL", orNA(config.NATSURL)},
				{"NATS Subject", orNA(config.NATSSubject)},
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value.

Keys: network, url, output, verbose, nats_url, nats_subject`,
		Args: cobra.ExactArgs(constants.KeyValueSplitParts),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", args[0], args[1])

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

			err := unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cleared all configuration")

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		Network:     viper.GetString(keyNetwork),
		URL:         viper.GetString(keyURL),
		Output:      viper.GetString(keyOutput),
		Verbose:     viper.GetBool(keyVerbose),
		NATSURL:     viper.GetString(keyNATSURL),
		NATSSubject: viper.GetString(keyNATSSubject),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyNetwork:
		network := strings.ToLower(value)
		if network != constants.NetworkTestnet && network != constants.NetworkPublic {
			return fmt.Errorf("%w: %q", constants.ErrUnknownNetwork, value)
		}

		config.Network = network
	case keyURL:
		_, err := horizon.NewEndpoint(value)
		if err != nil {
			return err
		}

		config.URL = value
	case keyOutput:
		output := strings.ToLower(value)
		if output != constants.FormatTable && output != constants.FormatJSON && output != constants.FormatYAML {
			return fmt.Errorf("%w: %q", constants.ErrUnknownOutput, value)
		}

		config.Output = output
	case keyVerbose:
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %q", constants.ErrInvalidBooleanFlag, value)
		}

		config.Verbose = verbose
	case keyNATSURL:
		config.NATSURL = value
	case keyNATSSubject:
		config.NATSSubject = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case keyNetwork:
		config.Network = ""
	case keyURL:
		config.URL = ""
	case keyOutput:
		config.Output = ""
	case keyVerbose:
		config.Verbose = false
	case keyNATSURL:
		config.NATSURL = ""
	case keyNATSSubject:
		config.NATSSubject = ""
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".horizon", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
