package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/cmsapi/internal/constants"
)

// Config represents the CLI configuration persisted to disk. The password is
// deliberately absent: it is only accepted via flag, environment, or prompt.
type Config struct {
	Host           string `json:"host,omitempty"     yaml:"host,omitempty"`
	Username       string `json:"username,omitempty" yaml:"username,omitempty"`
	EncryptHeaders bool   `json:"encrypt_headers"    yaml:"encrypt_headers"`
	Output         string `json:"output"             yaml:"output"`
	Format         string `json:"format"             yaml:"format"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage cmsctl configuration including host, credentials, and output settings",
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
		Long:  "Display the current cmsctl configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(config)
			case OutputFormatYAML:
				return outputYAML(config)
			default:
				username := config.Username
				if username == "" {
					username = constants.NotAvailable
				}

				host := config.Host
				if host == "" {
					host = constants.NotAvailable
				}

				encrypt := constants.BooleanFalse
				if config.EncryptHeaders {
					encrypt = constants.BooleanTrue
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Setting", "Value")
				_ = table.Append("host", host)
				_ = table.Append("username", username)
				_ = table.Append("encrypt_headers", encrypt)
				_ = table.Append("output", config.Output)
				_ = table.Append("format", config.Format)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			switch key {
			case "host", "username", "output", "format", "encrypt_headers":
				viper.Set(key, value)
			case "password":
				return constants.ErrPasswordNotStorable
			default:
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			err := saveConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Set %s to %s\n", key, value)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			switch key {
			case "host", "username", "output", "format", "encrypt_headers":
				viper.Set(key, "")
			default:
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			err := saveConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		Host:           viper.GetString("host"),
		Username:       viper.GetString("username"),
		EncryptHeaders: viper.GetBool("encrypt_headers"),
		Output:         viper.GetString("output"),
		Format:         viper.GetString("format"),
	}
}

func saveConfig() error {
	return saveConfigStruct(loadConfig())
}

func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".cmsctl")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
