package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewPublicKeyCommand creates the public-key command.
func NewPublicKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "public-key",
		Short: "Fetch the server's RSA public key",
		Long:  "Fetch the RSA public key material the server uses for encrypted credential headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateContext(false)
			if err != nil {
				return err
			}

			key, err := client.GetPublicKey(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch public key: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(key)
			case OutputFormatYAML:
				return outputYAML(key)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Modulus length", strconv.Itoa(len(key.Modulus)))
				_ = table.Append("Exponent", key.Exponent)
				_ = table.Append("Status", key.StatusDescription)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
