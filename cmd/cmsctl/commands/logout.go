package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current CMS host",
		Long:  "Remove the stored username from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			username := viper.GetString("username")

			viper.Set("username", "")

			err := saveConfig()
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			if username != "" {
				fmt.Printf("Logged out %s\n", username)
			} else {
				fmt.Println("Logged out")
			}

			return nil
		},
	}
}
