package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/cmsapi/internal/constants"
	"github.com/fivetwenty-io/cmsapi/pkg/cms"
	"github.com/fivetwenty-io/cmsapi/pkg/cmsclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to a CMS host",
		Long: `Verify credentials against a CMS host and save the host and username
to the config file. The password is never written to disk; supply it per
invocation with --password, the CMSCTL_PASSWORD environment variable, or
the interactive prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get host
			host := viper.GetString("host")

			if host == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("CMS host: ")
				host, _ = reader.ReadString('\n')
				host = strings.TrimSpace(host)
			}

			if host == "" {
				return constants.ErrNoHostConfigured
			}

			// Get credentials
			username := viper.GetString("username")

			if username == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Username: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			password := viper.GetString("password")

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			// Create client; this validates the host and the credential pair
			client, err := cmsclient.New(&cms.Config{
				Host:           host,
				Username:       username,
				Password:       password,
				EncryptHeaders: viper.GetBool("encrypt_headers"),
				Debug:          viper.GetBool("verbose"),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Test connectivity
			_, err = client.GetPublicKey(context.Background())
			if err != nil {
				fmt.Printf("Warning: could not fetch server public key: %v\n", err)
			}

			// Persist host and username; the password stays out of the file
			viper.Set("host", client.HostName())
			viper.Set("username", username)

			err = saveConfig()
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("Logged in to %s as %s\n", client.HostName(), username)

			return nil
		},
	}
}
