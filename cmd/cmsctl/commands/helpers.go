package commands

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/cmsapi/internal/constants"
	"github.com/fivetwenty-io/cmsapi/pkg/cms"
	"github.com/fivetwenty-io/cmsapi/pkg/cmsclient"
)

// Output formats accepted by the --output flag.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// CreateContext builds a data context from the current viper configuration.
// When requireAuth is true, missing credentials are an error; otherwise the
// context is read-only unless credentials happen to be configured.
func CreateContext(requireAuth bool) (cms.DataContext, error) {
	host := viper.GetString("host")
	if host == "" {
		return nil, constants.ErrNoHostConfigured
	}

	username := viper.GetString("username")
	password := viper.GetString("password")

	if requireAuth && (username == "" || password == "") {
		return nil, constants.ErrNotLoggedIn
	}

	client, err := cmsclient.New(&cms.Config{
		Host:           host,
		Username:       username,
		Password:       password,
		EncryptHeaders: viper.GetBool("encrypt_headers"),
		Debug:          viper.GetBool("verbose"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// resolveResponseFormat maps the --format flag to a wire response format.
func resolveResponseFormat() (cms.ResponseFormat, error) {
	switch viper.GetString("format") {
	case "json", "":
		return cms.FormatJSON, nil
	case "xml":
		return cms.FormatXML, nil
	default:
		return "", constants.ErrInvalidResponseFormat
	}
}

// parseFields converts name=value assignments into form field values.
func parseFields(assignments []string) (url.Values, error) {
	fields := url.Values{}

	for _, assignment := range assignments {
		name, value, found := strings.Cut(assignment, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidFieldAssignment, assignment)
		}

		fields.Set(name, value)
	}

	return fields, nil
}

// checkEnvelope turns a non-2xx call outcome into a CLI error, surfacing the
// captured failure detail when one was recorded.
func checkEnvelope(envelope *cms.Envelope) error {
	if envelope.OK() {
		return nil
	}

	if message := envelope.Info().ErrorMessage; message != "" {
		return fmt.Errorf("request failed (%d %s): %s", //nolint:err113
			envelope.StatusCode, envelope.StatusDescription, message)
	}

	return fmt.Errorf("request failed: %d %s", envelope.StatusCode, envelope.StatusDescription) //nolint:err113
}

func outputJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func outputYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}
