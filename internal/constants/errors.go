package constants

import "errors"

// Configuration errors.
var (
	ErrNoHostConfigured    = errors.New("no host configured, use 'cmsctl login' or set --host")
	ErrHostConfigNotFound  = errors.New("host configuration not found")
	ErrNotLoggedIn         = errors.New("not logged in, use 'cmsctl login' first")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrPasswordNotStorable = errors.New("passwords are not stored in the config file")
)

// Validation errors.
var (
	ErrInvalidOutputFormat    = errors.New("output format must be 'table', 'json', or 'yaml'")
	ErrInvalidResponseFormat  = errors.New("response format must be 'json' or 'xml'")
	ErrContentIDRequired      = errors.New("content ID is required")
	ErrContentFieldsRequired  = errors.New("at least one --field is required")
	ErrInvalidFieldAssignment = errors.New("fields must be given as name=value")
)
