package form

import (
	"path/filepath"
	"strings"
)

const (
	defaultDataDirectoryConstant     = "client_data"
	defaultUploadsSubdirectoryName   = "uploads"
	defaultDraftsSubdirectoryName    = "drafts"
	defaultResponsesSubdirectoryName = "responses"
)

// CommandConfiguration captures persistent settings shared by the form commands.
type CommandConfiguration struct {
	Catalog            string `mapstructure:"catalog"`
	DataDirectory      string `mapstructure:"data_dir"`
	UploadsDirectory   string `mapstructure:"uploads_dir"`
	DraftsDirectory    string `mapstructure:"drafts_dir"`
	ResponsesDirectory string `mapstructure:"responses_dir"`
}

// DefaultCommandConfiguration returns baseline configuration values for the form commands.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		DataDirectory: defaultDataDirectoryConstant,
	}
}

// DefaultConfigurationValues exposes the baseline configuration as flattened
// keys under the provided configuration prefix.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKey + ".data_dir": defaults.DataDirectory,
	}
}

// sanitize trims whitespace and derives unset directories from the data directory.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := CommandConfiguration{
		Catalog:            strings.TrimSpace(configuration.Catalog),
		DataDirectory:      strings.TrimSpace(configuration.DataDirectory),
		UploadsDirectory:   strings.TrimSpace(configuration.UploadsDirectory),
		DraftsDirectory:    strings.TrimSpace(configuration.DraftsDirectory),
		ResponsesDirectory: strings.TrimSpace(configuration.ResponsesDirectory),
	}

	if len(sanitized.DataDirectory) == 0 {
		sanitized.DataDirectory = defaultDataDirectoryConstant
	}
	if len(sanitized.UploadsDirectory) == 0 {
		sanitized.UploadsDirectory = filepath.Join(sanitized.DataDirectory, defaultUploadsSubdirectoryName)
	}
	if len(sanitized.DraftsDirectory) == 0 {
		sanitized.DraftsDirectory = filepath.Join(sanitized.DataDirectory, defaultDraftsSubdirectoryName)
	}
	if len(sanitized.ResponsesDirectory) == 0 {
		sanitized.ResponsesDirectory = filepath.Join(sanitized.DataDirectory, defaultResponsesSubdirectoryName)
	}

	return sanitized
}
