package form

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/qledger/internal/attachment"
	"github.com/temirov/qledger/internal/catalog"
	"github.com/temirov/qledger/internal/draft"
	"github.com/temirov/qledger/internal/ledger"
	"github.com/temirov/qledger/internal/storage"
	"github.com/temirov/qledger/internal/workspace"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted form configuration.
type ConfigurationProvider func() CommandConfiguration

// WorkspaceProvider builds the client workspace for a catalog path.
type WorkspaceProvider func(catalogPath string, configuration CommandConfiguration, logger *zap.Logger) (*workspace.ClientWorkspace, error)

var errCatalogPathMissing = errors.New(errorCatalogPathMissingConstant)

// Dependencies carries the collaborators shared by the form command builders.
type Dependencies struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	WorkspaceProvider     WorkspaceProvider
}

func (dependencies Dependencies) resolveLogger() *zap.Logger {
	if dependencies.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := dependencies.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (dependencies Dependencies) resolveConfiguration() CommandConfiguration {
	if dependencies.ConfigurationProvider == nil {
		return DefaultCommandConfiguration().sanitize()
	}
	return dependencies.ConfigurationProvider().sanitize()
}

func (dependencies Dependencies) resolveWorkspace(command *cobra.Command) (*workspace.ClientWorkspace, error) {
	configuration := dependencies.resolveConfiguration()

	catalogPath, _ := command.Flags().GetString(flagCatalogName)
	if len(strings.TrimSpace(catalogPath)) == 0 {
		catalogPath = configuration.Catalog
	}
	if len(strings.TrimSpace(catalogPath)) == 0 {
		return nil, errCatalogPathMissing
	}

	workspaceProvider := dependencies.WorkspaceProvider
	if workspaceProvider == nil {
		workspaceProvider = buildFilesystemWorkspace
	}
	return workspaceProvider(catalogPath, configuration, dependencies.resolveLogger())
}

func buildFilesystemWorkspace(catalogPath string, configuration CommandConfiguration, logger *zap.Logger) (*workspace.ClientWorkspace, error) {
	loadedCatalog, loadError := catalog.LoadFile(catalogPath)
	if loadError != nil {
		return nil, loadError
	}

	fileSystem := storage.OSFileSystem{}
	draftStore := draft.NewStore(fileSystem, configuration.DraftsDirectory)
	attachmentStore := attachment.NewStore(fileSystem, configuration.DataDirectory, configuration.UploadsDirectory)
	ledgerWriter := ledger.NewWriter(fileSystem, configuration.ResponsesDirectory, storage.SystemClock{})

	return workspace.NewClientWorkspace(loadedCatalog, draftStore, attachmentStore, ledgerWriter, logger), nil
}
