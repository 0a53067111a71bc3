package repository

import "context"

// PluginDataRepository stores the opaque configuration blob of each plugin.
type PluginDataRepository interface {
	// Load returns the blob saved for pluginID.
	// Returns nil if nothing has been saved yet.
	Load(ctx context.Context, pluginID string) ([]byte, error)

	// Save replaces the blob for pluginID.
	Save(ctx context.Context, pluginID string, data []byte) error
}
