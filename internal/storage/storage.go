// Package storage abstracts the object store holding product images.
package storage

import "context"

// UploadTarget is a one-time destination for a direct client upload. The
// client PUTs the file to URL and then passes StorageID into product create.
type UploadTarget struct {
	URL       string `json:"uploadUrl"`
	StorageID string `json:"storageId"`
}

// FileStore exposes the three primitives the marketplace consumes.
type FileStore interface {
	// GenerateUploadURL mints a short-lived upload URL plus the storage
	// reference the uploaded file will live under.
	GenerateUploadURL(ctx context.Context) (*UploadTarget, error)
	// ResolveURL exchanges a storage reference for a fetchable URL.
	ResolveURL(ctx context.Context, storageID string) (string, error)
	// Delete removes the stored file.
	Delete(ctx context.Context, storageID string) error
}
