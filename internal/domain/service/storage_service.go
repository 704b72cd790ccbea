package service

import (
	"context"
	"io"
)

// Upload folders; the key inside a folder is store-generated.
const (
	FolderProductPhotos       = "product-photos"
	FolderCompanyCertificates = "company-certificates"
	FolderISOCertificates     = "iso-certificates"
)

// StorageService uploads binary blobs under a generated key within a named
// folder and returns a stable, publicly fetchable URL.
type StorageService interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
}
