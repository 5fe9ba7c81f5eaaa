package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for asset storage operations. Chat
// and post assets uploaded directly to the server go through this; assets
// uploaded out-of-band arrive as plain URLs and bypass it.
type FileStorage interface {
	// SaveFile saves a file and returns its public URL
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath lets you specify a subdirectory for storing the file
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error
}
