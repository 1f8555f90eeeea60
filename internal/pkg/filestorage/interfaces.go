package filestorage

import (
	"mime/multipart"
)

// FileStorage stores uploaded files and removes replaced ones.
type FileStorage interface {
	// SaveFile stores an uploaded file under a collision-free name and
	// returns the publicly accessible path.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a previously stored file. Deleting a file that no
	// longer exists is not an error.
	DeleteFile(filePath string) error
}
