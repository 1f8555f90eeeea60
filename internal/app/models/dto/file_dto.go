package dto

// UploadResponse carries the public path of a stored upload
type UploadResponse struct {
	FilePath string `json:"filePath" example:"uploads/3f1c9d2a-... .jpg"`
}
