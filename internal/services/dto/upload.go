package dto

type UploadResponse struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

type MultiUploadResponse struct {
	Files []UploadResponse `json:"files"`
}
