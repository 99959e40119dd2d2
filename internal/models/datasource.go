package models

// UploadResult describes one CSV datasource as registered by the backend.
type UploadResult struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	Status   string `json:"status"` // "uploaded", "parsing", "parsed", "error"
	Columns  int    `json:"columns,omitempty"`
	Rows     int64  `json:"rows,omitempty"`
}

// UploadResponse is the per-file success body of the upload endpoint.
type UploadResponse struct {
	Data UploadResult `json:"data"`
}
