package models

// FileStatus is the processing state reported by the backend.
type FileStatus string

const (
	FileStatusQueued     FileStatus = "queued"
	FileStatusProcessing FileStatus = "processing"
	FileStatusCompleted  FileStatus = "completed"
	FileStatusFailed     FileStatus = "failed"
)

// Done reports whether processing has finished, successfully or not.
func (s FileStatus) Done() bool {
	return s == FileStatusCompleted || s == FileStatusFailed
}

// FileRecord describes an uploaded file and its processing state.
type FileRecord struct {
	ID        ID         `json:"id"`
	ProjectID ID         `json:"project_id,omitempty"`
	Filename  string     `json:"filename"`
	Status    FileStatus `json:"status"`
	Progress  int        `json:"progress,omitempty"`
	Error     string     `json:"error,omitempty"`
	CreatedAt string     `json:"created_at,omitempty"`
}
