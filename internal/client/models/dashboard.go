package models

// DashboardStats is the account summary shown after login.
type DashboardStats struct {
	TotalProjects  int    `json:"total_projects"`
	TotalFiles     int    `json:"total_files"`
	ProcessedFiles int    `json:"processed_files"`
	UploadsUsed    int    `json:"uploads_used"`
	UploadsLimit   int    `json:"uploads_limit"`
	Plan           string `json:"plan,omitempty"`
}

// UnlimitedUploads reports whether the plan has no upload quota.
func (s DashboardStats) UnlimitedUploads() bool { return s.UploadsLimit < 0 }

// Health is the body of GET /health.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
