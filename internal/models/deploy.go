// internal/models/deploy.go
package models

import "time"

// DeployResult is the non-throwing outcome of a deployment attempt.
type DeployResult struct {
	Success    bool   `json:"success"`
	NetlifyURL string `json:"netlifyUrl,omitempty"`
	Error      string `json:"error,omitempty"`
}

// DeployRecord tracks one deployment for status polling by the UI.
type DeployRecord struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"siteId,omitempty"`
	DeployID  string    `json:"deployId,omitempty"`
	State     string    `json:"state"` // pending|uploading|processing|ready|error|timed_out
	URL       string    `json:"url,omitempty"`
	Error     string    `json:"error,omitempty"`
	StartedAt time.Time `json:"startedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Deploy record states
const (
	DeployStatePending    = "pending"
	DeployStateUploading  = "uploading"
	DeployStateProcessing = "processing"
	DeployStateReady      = "ready"
	DeployStateError      = "error"
	DeployStateTimedOut   = "timed_out"
)
