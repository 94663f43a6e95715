// internal/models/profile.go
package models

import "time"

// SavedProfile is the persisted onboarding record. The generators never read
// it directly; the API layer unwraps Business before calling them.
type SavedProfile struct {
	ID        string       `json:"id"`
	Business  BusinessInfo `json:"business"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
