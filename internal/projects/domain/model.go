package domain

import "time"

// Project represents a single tracked project record.
// It is intentionally storage-agnostic and used across repository, service
// and HTTP layers.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"project_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"date_added"`
}
