package models

import "time"

// Offer is a bid by one user against a task. TaskID is not checked against
// the task store, so offers may reference tasks that do not exist.
type Offer struct {
	ID        string    `json:"_id"`
	TaskID    string    `json:"taskId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Deadline  Text      `json:"deadline"`
	Pitch     Text      `json:"pitch"`
	CreatedAt time.Time `json:"createdAt"`
}
