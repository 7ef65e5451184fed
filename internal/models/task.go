package models

import "time"

type Task struct {
	ID        string    `json:"_id"`
	Title     Text      `json:"title"`
	Detail    Text      `json:"detail"`
	Deadline  Text      `json:"deadline"`
	Mode      Text      `json:"mode"`
	Type      Text      `json:"type"`
	Budget    Text      `json:"budget"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskInput carries the client-supplied fields of a new task.
type TaskInput struct {
	Title    Text `json:"title"`
	Detail   Text `json:"detail"`
	Deadline Text `json:"deadline"`
	Mode     Text `json:"mode"`
	Type     Text `json:"type"`
	Budget   Text `json:"budget"`
}
