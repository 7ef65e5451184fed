package models

import "time"

// Message is keyed by RecipientID on both write and read paths. The
// usernames are display copies taken at send time and go stale on rename.
type Message struct {
	ID                string    `json:"_id"`
	SenderID          string    `json:"senderId"`
	SenderUsername    string    `json:"senderUsername"`
	RecipientID       string    `json:"recipientId"`
	RecipientUsername string    `json:"recipientUsername"`
	Title             string    `json:"title"`
	Body              string    `json:"message"`
	CreatedAt         time.Time `json:"createdAt"`
}

// MessageView is what a recipient sees when polling their inbox.
type MessageView struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (m Message) View() MessageView {
	return MessageView{Title: m.Title, Message: m.Body}
}
