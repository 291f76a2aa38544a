package models

import "time"

// ContactMessage is a visitor inquiry captured from the contact form.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	FullName  string    `bson:"full_name" json:"full_name"`
	Mobile    string    `bson:"mobile" json:"mobile"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
