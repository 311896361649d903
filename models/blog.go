package models

import "time"

// Blog is the sole persisted entity: a single post with a free-text author
// (no linkage to the authenticated account).
type Blog struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Author    string    `json:"author" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"type:timestamptz;not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"type:timestamptz;not null"`
}

func (Blog) TableName() string {
	return "blogs"
}

// BlogPayload is the client-writable portion of a Blog. The id and both
// timestamps are always server-assigned and never decoded from the request.
type BlogPayload struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required,max=100"`
}
