package model

import "time"

type Post struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Text    string    `gorm:"type:text;not null" json:"text"`
	PubDate time.Time `gorm:"autoCreateTime;index" json:"pub_date"`

	AuthorID uint  `gorm:"not null;index" json:"author_id"`
	Author   User  `json:"author"`
	GroupID  *uint `gorm:"index" json:"group_id,omitempty"`
	Group    *Group `json:"group,omitempty"`

	// Image is a path relative to the media root, e.g. "posts/small.gif".
	Image string `gorm:"size:255" json:"image,omitempty"`
}
