package model

import "time"

type MOU struct {
	ID           int64      `json:"id"`
	Organization string     `json:"organization" validate:"required,max=200"`
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description"`
	SignedOn     *Date      `json:"signed_on"`
	CreatedAt    time.Time  `json:"created_at"`
}

// GalleryImage is the public shape of a gallery record. Image holds the resolved URL.
type GalleryImage struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

type GalleryImageInput struct {
	Title    string `form:"title" validate:"required,max=200"`
	Category string `form:"category" validate:"required,max=100"`
}

type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category" validate:"max=100"`
	Link        string    `json:"link" validate:"omitempty,url"`
	CreatedAt   time.Time `json:"created_at"`
}

type CommunityItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category" validate:"max=100"`
	Link        string    `json:"link" validate:"omitempty,url"`
	CreatedAt   time.Time `json:"created_at"`
}
