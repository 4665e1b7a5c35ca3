package model

import "time"

// CareerApplication is bound from a multipart form; the resume file travels separately.
type CareerApplication struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name" form:"full_name" validate:"required,max=100"`
	Email       string    `json:"email" form:"email" validate:"required,email"`
	Phone       string    `json:"phone" form:"phone" validate:"required,max=15"`
	Position    string    `json:"position" form:"position" validate:"required,max=100"`
	CoverLetter string    `json:"cover_letter" form:"cover_letter"`
	Resume      string    `json:"resume"`
	CreatedAt   time.Time `json:"created_at"`
}

type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Subject   string    `json:"subject" validate:"required,max=200"`
	Message   string    `json:"message" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

type CpuInquiry struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required,max=100"`
	Email        string    `json:"email" validate:"required,email"`
	Phone        string    `json:"phone" validate:"required,max=15"`
	Organization string    `json:"organization" validate:"max=200"`
	Message      string    `json:"message" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
}
