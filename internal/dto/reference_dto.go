package dto

import "time"

type ReferenceCreateRequest struct {
	Type  string `json:"type" binding:"required,oneof=file link" example:"link"`
	Title string `json:"title" binding:"required,max=255"`
	URL   string `json:"url" binding:"required"`
}

type ReferenceResponse struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
