package dto

import "time"

// CreateAnnouncementRequest publicación de un anuncio (HR).
type CreateAnnouncementRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Department string `json:"department,omitempty"` // vacío = toda la empresa
	Priority   string `json:"priority,omitempty"`   // Low | Medium | High; por defecto Medium
}

// AnnouncementResponse anuncio publicado.
type AnnouncementResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Department string    `json:"department,omitempty"`
	Priority   string    `json:"priority"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateReviewRequest alta de evaluación de desempeño (HR).
type CreateReviewRequest struct {
	EmployeeID string `json:"employee_id"`
	ReviewDate string `json:"review_date"` // YYYY-MM-DD; vacío = hoy
	Rating     int    `json:"rating"`      // 1..5
	Comments   string `json:"comments"`
}

// ReviewResponse evaluación de desempeño.
type ReviewResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	ReviewDate string    `json:"review_date"`
	Rating     int       `json:"rating"`
	Comments   string    `json:"comments"`
	CreatedAt  time.Time `json:"created_at"`
}
