package entity

import "time"

// Prioridades de anuncio.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Announcement comunicado de RRHH. Inmutable una vez publicado.
type Announcement struct {
	ID         string
	Title      string
	Content    string
	Author     string // nombre del usuario HR que publica
	Department string // vacío = toda la empresa
	Priority   string
	CreatedAt  time.Time
}

// ValidPriority verifica que la prioridad sea una de las conocidas.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
