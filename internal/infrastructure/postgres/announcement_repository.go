package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.AnnouncementRepository = (*AnnouncementRepo)(nil)

// AnnouncementRepo implementación del puerto AnnouncementRepository sobre PostgreSQL.
type AnnouncementRepo struct {
	q Querier
}

// NewAnnouncementRepository construye el adaptador de anuncios. Pasar pool o tx (Querier).
func NewAnnouncementRepository(q Querier) *AnnouncementRepo {
	return &AnnouncementRepo{q: q}
}

// Create persiste un anuncio. No hay update ni delete: son inmutables.
func (r *AnnouncementRepo) Create(a *entity.Announcement) error {
	query := `
		INSERT INTO announcements (id, title, content, author, department, priority, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Title, a.Content, a.Author, a.Department, a.Priority, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}
	return nil
}

// List devuelve todos los anuncios, los más recientes primero.
func (r *AnnouncementRepo) List() ([]*entity.Announcement, error) {
	query := `
		SELECT id, title, content, author, COALESCE(department, ''), priority, created_at
		FROM announcements ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Announcement
	for rows.Next() {
		var a entity.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.Department, &a.Priority, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
