package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador de evaluaciones. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create agrega una evaluación al historial (append-only).
func (r *ReviewRepo) Create(rev *entity.PerformanceReview) error {
	query := `
		INSERT INTO performance_reviews (id, employee_id, review_date, rating, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		rev.ID, rev.EmployeeID, rev.ReviewDate, rev.Rating, rev.Comments, rev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// ListByEmployee devuelve las evaluaciones de un empleado, las más recientes primero.
func (r *ReviewRepo) ListByEmployee(employeeID string) ([]*entity.PerformanceReview, error) {
	query := `
		SELECT id, employee_id, review_date, rating, COALESCE(comments, ''), created_at
		FROM performance_reviews WHERE employee_id = $1 ORDER BY review_date DESC`
	return r.list(query, employeeID)
}

// List devuelve todas las evaluaciones.
func (r *ReviewRepo) List() ([]*entity.PerformanceReview, error) {
	query := `
		SELECT id, employee_id, review_date, rating, COALESCE(comments, ''), created_at
		FROM performance_reviews ORDER BY review_date DESC`
	return r.list(query)
}

func (r *ReviewRepo) list(query string, args ...any) ([]*entity.PerformanceReview, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.PerformanceReview
	for rows.Next() {
		var rev entity.PerformanceReview
		if err := rows.Scan(&rev.ID, &rev.EmployeeID, &rev.ReviewDate, &rev.Rating, &rev.Comments, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}
