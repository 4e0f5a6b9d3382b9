package hr

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// HRUseCase superficie de coordinación de RRHH: anuncios y evaluaciones de
// desempeño. Solo orquesta; el gating por rol ocurre en el middleware HTTP.
type HRUseCase struct {
	annRepo    repository.AnnouncementRepository
	reviewRepo repository.ReviewRepository
	empRepo    repository.EmployeeRepository
	userRepo   repository.UserRepository
}

// NewHRUseCase construye la superficie HR.
func NewHRUseCase(annRepo repository.AnnouncementRepository, reviewRepo repository.ReviewRepository, empRepo repository.EmployeeRepository, userRepo repository.UserRepository) *HRUseCase {
	return &HRUseCase{annRepo: annRepo, reviewRepo: reviewRepo, empRepo: empRepo, userRepo: userRepo}
}

// PostAnnouncement publica un anuncio. authorID es el usuario HR autenticado;
// su nombre queda como autor. Los anuncios son inmutables una vez publicados.
func (uc *HRUseCase) PostAnnouncement(authorID string, in dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	if in.Title == "" || in.Content == "" {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, domain.ErrInvalidInput
	}
	author := authorID
	if user, _ := uc.userRepo.GetByID(authorID); user != nil {
		author = user.Name
	}
	a := &entity.Announcement{
		ID:         uuid.New().String(),
		Title:      in.Title,
		Content:    in.Content,
		Author:     author,
		Department: in.Department,
		Priority:   priority,
		CreatedAt:  time.Now(),
	}
	if err := uc.annRepo.Create(a); err != nil {
		return nil, err
	}
	return toAnnouncementResponse(a), nil
}

// ListAnnouncements lista todos los anuncios.
func (uc *HRUseCase) ListAnnouncements() ([]dto.AnnouncementResponse, error) {
	list, err := uc.annRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AnnouncementResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAnnouncementResponse(a))
	}
	return items, nil
}

// AddReview agrega una evaluación de desempeño al historial del empleado.
// Valida rating 1..5 y que el empleado exista.
func (uc *HRUseCase) AddReview(in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if in.EmployeeID == "" || in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.empRepo.Exists(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrEmployeeNotFound
	}
	reviewDate := time.Now()
	if in.ReviewDate != "" {
		reviewDate, err = time.Parse(dateLayout, in.ReviewDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	r := &entity.PerformanceReview{
		ID:         uuid.New().String(),
		EmployeeID: in.EmployeeID,
		ReviewDate: reviewDate,
		Rating:     in.Rating,
		Comments:   in.Comments,
		CreatedAt:  time.Now(),
	}
	if err := uc.reviewRepo.Create(r); err != nil {
		return nil, err
	}
	return toReviewResponse(r), nil
}

// ListReviews lista todas las evaluaciones registradas.
func (uc *HRUseCase) ListReviews() ([]dto.ReviewResponse, error) {
	list, err := uc.reviewRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReviewResponse(r))
	}
	return items, nil
}

// ListReviewsFor lista las evaluaciones de un empleado.
func (uc *HRUseCase) ListReviewsFor(employeeID string) ([]dto.ReviewResponse, error) {
	list, err := uc.reviewRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReviewResponse(r))
	}
	return items, nil
}

func toAnnouncementResponse(a *entity.Announcement) *dto.AnnouncementResponse {
	if a == nil {
		return nil
	}
	return &dto.AnnouncementResponse{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		Author:     a.Author,
		Department: a.Department,
		Priority:   a.Priority,
		CreatedAt:  a.CreatedAt,
	}
}

func toReviewResponse(r *entity.PerformanceReview) *dto.ReviewResponse {
	if r == nil {
		return nil
	}
	return &dto.ReviewResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		ReviewDate: r.ReviewDate.Format(dateLayout),
		Rating:     r.Rating,
		Comments:   r.Comments,
		CreatedAt:  r.CreatedAt,
	}
}
