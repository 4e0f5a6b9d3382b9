package repository

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// AnnouncementRepository define el puerto de persistencia para Announcement.
// Los anuncios son inmutables: solo alta y listado.
type AnnouncementRepository interface {
	Create(a *entity.Announcement) error
	List() ([]*entity.Announcement, error)
}
