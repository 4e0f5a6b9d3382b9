package ports

import "context"

// Mailer puerto de envío de correos (códigos de verificación, avisos de decisión de permisos).
// La implementación vive en infrastructure; en development se usa una variante que solo loguea.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
