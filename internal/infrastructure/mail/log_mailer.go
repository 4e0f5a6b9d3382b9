package mail

import (
	"context"

	"github.com/jhoicas/Empleados-api/internal/application/ports"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

var _ ports.Mailer = (*LogMailer)(nil)

// LogMailer variante de desarrollo: registra el correo en el log en vez de
// enviarlo. Útil para ver los códigos de verificación sin SES configurado.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer construye el mailer de desarrollo.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send registra el correo y retorna nil.
func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.log.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("correo no enviado (mail deshabilitado)")
	return nil
}
