package mail

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/jhoicas/Empleados-api/internal/application/ports"
)

var _ ports.Mailer = (*SESMailer)(nil)

// SESMailer envía correos vía AWS SES. Las credenciales salen del entorno
// (variables AWS_* o rol IAM); From debe ser un remitente verificado en SES.
type SESMailer struct {
	client *ses.Client
	from   string
}

// NewSESMailer construye el mailer. region vacío usa la región del entorno.
func NewSESMailer(ctx context.Context, from, region string) (*SESMailer, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cargar config AWS: %w", err)
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), from: from}, nil
}

// Send envía un correo de texto plano.
func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: &m.from,
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: &subject},
			Body: &types.Body{
				Text: &types.Content{Data: &body},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("enviar correo SES: %w", err)
	}
	return nil
}
