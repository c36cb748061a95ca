package whatsapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/diegothxnt/ventas-rpa/internal/config"
	"github.com/diegothxnt/ventas-rpa/pkg/log"
)

// Service envía el reporte formateado por WhatsApp mediante Twilio. El
// contrato con el pipeline es entregar el bloque de texto exactamente como
// llega: sin recodificar ni truncar.
type Service struct {
	cfg    config.Twilio
	client *twilio.RestClient
}

// NewService crea el integrador de WhatsApp. Con credenciales incompletas
// devuelve error: el llamador decide si el envío era opcional.
func NewService(cfg config.Twilio) (*Service, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.WhatsAppNumber == "" {
		return nil, ErrMissingCredentials
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &Service{cfg: cfg, client: client}, nil
}

// SendReport envía el cuerpo del reporte al número indicado. mediaURLs, si
// llegan, se adjuntan como enlaces de los gráficos al final del mensaje.
func (s *Service) SendReport(ctx context.Context, to string, body string, mediaURLs []string) error {
	if to == "" {
		to = s.cfg.DefaultTo
	}
	if to == "" {
		return ErrMissingRecipient
	}

	message := body
	if len(mediaURLs) > 0 {
		message = fmt.Sprintf("%s\n\n🖼️ ENLACES A GRÁFICOS VISUALES:\n• %s", body, strings.Join(mediaURLs, "\n• "))
	}

	params := &openapi.CreateMessageParams{}
	params.SetBody(message)
	params.SetFrom("whatsapp:" + s.cfg.WhatsAppNumber)
	params.SetTo("whatsapp:" + to)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.L.WithContext(ctx).WithError(err).Error("Error al enviar el reporte por WhatsApp")
		return errors.Wrap(ErrSendFailed, err.Error())
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	log.L.WithContext(ctx).WithField("sid", sid).Info("Reporte enviado exitosamente por WhatsApp")

	return nil
}
