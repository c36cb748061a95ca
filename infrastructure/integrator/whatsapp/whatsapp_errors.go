package whatsapp

import "errors"

// Errores específicos del envío por WhatsApp
var (
	ErrMissingCredentials = errors.New("credenciales de Twilio incompletas")
	ErrMissingRecipient   = errors.New("número de destino no informado")
	ErrSendFailed         = errors.New("error al enviar mensaje por WhatsApp")
)
