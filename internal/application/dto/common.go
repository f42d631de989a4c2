package dto

// Envelope es el sobre uniforme de todas las respuestas de la API:
// {success, message, data?, errors?}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// OK construye un sobre de éxito.
func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Fail construye un sobre de error. errs puede ser nil o un mapa campo -> mensajes.
func Fail(message string, errs any) Envelope {
	return Envelope{Success: false, Message: message, Errors: errs}
}
