package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error es la señal de fallo uniforme del API: mensaje legible más status
// HTTP. Cualquier handler puede devolverla en cualquier punto y el
// ErrorHandler central la convierte en la envoltura JSON de error.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Error implementa la interfaz error.
func (e *Error) Error() string { return e.Message }

// NewError construye una señal con status y mensaje formateado.
func NewError(status int, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Status: status}
}

// NotFoundf construye una señal 404.
func NotFoundf(format string, args ...any) *Error {
	return NewError(fiber.StatusNotFound, format, args...)
}

// ErrorEnvelope cuerpo de toda respuesta de error:
// {"error": <señal>, "message": <señal.message>}.
type ErrorEnvelope struct {
	Error   *Error `json:"error"`
	Message string `json:"message"`
}

// ErrorHandler es el respondedor central: único punto que escribe respuestas
// de error. Señales conocidas conservan su status; cualquier otro fallo
// (errores del store incluidos) sale como 500 con el error serializado en la
// envoltura. Los handlers nunca suprimen errores: todo llega aquí.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var sig *Error
	if !errors.As(err, &sig) {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			sig = &Error{Message: fe.Message, Status: fe.Code}
		} else {
			sig = &Error{Message: err.Error(), Status: fiber.StatusInternalServerError}
		}
	}
	if sig.Status == 0 {
		sig.Status = fiber.StatusInternalServerError
	}
	return c.Status(sig.Status).JSON(ErrorEnvelope{Error: sig, Message: sig.Message})
}
