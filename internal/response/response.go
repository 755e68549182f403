package response

// SuccessResponse representa una respuesta exitosa del API
type SuccessResponse struct {
	Message string `json:"message" example:"Operación realizada correctamente"`
}

// DetailsResponse representa una confirmación con un solo mensaje,
// por ejemplo tras eliminar un registro.
type DetailsResponse struct {
	Details string `json:"details" example:"Evento eliminado"`
}

// ErrorResponse representa una respuesta de error del API
type ErrorResponse struct {
	// Código de error para manejo programático
	// example: NOT_ALLOWED
	Code string `json:"code"`

	// Mensaje de error legible para el usuario
	// example: Solo un administrador puede crear eventos.
	Message string `json:"message"`

	// Detalles adicionales del error (opcional)
	// example: el campo email debe ser un correo válido
	Details string `json:"details,omitempty"`
}

// ValidationErrorResponse agrupa todos los errores de validación
// de un payload, uno por campo.
type ValidationErrorResponse struct {
	// example: VALIDATION_ERROR
	Code string `json:"code"`

	// Mensajes de error por nombre de campo
	Errors map[string]string `json:"errors"`
}

// TokenResponse representa la respuesta con los tokens de autorización
type TokenResponse struct {
	// Token JWT para acceder a los endpoints protegidos
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// Token JWT para renovar el access token
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refresh_token"`
}
