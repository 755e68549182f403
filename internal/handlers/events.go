package handlers

import (
	"net/http"
	"strconv"

	"sistema_escolar/internal/events"
	"sistema_escolar/internal/models"
	"sistema_escolar/internal/response"
	"sistema_escolar/internal/storage"

	"github.com/gin-gonic/gin"
)

// EventUpdatedResponse acompaña el evento reemplazado con un mensaje de confirmación.
type EventUpdatedResponse struct {
	Message string               `json:"message" example:"Evento actualizado correctamente"`
	Event   events.EventResponse `json:"event"`
}

// ListEventsHandler lista los eventos visibles para el rol del solicitante
// @Summary		Listado de eventos académicos
// @Description	Devuelve los eventos visibles según el rol: el administrador ve todos, maestros y alumnos solo los dirigidos a ellos o al público general
// @Tags			eventos
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		events.EventResponse	"Eventos visibles, ordenados por fecha descendente y hora de inicio"
// @Failure		500	{object}	response.ErrorResponse	"Error del servidor (DB_ERROR)"
// @Router			/api/eventos [get]
func ListEventsHandler(c *gin.Context) {
	role := c.GetString("role")

	var all []models.AcademicEvent
	if err := storage.DB.
		Preload("Responsible").
		Order("date DESC, start_time ASC").
		Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Error al cargar los eventos",
			Details: err.Error(),
		})
		return
	}

	visible := events.FilterVisible(role, all)

	result := make([]events.EventResponse, 0, len(visible))
	for i := range visible {
		result = append(result, events.NewEventResponse(&visible[i]))
	}

	c.JSON(http.StatusOK, result)
}

// GetEventHandler devuelve un evento si el rol del solicitante puede verlo
// @Summary		Consulta de un evento académico
// @Description	Devuelve un evento por su ID aplicando la misma regla de visibilidad que el listado
// @Tags			eventos
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID del evento"
// @Security		BearerAuth
// @Success		200	{object}	events.EventResponse	"Evento consultado"
// @Failure		400	{object}	response.ErrorResponse	"Identificador inválido (INVALID_EVENT_ID)"
// @Failure		403	{object}	response.ErrorResponse	"Sin autorización para consultar este evento (NOT_ALLOWED)"
// @Failure		404	{object}	response.ErrorResponse	"Evento no encontrado (EVENT_NOT_FOUND)"
// @Router			/api/eventos/{id} [get]
func GetEventHandler(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_EVENT_ID",
			Message: "Identificador de evento inválido",
		})
		return
	}

	var event models.AcademicEvent
	if err := storage.DB.Preload("Responsible").First(&event, eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "EVENT_NOT_FOUND",
			Message: "Evento no encontrado",
		})
		return
	}

	if !events.CanViewEvent(c.GetString("role"), &event) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_ALLOWED",
			Message: "No autorizado para consultar este evento",
		})
		return
	}

	c.JSON(http.StatusOK, events.NewEventResponse(&event))
}

// CreateEventHandler crea un evento académico
// @Summary		Creación de un evento académico
// @Description	Crea un evento con el payload completo validado; solo el administrador puede crear eventos
// @Tags			eventos
// @Accept			json
// @Produce		json
// @Param			evento	body		events.EventInput	true	"Datos del evento"
// @Security		BearerAuth
// @Success		201	{object}	events.EventResponse				"Evento creado"
// @Failure		400	{object}	response.ValidationErrorResponse	"Errores de validación por campo (VALIDATION_ERROR)"
// @Failure		403	{object}	response.ErrorResponse				"Solo el administrador puede crear eventos (NOT_ALLOWED)"
// @Failure		500	{object}	response.ErrorResponse				"Error del servidor (DB_ERROR)"
// @Router			/api/eventos [post]
func CreateEventHandler(c *gin.Context) {
	// La autorización se comprueba antes de validar o tocar la base.
	if c.GetString("role") != models.RoleAdmin {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_ALLOWED",
			Message: "Solo un administrador puede crear eventos.",
		})
		return
	}

	var input events.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Error de validación de datos",
			Details: err.Error(),
		})
		return
	}

	event, fieldErrs := events.Validate(input, nil)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
			Code:   "VALIDATION_ERROR",
			Errors: fieldErrs,
		})
		return
	}

	if err := storage.DB.Omit("Responsible").Create(event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Error al crear el evento",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, events.NewEventResponse(event))
}

// UpdateEventHandler reemplaza un evento académico
// @Summary		Reemplazo de un evento académico
// @Description	Reemplaza el evento identificado por el id del payload; los campos omitidos conservan el valor almacenado
// @Tags			eventos
// @Accept			json
// @Produce		json
// @Param			evento	body		events.EventInput	true	"Datos del evento, incluido su id"
// @Security		BearerAuth
// @Success		200	{object}	EventUpdatedResponse				"Evento reemplazado"
// @Failure		400	{object}	response.ValidationErrorResponse	"Errores de validación por campo (VALIDATION_ERROR)"
// @Failure		403	{object}	response.ErrorResponse				"Solo el administrador puede editar eventos (NOT_ALLOWED)"
// @Failure		404	{object}	response.ErrorResponse				"Evento no encontrado (EVENT_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse				"Error del servidor (DB_ERROR)"
// @Router			/api/eventos [put]
func UpdateEventHandler(c *gin.Context) {
	if c.GetString("role") != models.RoleAdmin {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_ALLOWED",
			Message: "Solo un administrador puede editar eventos.",
		})
		return
	}

	var input events.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Error de validación de datos",
			Details: err.Error(),
		})
		return
	}

	var existing models.AcademicEvent
	if err := storage.DB.First(&existing, input.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "EVENT_NOT_FOUND",
			Message: "Evento no encontrado",
		})
		return
	}

	event, fieldErrs := events.Validate(input, &existing)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
			Code:   "VALIDATION_ERROR",
			Errors: fieldErrs,
		})
		return
	}

	if err := storage.DB.Omit("Responsible").Save(event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Error al actualizar el evento",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, EventUpdatedResponse{
		Message: "Evento actualizado correctamente",
		Event:   events.NewEventResponse(event),
	})
}

// DeleteEventHandler elimina un evento académico
// @Summary		Eliminación de un evento académico
// @Description	Elimina el evento de forma definitiva; solo el administrador puede eliminar eventos
// @Tags			eventos
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID del evento"
// @Security		BearerAuth
// @Success		200	{object}	response.DetailsResponse	"Evento eliminado"
// @Failure		400	{object}	response.ErrorResponse		"Identificador inválido (INVALID_EVENT_ID)"
// @Failure		403	{object}	response.ErrorResponse		"Solo el administrador puede eliminar eventos (NOT_ALLOWED)"
// @Failure		404	{object}	response.ErrorResponse		"Evento no encontrado (EVENT_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse		"Error del servidor (DB_ERROR)"
// @Router			/api/eventos/{id} [delete]
func DeleteEventHandler(c *gin.Context) {
	// Primero el rol: un no administrador recibe 403 aunque el evento no exista.
	if c.GetString("role") != models.RoleAdmin {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_ALLOWED",
			Message: "Solo un administrador puede eliminar eventos.",
		})
		return
	}

	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_EVENT_ID",
			Message: "Identificador de evento inválido",
		})
		return
	}

	var event models.AcademicEvent
	if err := storage.DB.First(&event, eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "EVENT_NOT_FOUND",
			Message: "Evento no encontrado",
		})
		return
	}

	// Eliminación definitiva, sin borrado lógico.
	if err := storage.DB.Unscoped().Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Error al eliminar el evento",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.DetailsResponse{Details: "Evento eliminado"})
}
