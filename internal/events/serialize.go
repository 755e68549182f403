package events

import (
	"time"

	"sistema_escolar/internal/models"
)

type ResponsibleInfo struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// EventResponse es la forma serializada de un evento académico.
type EventResponse struct {
	ID                  uint            `json:"id"`
	Name                string          `json:"name"`
	EventType           string          `json:"event_type"`
	Date                string          `json:"date" example:"2026-10-15"`
	StartTime           string          `json:"start_time" example:"10:00"`
	EndTime             string          `json:"end_time" example:"12:00"`
	Location            string          `json:"location"`
	TargetAudience      []string        `json:"target_audience"`
	EducationProgram    *string         `json:"education_program"`
	ResponsibleUser     uint            `json:"responsible_user"`
	ResponsibleUserInfo ResponsibleInfo `json:"responsible_user_info"`
	Description         string          `json:"description"`
	Capacity            int             `json:"capacity"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// NewEventResponse serializa un evento; espera el responsable precargado.
func NewEventResponse(event *models.AcademicEvent) EventResponse {
	return EventResponse{
		ID:               event.ID,
		Name:             event.Name,
		EventType:        event.EventType,
		Date:             event.Date.Format(dateLayout),
		StartTime:        event.StartTime,
		EndTime:          event.EndTime,
		Location:         event.Location,
		TargetAudience:   []string(event.TargetAudience),
		EducationProgram: event.EducationProgram,
		ResponsibleUser:  event.ResponsibleID,
		ResponsibleUserInfo: ResponsibleInfo{
			ID:        event.Responsible.ID,
			FirstName: event.Responsible.FirstName,
			LastName:  event.Responsible.LastName,
			Email:     event.Responsible.Email,
		},
		Description: event.Description,
		Capacity:    event.MaxCapacity,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}
