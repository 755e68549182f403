package events

import (
	"slices"

	"sistema_escolar/internal/models"
)

// CanViewEvent decide si un rol puede consultar un evento concreto.
// El administrador ve todo; maestros y alumnos solo los eventos cuyo
// público los incluye o es general. Un rol no reconocido no ve nada.
func CanViewEvent(role string, event *models.AcademicEvent) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleTeacher:
		return audienceAny(event.TargetAudience, AudienceTeachers, AudienceGeneral)
	case models.RoleStudent:
		return audienceAny(event.TargetAudience, AudienceStudents, AudienceGeneral)
	}
	return false
}

// FilterVisible aplica el mismo predicado de visibilidad sobre un listado,
// conservando el orden en que llegan los eventos.
func FilterVisible(role string, evs []models.AcademicEvent) []models.AcademicEvent {
	visible := make([]models.AcademicEvent, 0, len(evs))
	for i := range evs {
		if CanViewEvent(role, &evs[i]) {
			visible = append(visible, evs[i])
		}
	}
	return visible
}

func audienceAny(audience []string, options ...string) bool {
	for _, option := range options {
		if slices.Contains(audience, option) {
			return true
		}
	}
	return false
}
