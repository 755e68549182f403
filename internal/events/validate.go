package events

import (
	"fmt"
	"regexp"
	"slices"
	"time"

	"sistema_escolar/internal/models"
	"sistema_escolar/internal/storage"

	"gorm.io/datatypes"
)

// Opciones de público objetivo de un evento académico.
const (
	AudienceStudents = "Estudiantes"
	AudienceTeachers = "Profesores"
	AudienceGeneral  = "Publico general"
)

var (
	EventTypes      = []string{"Conferencia", "Taller", "Seminario", "Concurso"}
	AudienceOptions = []string{AudienceStudents, AudienceTeachers, AudienceGeneral}

	// Programas educativos de la facultad. programa_educativo debe ser uno
	// de estos cuando el público incluye estudiantes.
	EducationPrograms = []string{
		"Ingeniería en Ciencias de la Computación",
		"Licenciatura en Ciencias de la Computación",
		"Ingeniería en Tecnologías de la Información",
	}
)

var (
	namePattern        = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ0-9 ]+$`)
	descriptionPattern = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ0-9 ,.;:()¡!¿?"'-]+$`)
)

const (
	dateLayout    = "2006-01-02"
	dateLayoutAlt = "02/01/2006"
	timeLayout    = "15:04"

	msgRequired = "Este campo es obligatorio."
)

// FieldErrors acumula los mensajes de validación por nombre de campo.
// Todas las reglas de campo se evalúan, no se corta en el primer error.
type FieldErrors map[string]string

// EventInput es el payload crudo de creación o reemplazo de un evento.
// Los valores vacíos en un reemplazo se sustituyen por los del registro
// existente (ver MergeWithExisting).
type EventInput struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	EventType        string   `json:"event_type"`
	Date             string   `json:"date"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	Location         string   `json:"location"`
	TargetAudience   []string `json:"target_audience"`
	EducationProgram string   `json:"education_program"`
	ResponsibleUser  uint     `json:"responsible_user"`
	Description      string   `json:"description"`
	Capacity         int      `json:"capacity"`
}

// MergeWithExisting completa un payload parcial de reemplazo con los valores
// del registro almacenado. Un valor cero (cadena vacía, 0, lista vacía) cuenta
// como omitido y conserva el valor actual; por lo tanto no es posible vaciar
// education_program directamente en un reemplazo.
func MergeWithExisting(input EventInput, existing *models.AcademicEvent) EventInput {
	merged := input
	if merged.Name == "" {
		merged.Name = existing.Name
	}
	if merged.EventType == "" {
		merged.EventType = existing.EventType
	}
	if merged.Date == "" {
		merged.Date = existing.Date.Format(dateLayout)
	}
	if merged.StartTime == "" {
		merged.StartTime = existing.StartTime
	}
	if merged.EndTime == "" {
		merged.EndTime = existing.EndTime
	}
	if merged.Location == "" {
		merged.Location = existing.Location
	}
	if len(merged.TargetAudience) == 0 {
		merged.TargetAudience = []string(existing.TargetAudience)
	}
	if merged.EducationProgram == "" && existing.EducationProgram != nil {
		merged.EducationProgram = *existing.EducationProgram
	}
	if merged.ResponsibleUser == 0 {
		merged.ResponsibleUser = existing.ResponsibleID
	}
	if merged.Description == "" {
		merged.Description = existing.Description
	}
	if merged.Capacity == 0 {
		merged.Capacity = existing.MaxCapacity
	}
	return merged
}

// Validate aplica las reglas de campo y las reglas cruzadas sobre el payload.
// En un reemplazo (existing != nil) primero completa los campos omitidos con
// el registro almacenado. Devuelve el evento listo para persistir o el mapa
// completo de errores por campo.
func Validate(input EventInput, existing *models.AcademicEvent) (*models.AcademicEvent, FieldErrors) {
	if existing != nil {
		input = MergeWithExisting(input, existing)
	}

	errs := FieldErrors{}

	if input.Name == "" {
		errs["name"] = msgRequired
	} else if !namePattern.MatchString(input.Name) {
		errs["name"] = "El nombre solo permite letras, números y espacios."
	}

	if input.EventType == "" {
		errs["event_type"] = msgRequired
	} else if !slices.Contains(EventTypes, input.EventType) {
		errs["event_type"] = fmt.Sprintf("%q no es un tipo de evento válido.", input.EventType)
	}

	var date time.Time
	if input.Date == "" {
		errs["date"] = msgRequired
	} else if parsed, err := parseDate(input.Date); err != nil {
		errs["date"] = "Formato de fecha no válido. Usa AAAA-MM-DD o DD/MM/AAAA."
	} else {
		date = parsed
	}

	startTime, startOK := normalizeTime(input.StartTime, "start_time", errs)
	endTime, endOK := normalizeTime(input.EndTime, "end_time", errs)

	if input.Location == "" {
		errs["location"] = msgRequired
	} else if !namePattern.MatchString(input.Location) {
		errs["location"] = "El lugar solo permite caracteres alfanuméricos y espacios."
	}

	audienceOK := true
	for _, option := range input.TargetAudience {
		if !slices.Contains(AudienceOptions, option) {
			errs["target_audience"] = fmt.Sprintf("%q no es una opción válida de público objetivo.", option)
			audienceOK = false
			break
		}
	}

	if input.Description == "" {
		errs["description"] = msgRequired
	} else if len([]rune(input.Description)) > 300 {
		errs["description"] = "La descripción no debe exceder 300 caracteres."
	} else if !descriptionPattern.MatchString(input.Description) {
		errs["description"] = "La descripción solo permite signos de puntuación básicos."
	}

	if input.Capacity == 0 {
		errs["capacity"] = msgRequired
	} else if input.Capacity < 0 || input.Capacity > 999 {
		errs["capacity"] = "El cupo máximo debe ser un número positivo de hasta 3 dígitos."
	}

	var responsible models.User
	if input.ResponsibleUser == 0 {
		errs["responsible_user"] = msgRequired
	} else if err := storage.DB.First(&responsible, input.ResponsibleUser).Error; err != nil || !responsible.IsStaff() {
		// Usuario inexistente y rol equivocado se rechazan igual.
		errs["responsible_user"] = "El responsable debe ser un maestro o un administrador."
	}

	// Reglas cruzadas: solo corren cuando los campos que necesitan
	// pasaron sus reglas individuales.
	if _, bad := errs["date"]; !bad {
		if date.Before(currentDate()) {
			errs["date"] = "La fecha no puede ser anterior al día actual."
		}
	}

	if startOK && endOK && startTime >= endTime {
		errs["end_time"] = "La hora de finalización debe ser mayor a la inicial."
	}

	if audienceOK && len(input.TargetAudience) == 0 {
		errs["target_audience"] = "Debes seleccionar al menos un público objetivo."
		audienceOK = false
	}

	if audienceOK {
		if slices.Contains(input.TargetAudience, AudienceStudents) {
			if input.EducationProgram == "" {
				errs["education_program"] = "Selecciona un programa educativo para estudiantes."
			} else if !slices.Contains(EducationPrograms, input.EducationProgram) {
				errs["education_program"] = "Programa educativo no válido."
			}
		} else if input.EducationProgram != "" {
			errs["education_program"] = "El programa educativo solo aplica para estudiantes."
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	event := &models.AcademicEvent{}
	if existing != nil {
		event = existing
	}
	event.Name = input.Name
	event.EventType = input.EventType
	event.Date = date
	event.StartTime = startTime
	event.EndTime = endTime
	event.Location = input.Location
	event.TargetAudience = datatypes.NewJSONSlice(input.TargetAudience)
	if input.EducationProgram != "" {
		program := input.EducationProgram
		event.EducationProgram = &program
	} else {
		event.EducationProgram = nil
	}
	event.Description = input.Description
	event.MaxCapacity = input.Capacity
	event.ResponsibleID = responsible.ID
	event.Responsible = responsible
	return event, nil
}

// parseDate acepta los dos formatos de entrada y normaliza al interno ISO.
func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(dateLayout, value); err == nil {
		return parsed, nil
	}
	return time.Parse(dateLayoutAlt, value)
}

// normalizeTime valida una hora HH:MM y la devuelve con cero a la izquierda,
// de modo que la comparación de cadenas coincide con la comparación horaria.
func normalizeTime(value, field string, errs FieldErrors) (string, bool) {
	if value == "" {
		errs[field] = msgRequired
		return "", false
	}
	parsed, err := time.Parse(timeLayout, value)
	if err != nil {
		errs[field] = "Formato de hora no válido. Usa HH:MM."
		return "", false
	}
	return parsed.Format(timeLayout), true
}

// currentDate devuelve la fecha local de hoy sin componente horario,
// comparable con las fechas parseadas de entrada.
func currentDate() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
