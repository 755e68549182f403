package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AcademicEvent struct {
	gorm.Model
	Name             string                      `gorm:"not null"`                   // Nombre del evento
	EventType        string                      `gorm:"type:varchar(20);not null"`  // Conferencia, Taller, Seminario o Concurso
	Date             time.Time                   `gorm:"type:date;index;not null"`   // Fecha de realización
	StartTime        string                      `gorm:"type:varchar(5);not null"`   // Hora de inicio, normalizada a HH:MM
	EndTime          string                      `gorm:"type:varchar(5);not null"`   // Hora de fin, normalizada a HH:MM
	Location         string                      `gorm:"not null"`                   // Lugar del evento
	TargetAudience   datatypes.JSONSlice[string] `gorm:"not null"`                   // Público objetivo, conserva el orden de entrada
	EducationProgram *string                     `gorm:"type:varchar(80)"`           // Solo aplica cuando el público incluye estudiantes
	Description      string                      `gorm:"type:varchar(300);not null"` // Descripción breve
	MaxCapacity      int                         `gorm:"not null"`                   // Cupo declarado, no se controlan inscripciones
	ResponsibleID    uint                        `gorm:"index;not null"`
	Responsible      User                        `gorm:"foreignKey:ResponsibleID;constraint:OnDelete:RESTRICT"`
}
