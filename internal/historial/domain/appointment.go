package domain

import (
	"strings"
	"time"
)

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no-show"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

type AppointmentType string

const (
	AppointmentInPerson AppointmentType = "presencial"
	AppointmentVirtual  AppointmentType = "virtual"
)

type Appointment struct {
	ID           string            `json:"id"`
	PatientID    string            `json:"patientId"`
	PatientName  string            `json:"patientName"`
	PatientEmail string            `json:"patientEmail"`
	DoctorID     string            `json:"doctorId"`
	DoctorName   string            `json:"doctorName"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Duration     string            `json:"duration"`
	Type         AppointmentType   `json:"type"`
	Location     string            `json:"location"`
	Reason       string            `json:"reason"`
	Notes        string            `json:"notes"`
	Status       AppointmentStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
}

type AppointmentInput struct {
	PatientID string          `json:"patientId"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Duration  string          `json:"duration"`
	Type      AppointmentType `json:"type"`
	Location  string          `json:"location"`
	Reason    string          `json:"reason"`
	Notes     string          `json:"notes"`
}

func (in AppointmentInput) Validate() error {
	if strings.TrimSpace(in.PatientID) == "" || strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Time) == "" || strings.TrimSpace(in.Reason) == "" {
		return invalid("Por favor complete los campos requeridos")
	}
	switch in.Type {
	case "", AppointmentInPerson, AppointmentVirtual:
	default:
		return invalid("tipo de cita desconocido: " + string(in.Type))
	}
	return nil
}
