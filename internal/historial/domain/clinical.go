package domain

import (
	"strings"
	"time"
)

type VitalSigns struct {
	BloodPressure string `json:"bloodPressure"`
	HeartRate     string `json:"heartRate"`
	Temperature   string `json:"temperature"`
	Weight        string `json:"weight"`
	Height        string `json:"height"`
}

type ClinicalRecord struct {
	ID            string     `json:"id"`
	PatientID     string     `json:"patientId"`
	PatientName   string     `json:"patientName"`
	PatientCURP   string     `json:"patientCURP"`
	Date          time.Time  `json:"date"`
	Diagnosis     string     `json:"diagnosis"`
	Symptoms      string     `json:"symptoms"`
	VitalSigns    VitalSigns `json:"vitalSigns"`
	Notes         string     `json:"notes"`
	DoctorID      string     `json:"doctorId"`
	DoctorName    string     `json:"doctorName"`
	Prescriptions []string   `json:"prescriptions"`
}

type ClinicalRecordInput struct {
	PatientID  string     `json:"patientId"`
	Diagnosis  string     `json:"diagnosis"`
	Symptoms   string     `json:"symptoms"`
	VitalSigns VitalSigns `json:"vitalSigns"`
	Notes      string     `json:"notes"`
}

func (in ClinicalRecordInput) Validate() error {
	if strings.TrimSpace(in.PatientID) == "" || strings.TrimSpace(in.Diagnosis) == "" {
		return invalid("Por favor complete los campos requeridos")
	}
	return nil
}

type PrescriptionStatus string

const (
	PrescriptionActive    PrescriptionStatus = "active"
	PrescriptionCompleted PrescriptionStatus = "completed"
	PrescriptionCancelled PrescriptionStatus = "cancelled"
)

type Prescription struct {
	ID           string             `json:"id"`
	RecordID     string             `json:"recordId"`
	PatientID    string             `json:"patientId"`
	PatientName  string             `json:"patientName"`
	Medication   string             `json:"medication"`
	Dosage       string             `json:"dosage"`
	Frequency    string             `json:"frequency"`
	Duration     string             `json:"duration"`
	Instructions string             `json:"instructions"`
	Date         time.Time          `json:"date"`
	DoctorID     string             `json:"doctorId"`
	DoctorName   string             `json:"doctorName"`
	Status       PrescriptionStatus `json:"status"`
}

// Document renders the prescription as a plain-text sheet for download.
func (p Prescription) Document(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	var b strings.Builder
	b.WriteString("Farmacias Benavides - Prescripción médica\n\n")
	b.WriteString("Paciente: " + p.PatientName + "\n")
	b.WriteString("Médico: " + p.DoctorName + "\n")
	b.WriteString("Fecha: " + p.Date.In(loc).Format("02/01/2006") + "\n\n")
	b.WriteString("Medicamento: " + p.Medication + "\n")
	b.WriteString("Dosis: " + p.Dosage + "\n")
	if p.Frequency != "" {
		b.WriteString("Frecuencia: " + p.Frequency + "\n")
	}
	if p.Duration != "" {
		b.WriteString("Duración: " + p.Duration + "\n")
	}
	if p.Instructions != "" {
		b.WriteString("Indicaciones: " + p.Instructions + "\n")
	}
	return b.String()
}

type PrescriptionInput struct {
	RecordID     string `json:"recordId"`
	PatientID    string `json:"patientId"`
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

func (in PrescriptionInput) Validate() error {
	if strings.TrimSpace(in.PatientID) == "" || strings.TrimSpace(in.Medication) == "" || strings.TrimSpace(in.Dosage) == "" {
		return invalid("Por favor complete los campos requeridos")
	}
	return nil
}
