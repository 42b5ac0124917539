package domain

import "strings"

type PatientStatus string

const (
	PatientActive   PatientStatus = "active"
	PatientInactive PatientStatus = "inactive"
)

type Patient struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	CURP             string        `json:"curp"`
	BirthDate        string        `json:"birthDate"`
	Phone            string        `json:"phone"`
	Email            string        `json:"email"`
	EmergencyContact string        `json:"emergencyContact"`
	EmergencyPhone   string        `json:"emergencyPhone"`
	BloodType        string        `json:"bloodType"`
	Allergies        string        `json:"allergies"`
	Status           PatientStatus `json:"status"`
	CreatedAt        string        `json:"createdAt"`
}

// PatientInput is the editable part of a Patient.
type PatientInput struct {
	Name             string        `json:"name"`
	CURP             string        `json:"curp"`
	BirthDate        string        `json:"birthDate"`
	Phone            string        `json:"phone"`
	Email            string        `json:"email"`
	EmergencyContact string        `json:"emergencyContact"`
	EmergencyPhone   string        `json:"emergencyPhone"`
	BloodType        string        `json:"bloodType"`
	Allergies        string        `json:"allergies"`
	Status           PatientStatus `json:"status"`
}

func (in PatientInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.CURP) == "" || strings.TrimSpace(in.BirthDate) == "" {
		return invalid("Complete los campos requeridos")
	}
	switch in.Status {
	case "", PatientActive, PatientInactive:
	default:
		return invalid("estado de paciente desconocido: " + string(in.Status))
	}
	return nil
}

// Apply copies in onto p, defaulting the status to active.
func (in PatientInput) Apply(p *Patient) {
	p.Name = strings.TrimSpace(in.Name)
	p.CURP = strings.ToUpper(strings.TrimSpace(in.CURP))
	p.BirthDate = in.BirthDate
	p.Phone = in.Phone
	p.Email = strings.TrimSpace(in.Email)
	p.EmergencyContact = in.EmergencyContact
	p.EmergencyPhone = in.EmergencyPhone
	p.BloodType = in.BloodType
	p.Allergies = in.Allergies
	p.Status = in.Status
	if p.Status == "" {
		p.Status = PatientActive
	}
}
