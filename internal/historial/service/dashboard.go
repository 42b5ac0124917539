package service

import (
	"github.com/benavides/historial/internal/historial/domain"
)

// Screen is one entry of the dashboard. It is shown when the session holds
// any of Permissions.
type Screen struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Path        string              `json:"path"`
	Permissions []domain.Permission `json:"permissions"`
}

var screens = []Screen{
	{"Gestión de Usuarios", "Crear, editar y eliminar usuarios del sistema", "/v1/users", []domain.Permission{domain.PermUsers}},
	{"Gestión de Pacientes", "Registro y seguimiento de pacientes", "/v1/patients", []domain.Permission{domain.PermPatients}},
	{"Logs de Acceso", "Bitácora de actividad del sistema", "/v1/logs", []domain.Permission{domain.PermLogs}},
	{"Historial Clínico", "Gestionar registros y prescripciones", "/v1/records", []domain.Permission{domain.PermRecords, domain.PermPrescriptions}},
	{"Mi Historial Clínico", "Ver mis consultas y prescripciones", "/v1/me/clinical", []domain.Permission{domain.PermOwnRecords}},
	{"Citas Médicas", "Agendar y consultar citas", "/v1/appointments", []domain.Permission{domain.PermAppointments, domain.PermRecords}},
	{"Design System", "Guía de tipografía y componentes", "/v1/design-system", []domain.Permission{domain.PermSettings}},
}

type Dashboard struct {
	Session   domain.Session `json:"session"`
	RoleLabel string         `json:"roleLabel"`
	Screens   []Screen       `json:"screens"`
}

// DashboardFor lists the screens sess may open.
func DashboardFor(sess domain.Session) Dashboard {
	d := Dashboard{Session: sess, RoleLabel: sess.Role.Label(), Screens: []Screen{}}
	for _, sc := range screens {
		if Authorize(&sess, sc.Permissions...) == nil {
			d.Screens = append(d.Screens, sc)
		}
	}
	return d
}
