package domain

import "time"

// AuditEntry is one recorded user action. Entries are immutable once written.
type AuditEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Action    string    `json:"action"`
	Module    string    `json:"module"`
}

// Identity attributed to actions recorded while nobody is logged in.
const (
	SystemUserID    = "system"
	SystemUserName  = "Sistema"
	SystemUserEmail = "system@benavides.com"
)

// Module tags used by the built-in screens.
const (
	ModuleAuth          = "Autenticación"
	ModuleUsers         = "Usuarios"
	ModulePatients      = "Pacientes"
	ModuleLogs          = "Logs"
	ModuleClinical      = "Historial Clínico"
	ModulePrescriptions = "Prescripciones"
	ModuleAppointments  = "Citas"
	ModuleInventory     = "Inventario"
	ModuleSettings      = "Configuración"
)

// Actions recorded by the session manager and the log screen.
const (
	ActionLogin      = "Inicio de sesión"
	ActionRegister   = "Registro de usuario"
	ActionLogout     = "Cierre de sesión"
	ActionLogsViewed = "Acceso a logs del sistema"
	ActionLogsExport = "Exportación de logs"
)
