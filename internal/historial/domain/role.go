package domain

import "strings"

// Role is the fixed category that determines a session's default permissions.
type Role string

// Wire values match what the front end has always persisted.
const (
	RoleAdmin      Role = "admin"
	RolePhysician  Role = "medico"
	RolePharmacist Role = "farmaceutico"
	RolePatient    Role = "paciente"
)

// Roles lists every role in display order.
var Roles = []Role{RoleAdmin, RolePhysician, RolePharmacist, RolePatient}

// ParseRole accepts the persisted values and their English names.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin", "administrator":
		return RoleAdmin, true
	case "medico", "physician":
		return RolePhysician, true
	case "farmaceutico", "pharmacist":
		return RolePharmacist, true
	case "paciente", "patient":
		return RolePatient, true
	}
	return "", false
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePhysician, RolePharmacist, RolePatient:
		return true
	}
	return false
}

// Label is the Spanish display name of the role.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RolePhysician:
		return "Médico"
	case RolePharmacist:
		return "Farmacéutico"
	case RolePatient:
		return "Paciente"
	}
	return string(r)
}

// Permission names a capability. Set membership only, no hierarchy.
type Permission string

const (
	PermUsers         Permission = "users"
	PermPatients      Permission = "patients"
	PermLogs          Permission = "logs"
	PermSettings      Permission = "settings"
	PermReports       Permission = "reports"
	PermRecords       Permission = "records"
	PermPrescriptions Permission = "prescriptions"
	PermInventory     Permission = "inventory"
	PermOwnRecords    Permission = "own_records"
	PermAppointments  Permission = "appointments"
)

// PermissionsFor returns the fixed permission set of role. Unknown roles get
// an empty set. The slice is freshly allocated on every call.
func PermissionsFor(role Role) []Permission {
	switch role {
	case RoleAdmin:
		return []Permission{PermUsers, PermPatients, PermLogs, PermSettings, PermReports}
	case RolePhysician:
		return []Permission{PermPatients, PermRecords, PermPrescriptions}
	case RolePharmacist:
		return []Permission{PermPrescriptions, PermInventory, PermPatients}
	case RolePatient:
		return []Permission{PermOwnRecords, PermAppointments}
	}
	return []Permission{}
}

// PermissionStrings converts perms for transport layers that speak plain strings.
func PermissionStrings(perms []Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
