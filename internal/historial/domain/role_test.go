package domain_test

import (
	"testing"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/stretchr/testify/require"
)

func TestPermissionsFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role domain.Role
		want []domain.Permission
	}{
		{domain.RoleAdmin, []domain.Permission{"users", "patients", "logs", "settings", "reports"}},
		{domain.RolePhysician, []domain.Permission{"patients", "records", "prescriptions"}},
		{domain.RolePharmacist, []domain.Permission{"prescriptions", "inventory", "patients"}},
		{domain.RolePatient, []domain.Permission{"own_records", "appointments"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			require.ElementsMatch(t, tc.want, domain.PermissionsFor(tc.role))
		})
	}

	t.Run("unknown", func(t *testing.T) {
		got := domain.PermissionsFor(domain.Role("superuser"))
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("fresh slice", func(t *testing.T) {
		a := domain.PermissionsFor(domain.RoleAdmin)
		a[0] = "tampered"
		require.Equal(t, domain.PermUsers, domain.PermissionsFor(domain.RoleAdmin)[0])
	})
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]domain.Role{
		"admin":        domain.RoleAdmin,
		"medico":       domain.RolePhysician,
		"Physician":    domain.RolePhysician,
		"farmaceutico": domain.RolePharmacist,
		" pharmacist ": domain.RolePharmacist,
		"paciente":     domain.RolePatient,
		"patient":      domain.RolePatient,
	} {
		got, ok := domain.ParseRole(in)
		require.True(t, ok, in)
		require.Equal(t, want, got)
		require.True(t, got.Valid())
	}

	_, ok := domain.ParseRole("root")
	require.False(t, ok)
	require.False(t, domain.Role("root").Valid())
	require.Equal(t, "Médico", domain.RolePhysician.Label())
}

func TestSessionHas(t *testing.T) {
	s := domain.Session{Role: domain.RolePatient, Permissions: domain.PermissionsFor(domain.RolePatient)}
	require.True(t, s.Has(domain.PermAppointments))
	require.False(t, s.Has(domain.PermLogs))
	require.Equal(t, "ana.lopez", domain.NameFromEmail("ana.lopez@benavides.com"))
}

func TestRegisterRequestValidate(t *testing.T) {
	t.Parallel()

	base := domain.RegisterRequest{
		Name: "Ana", Email: "ana@benavides.com", Password: "secreto123", ConfirmPassword: "secreto123", Role: "medico",
	}

	role, err := base.Validate()
	require.NoError(t, err)
	require.Equal(t, domain.RolePhysician, role)

	missing := base
	missing.Name = ""
	_, err = missing.Validate()
	require.ErrorIs(t, err, domain.ErrValidation)

	mismatch := base
	mismatch.ConfirmPassword = "otra-cosa"
	_, err = mismatch.Validate()
	require.ErrorContains(t, err, "no coinciden")

	short := base
	short.Password, short.ConfirmPassword = "corta", "corta"
	_, err = short.Validate()
	require.ErrorContains(t, err, "8 caracteres")
}

func TestLoginRequestValidate(t *testing.T) {
	_, err := domain.LoginRequest{Email: "a@b.c", Password: "x"}.Validate()
	require.ErrorIs(t, err, domain.ErrValidation)

	role, err := domain.LoginRequest{Email: "a@b.c", Password: "x", Role: "admin"}.Validate()
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, role)
}
