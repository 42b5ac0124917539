package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/store"
	"github.com/benavides/historial/pkg/idx"
)

const (
	ActionAppointmentsViewed = "Acceso a citas médicas"

	defaultAppointmentDuration = "30"
)

type AppointmentService struct {
	Store  store.Store
	Audit  *AuditLog
	Logger *slog.Logger
	Now    func() time.Time
}

// AppointmentFilter narrows a listing. Status "all" or empty matches any.
type AppointmentFilter struct {
	Status string
	Search string
}

func (s *AppointmentService) coll() collection[domain.Appointment] {
	return collection[domain.Appointment]{
		key:    store.KeyAppointments,
		id:     func(a domain.Appointment) string { return a.ID },
		logger: s.Logger,
	}
}

// List returns the appointments visible to sess, latest slot first. Patients
// see the ones booked under their email and physicians the ones they booked.
func (s *AppointmentService) List(ctx context.Context, sess *domain.Session, f AppointmentFilter) ([]domain.Appointment, error) {
	if err := Authorize(sess, domain.PermAppointments, domain.PermRecords); err != nil {
		return nil, err
	}
	items, err := s.coll().list(ctx, s.Store.KV())
	if err != nil {
		return nil, err
	}
	if _, err := s.Audit.Record(ctx, sess, ActionAppointmentsViewed, domain.ModuleAppointments); err != nil {
		return nil, err
	}

	status := strings.TrimSpace(f.Status)
	if strings.EqualFold(status, "all") {
		status = ""
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]domain.Appointment, 0, len(items))
	for _, a := range items {
		switch sess.Role {
		case domain.RolePatient:
			if !strings.EqualFold(a.PatientEmail, sess.Email) {
				continue
			}
		case domain.RolePhysician:
			if a.DoctorID != sess.ID {
				continue
			}
		}
		if status != "" && string(a.Status) != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(a.PatientName), q) &&
			!strings.Contains(strings.ToLower(a.Reason), q) &&
			!strings.Contains(strings.ToLower(a.DoctorName), q) {
			continue
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date+"T"+out[i].Time > out[j].Date+"T"+out[j].Time
	})
	return out, nil
}

// Create books an appointment for an existing patient with the session as
// the attending physician.
func (s *AppointmentService) Create(ctx context.Context, sess *domain.Session, in domain.AppointmentInput) (domain.Appointment, error) {
	if err := Authorize(sess, domain.PermAppointments, domain.PermRecords); err != nil {
		return domain.Appointment{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.Appointment{}, err
	}

	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}
	appt := domain.Appointment{
		ID:         idx.NewAt(now).String(),
		PatientID:  in.PatientID,
		DoctorID:   sess.ID,
		DoctorName: sess.Name,
		Date:       in.Date,
		Time:       in.Time,
		Duration:   in.Duration,
		Type:       in.Type,
		Location:   in.Location,
		Reason:     strings.TrimSpace(in.Reason),
		Notes:      in.Notes,
		Status:     domain.AppointmentScheduled,
		CreatedAt:  now,
	}
	if appt.Duration == "" {
		appt.Duration = defaultAppointmentDuration
	}
	if appt.Type == "" {
		appt.Type = domain.AppointmentInPerson
	}

	err := s.coll().update(ctx, s.Store, func(tx store.Tx, items []domain.Appointment) ([]domain.Appointment, error) {
		patients := collection[domain.Patient]{key: store.KeyPatients, id: func(p domain.Patient) string { return p.ID }, logger: s.Logger}
		p, err := patients.get(ctx, tx.KV(), in.PatientID)
		if err != nil {
			return nil, fmt.Errorf("patient %s: %w", in.PatientID, err)
		}
		appt.PatientName = p.Name
		appt.PatientEmail = p.Email
		return prepend(items, appt), nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	if _, err := s.Audit.Record(ctx, sess, "Cita médica creada para "+appt.PatientName, domain.ModuleAppointments); err != nil {
		return appt, err
	}
	return appt, nil
}

func (s *AppointmentService) UpdateStatus(ctx context.Context, sess *domain.Session, id string, status domain.AppointmentStatus) (domain.Appointment, error) {
	if err := Authorize(sess, domain.PermAppointments, domain.PermRecords); err != nil {
		return domain.Appointment{}, err
	}
	if !status.Valid() {
		return domain.Appointment{}, fmt.Errorf("%w: estado de cita desconocido: %s", domain.ErrValidation, status)
	}

	var updated domain.Appointment
	err := s.coll().update(ctx, s.Store, func(_ store.Tx, items []domain.Appointment) ([]domain.Appointment, error) {
		i, ok := s.coll().find(items, id)
		if !ok {
			return nil, store.ErrNotFound
		}
		items[i].Status = status
		updated = items[i]
		return items, nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	if _, err := s.Audit.Record(ctx, sess, "Estado de cita actualizado a "+string(status), domain.ModuleAppointments); err != nil {
		return updated, err
	}
	return updated, nil
}
