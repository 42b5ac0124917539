package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/store"
	"github.com/benavides/historial/pkg/idx"
)

const ActionPatientsViewed = "Acceso a gestión de pacientes"

type PatientService struct {
	Store  store.Store
	Audit  *AuditLog
	Logger *slog.Logger
}

func (s *PatientService) coll() collection[domain.Patient] {
	return collection[domain.Patient]{
		key:    store.KeyPatients,
		id:     func(p domain.Patient) string { return p.ID },
		logger: s.Logger,
	}
}

// List returns patients whose name, CURP or email contain query and records
// the visit to the screen.
func (s *PatientService) List(ctx context.Context, sess *domain.Session, query string) ([]domain.Patient, error) {
	if err := Authorize(sess, domain.PermPatients); err != nil {
		return nil, err
	}
	items, err := s.coll().list(ctx, s.Store.KV())
	if err != nil {
		return nil, err
	}
	if _, err := s.Audit.Record(ctx, sess, ActionPatientsViewed, domain.ModulePatients); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}
	out := make([]domain.Patient, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.CURP), q) ||
			strings.Contains(strings.ToLower(p.Email), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Get looks a patient up without recording anything.
func (s *PatientService) Get(ctx context.Context, id string) (domain.Patient, error) {
	return s.coll().get(ctx, s.Store.KV(), id)
}

func (s *PatientService) Create(ctx context.Context, sess *domain.Session, in domain.PatientInput) (domain.Patient, error) {
	if err := Authorize(sess, domain.PermPatients); err != nil {
		return domain.Patient{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.Patient{}, err
	}

	p := domain.Patient{
		ID:        idx.New().String(),
		CreatedAt: time.Now().UTC().Format(time.DateOnly),
	}
	in.Apply(&p)

	err := s.coll().update(ctx, s.Store, func(_ store.Tx, items []domain.Patient) ([]domain.Patient, error) {
		return append(items, p), nil
	})
	if err != nil {
		return domain.Patient{}, err
	}
	if _, err := s.Audit.Record(ctx, sess, "Paciente creado: "+p.Name, domain.ModulePatients); err != nil {
		return p, err
	}
	return p, nil
}

func (s *PatientService) Update(ctx context.Context, sess *domain.Session, id string, in domain.PatientInput) (domain.Patient, error) {
	if err := Authorize(sess, domain.PermPatients); err != nil {
		return domain.Patient{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.Patient{}, err
	}

	var updated domain.Patient
	err := s.coll().update(ctx, s.Store, func(_ store.Tx, items []domain.Patient) ([]domain.Patient, error) {
		i, ok := s.coll().find(items, id)
		if !ok {
			return nil, store.ErrNotFound
		}
		in.Apply(&items[i])
		updated = items[i]
		return items, nil
	})
	if err != nil {
		return domain.Patient{}, err
	}
	if _, err := s.Audit.Record(ctx, sess, "Paciente actualizado: "+updated.Name, domain.ModulePatients); err != nil {
		return updated, err
	}
	return updated, nil
}

func (s *PatientService) Delete(ctx context.Context, sess *domain.Session, id string) error {
	if err := Authorize(sess, domain.PermPatients); err != nil {
		return err
	}

	var removed domain.Patient
	err := s.coll().update(ctx, s.Store, func(_ store.Tx, items []domain.Patient) ([]domain.Patient, error) {
		i, ok := s.coll().find(items, id)
		if !ok {
			return nil, store.ErrNotFound
		}
		removed = items[i]
		return append(items[:i], items[i+1:]...), nil
	})
	if err != nil {
		return err
	}
	_, err = s.Audit.Record(ctx, sess, "Paciente eliminado: "+removed.Name, domain.ModulePatients)
	return err
}
