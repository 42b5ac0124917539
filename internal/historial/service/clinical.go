package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/store"
	"github.com/benavides/historial/pkg/idx"
)

const (
	ActionClinicalViewed    = "Acceso a historial clínico"
	ActionOwnClinicalViewed = "Acceso a mi historial clínico"
)

// ClinicalService manages clinical records and prescriptions.
type ClinicalService struct {
	Store    store.Store
	Audit    *AuditLog
	Logger   *slog.Logger
	Location *time.Location
	Now      func() time.Time
}

// OwnHistory is what a patient sees of their own file.
type OwnHistory struct {
	Patient       *domain.Patient         `json:"patient"`
	Records       []domain.ClinicalRecord `json:"records"`
	Prescriptions []domain.Prescription   `json:"prescriptions"`
}

func (s *ClinicalService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *ClinicalService) records() collection[domain.ClinicalRecord] {
	return collection[domain.ClinicalRecord]{
		key:    store.KeyClinicalRecords,
		id:     func(r domain.ClinicalRecord) string { return r.ID },
		logger: s.Logger,
	}
}

func (s *ClinicalService) prescriptions() collection[domain.Prescription] {
	return collection[domain.Prescription]{
		key:    store.KeyPrescriptions,
		id:     func(p domain.Prescription) string { return p.ID },
		logger: s.Logger,
	}
}

func (s *ClinicalService) patients() collection[domain.Patient] {
	return collection[domain.Patient]{
		key:    store.KeyPatients,
		id:     func(p domain.Patient) string { return p.ID },
		logger: s.Logger,
	}
}

// Records lists clinical records, optionally for one patient, filtered by a
// case-insensitive match on patient name, CURP or diagnosis.
func (s *ClinicalService) Records(ctx context.Context, sess *domain.Session, patientID, query string) ([]domain.ClinicalRecord, error) {
	if err := Authorize(sess, domain.PermRecords, domain.PermPrescriptions); err != nil {
		return nil, err
	}
	items, err := s.records().list(ctx, s.Store.KV())
	if err != nil {
		return nil, err
	}
	if _, err := s.Audit.Record(ctx, sess, ActionClinicalViewed, domain.ModuleClinical); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.ClinicalRecord, 0, len(items))
	for _, r := range items {
		if patientID != "" && r.PatientID != patientID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(r.PatientName), q) &&
			!strings.Contains(strings.ToLower(r.PatientCURP), q) &&
			!strings.Contains(strings.ToLower(r.Diagnosis), q) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// CreateRecord adds a record for an existing patient, signed by the session.
func (s *ClinicalService) CreateRecord(ctx context.Context, sess *domain.Session, in domain.ClinicalRecordInput) (domain.ClinicalRecord, error) {
	if err := Authorize(sess, domain.PermRecords); err != nil {
		return domain.ClinicalRecord{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.ClinicalRecord{}, err
	}

	now := s.now()
	rec := domain.ClinicalRecord{
		ID:            idx.NewAt(now).String(),
		PatientID:     in.PatientID,
		Date:          now,
		Diagnosis:     strings.TrimSpace(in.Diagnosis),
		Symptoms:      in.Symptoms,
		VitalSigns:    in.VitalSigns,
		Notes:         in.Notes,
		DoctorID:      sess.ID,
		DoctorName:    sess.Name,
		Prescriptions: []string{},
	}

	err := s.records().update(ctx, s.Store, func(tx store.Tx, items []domain.ClinicalRecord) ([]domain.ClinicalRecord, error) {
		p, err := s.patients().get(ctx, tx.KV(), in.PatientID)
		if err != nil {
			return nil, fmt.Errorf("patient %s: %w", in.PatientID, err)
		}
		rec.PatientName = p.Name
		rec.PatientCURP = p.CURP
		return prepend(items, rec), nil
	})
	if err != nil {
		return domain.ClinicalRecord{}, err
	}

	action := "Creación de registro clínico para " + rec.PatientName
	if _, err := s.Audit.Record(ctx, sess, action, domain.ModuleClinical); err != nil {
		return rec, err
	}
	return rec, nil
}

// Prescriptions lists prescriptions, optionally for one patient.
func (s *ClinicalService) Prescriptions(ctx context.Context, sess *domain.Session, patientID string) ([]domain.Prescription, error) {
	if err := Authorize(sess, domain.PermRecords, domain.PermPrescriptions); err != nil {
		return nil, err
	}
	items, err := s.prescriptions().list(ctx, s.Store.KV())
	if err != nil {
		return nil, err
	}
	if patientID == "" {
		return items, nil
	}
	out := make([]domain.Prescription, 0, len(items))
	for _, p := range items {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, nil
}

// CreatePrescription adds an active prescription. When RecordID is set the
// prescription id is also appended to that record, in the same transaction.
func (s *ClinicalService) CreatePrescription(ctx context.Context, sess *domain.Session, in domain.PrescriptionInput) (domain.Prescription, error) {
	if err := Authorize(sess, domain.PermPrescriptions); err != nil {
		return domain.Prescription{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.Prescription{}, err
	}

	now := s.now()
	rx := domain.Prescription{
		ID:           idx.NewAt(now).String(),
		RecordID:     in.RecordID,
		PatientID:    in.PatientID,
		Medication:   strings.TrimSpace(in.Medication),
		Dosage:       strings.TrimSpace(in.Dosage),
		Frequency:    in.Frequency,
		Duration:     in.Duration,
		Instructions: in.Instructions,
		Date:         now,
		DoctorID:     sess.ID,
		DoctorName:   sess.Name,
		Status:       domain.PrescriptionActive,
	}

	err := s.prescriptions().update(ctx, s.Store, func(tx store.Tx, items []domain.Prescription) ([]domain.Prescription, error) {
		p, err := s.patients().get(ctx, tx.KV(), in.PatientID)
		if err != nil {
			return nil, fmt.Errorf("patient %s: %w", in.PatientID, err)
		}
		rx.PatientName = p.Name

		if rx.RecordID != "" {
			if err := s.linkPrescription(ctx, tx.KV(), rx); err != nil {
				return nil, err
			}
		}
		return prepend(items, rx), nil
	})
	if err != nil {
		return domain.Prescription{}, err
	}

	if _, err := s.Audit.Record(ctx, sess, "Prescripción creada para "+rx.PatientName, domain.ModulePrescriptions); err != nil {
		return rx, err
	}
	return rx, nil
}

func (s *ClinicalService) linkPrescription(ctx context.Context, kv store.KV, rx domain.Prescription) error {
	recs, err := s.records().list(ctx, kv)
	if err != nil {
		return err
	}
	i, ok := s.records().find(recs, rx.RecordID)
	if !ok {
		return fmt.Errorf("clinical record %s: %w", rx.RecordID, store.ErrNotFound)
	}
	if recs[i].PatientID != rx.PatientID {
		return fmt.Errorf("%w: la prescripción no corresponde al paciente del registro", domain.ErrValidation)
	}
	recs[i].Prescriptions = append(recs[i].Prescriptions, rx.ID)
	return store.Save(ctx, kv, store.KeyClinicalRecords, recs)
}

// OwnHistory returns the records and prescriptions of the patient whose email
// matches the session. A session with no patient file gets empty lists.
func (s *ClinicalService) OwnHistory(ctx context.Context, sess *domain.Session) (OwnHistory, error) {
	if err := Authorize(sess, domain.PermOwnRecords); err != nil {
		return OwnHistory{}, err
	}
	if _, err := s.Audit.Record(ctx, sess, ActionOwnClinicalViewed, domain.ModuleClinical); err != nil {
		return OwnHistory{}, err
	}

	out := OwnHistory{Records: []domain.ClinicalRecord{}, Prescriptions: []domain.Prescription{}}
	kv := s.Store.KV()

	patient, ok, err := s.patientByEmail(ctx, kv, sess.Email)
	if err != nil || !ok {
		return out, err
	}
	out.Patient = &patient

	recs, err := s.records().list(ctx, kv)
	if err != nil {
		return OwnHistory{}, err
	}
	for _, r := range recs {
		if r.PatientID == patient.ID {
			out.Records = append(out.Records, r)
		}
	}

	rxs, err := s.prescriptions().list(ctx, kv)
	if err != nil {
		return OwnHistory{}, err
	}
	for _, p := range rxs {
		if p.PatientID == patient.ID {
			out.Prescriptions = append(out.Prescriptions, p)
		}
	}
	return out, nil
}

// DownloadPrescription renders a prescription for download. Sessions that
// only hold own_records may download their own prescriptions only.
func (s *ClinicalService) DownloadPrescription(ctx context.Context, sess *domain.Session, id string) (domain.Prescription, string, error) {
	if err := Authorize(sess, domain.PermOwnRecords, domain.PermPrescriptions); err != nil {
		return domain.Prescription{}, "", err
	}
	kv := s.Store.KV()

	rx, err := s.prescriptions().get(ctx, kv, id)
	if err != nil {
		return domain.Prescription{}, "", err
	}
	if !sess.Has(domain.PermPrescriptions) {
		patient, ok, err := s.patientByEmail(ctx, kv, sess.Email)
		if err != nil {
			return domain.Prescription{}, "", err
		}
		if !ok || patient.ID != rx.PatientID {
			return domain.Prescription{}, "", ErrForbidden
		}
	}

	if _, err := s.Audit.Record(ctx, sess, "Descarga de prescripción: "+rx.Medication, domain.ModulePrescriptions); err != nil {
		return domain.Prescription{}, "", err
	}
	return rx, rx.Document(s.Location), nil
}

func (s *ClinicalService) patientByEmail(ctx context.Context, kv store.KV, email string) (domain.Patient, bool, error) {
	patients, err := s.patients().list(ctx, kv)
	if err != nil {
		return domain.Patient{}, false, err
	}
	for _, p := range patients {
		if p.Email != "" && strings.EqualFold(p.Email, email) {
			return p, true, nil
		}
	}
	return domain.Patient{}, false, nil
}
