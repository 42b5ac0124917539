package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/store"
	"github.com/benavides/historial/pkg/idx"
)

// MaxAuditEntries caps the persisted log. Older entries are dropped.
const MaxAuditEntries = 100

// AllModules is the module filter value that disables module filtering.
const AllModules = "all"

// AuditLog is the bounded, newest-first record of user actions.
type AuditLog struct {
	Store  store.Store
	Logger *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time

	// OnRecord, when set, observes every entry after it has been persisted.
	OnRecord func(domain.AuditEntry)
}

type AuditFilter struct {
	Search string
	Module string
}

func (a *AuditLog) now() time.Time {
	if a.Now != nil {
		return a.Now().UTC()
	}
	return time.Now().UTC()
}

func (a *AuditLog) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// Record appends an entry for action in module, attributed to sess or to the
// system identity when sess is nil.
func (a *AuditLog) Record(ctx context.Context, sess *domain.Session, action, module string) (domain.AuditEntry, error) {
	ts := a.now()
	entry := domain.AuditEntry{
		ID:        idx.NewAt(ts).String(),
		Timestamp: ts,
		UserID:    domain.SystemUserID,
		UserName:  domain.SystemUserName,
		UserEmail: domain.SystemUserEmail,
		Action:    action,
		Module:    module,
	}
	if sess != nil {
		entry.UserID = sess.ID
		entry.UserName = sess.Name
		entry.UserEmail = sess.Email
	}

	err := a.Store.WithTx(ctx, func(tx store.Tx) error {
		entries, err := a.load(ctx, tx.KV())
		if err != nil {
			return err
		}
		return a.save(ctx, tx.KV(), prependCapped(entries, entry))
	})
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("record audit entry: %w", err)
	}

	if a.OnRecord != nil {
		a.OnRecord(entry)
	}
	return entry, nil
}

// Entries returns the persisted log, newest first.
func (a *AuditLog) Entries(ctx context.Context) ([]domain.AuditEntry, error) {
	return a.load(ctx, a.Store.KV())
}

// List returns the entries matching f. Search is a case-insensitive
// substring match on user name, email, action and module.
func (a *AuditLog) List(ctx context.Context, f AuditFilter) ([]domain.AuditEntry, error) {
	entries, err := a.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return FilterEntries(entries, f), nil
}

// FilterEntries applies f to entries without modifying them.
func FilterEntries(entries []domain.AuditEntry, f AuditFilter) []domain.AuditEntry {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	module := strings.TrimSpace(f.Module)
	if strings.EqualFold(module, AllModules) {
		module = ""
	}

	out := make([]domain.AuditEntry, 0, len(entries))
	for _, e := range entries {
		if module != "" && e.Module != module {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.UserName), search) &&
			!strings.Contains(strings.ToLower(e.UserEmail), search) &&
			!strings.Contains(strings.ToLower(e.Action), search) &&
			!strings.Contains(strings.ToLower(e.Module), search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Modules lists the distinct module tags in log order.
func (a *AuditLog) Modules(ctx context.Context) ([]string, error) {
	entries, err := a.Entries(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(entries))
	modules := make([]string, 0)
	for _, e := range entries {
		if _, ok := seen[e.Module]; ok {
			continue
		}
		seen[e.Module] = struct{}{}
		modules = append(modules, e.Module)
	}
	return modules, nil
}

// Trim enforces the retention cap on the persisted log and reports how many
// entries were dropped.
func (a *AuditLog) Trim(ctx context.Context) (int, error) {
	var dropped int
	err := a.Store.WithTx(ctx, func(tx store.Tx) error {
		entries, err := a.load(ctx, tx.KV())
		if err != nil {
			return err
		}
		if len(entries) <= MaxAuditEntries {
			return nil
		}
		dropped = len(entries) - MaxAuditEntries
		return a.save(ctx, tx.KV(), entries[:MaxAuditEntries])
	})
	return dropped, err
}

// Seed writes the sample entries shown on a fresh install. It does nothing
// when the log already has entries.
func (a *AuditLog) Seed(ctx context.Context) (bool, error) {
	seeded := false
	err := a.Store.WithTx(ctx, func(tx store.Tx) error {
		entries, err := a.load(ctx, tx.KV())
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			return nil
		}
		seeded = true
		return a.save(ctx, tx.KV(), SampleEntries(a.now()))
	})
	return seeded, err
}

// SampleEntries returns the demo log anchored at now, newest first.
func SampleEntries(now time.Time) []domain.AuditEntry {
	type sample struct {
		ago                 time.Duration
		userID, name, email string
		action, module      string
	}
	samples := []sample{
		{0, "admin1", "Admin Principal", "admin@benavides.com", domain.ActionLogin, domain.ModuleAuth},
		{5 * time.Minute, "medico1", "Dr. Carlos Méndez", "carlos.mendez@benavides.com", "Consulta de paciente", domain.ModulePatients},
		{10 * time.Minute, "admin1", "Admin Principal", "admin@benavides.com", "Creación de usuario", domain.ModuleUsers},
		{15 * time.Minute, "farm1", "María González", "maria.gonzalez@benavides.com", "Actualización de inventario", domain.ModuleInventory},
		{20 * time.Minute, "medico1", "Dr. Carlos Méndez", "carlos.mendez@benavides.com", "Creación de prescripción", domain.ModulePrescriptions},
	}

	out := make([]domain.AuditEntry, len(samples))
	for i, s := range samples {
		ts := now.Add(-s.ago).UTC()
		out[i] = domain.AuditEntry{
			ID:        idx.NewAt(ts).String(),
			Timestamp: ts,
			UserID:    s.userID,
			UserName:  s.name,
			UserEmail: s.email,
			Action:    s.action,
			Module:    s.module,
		}
	}
	return out
}

var csvHeader = []string{"Fecha", "Hora", "Usuario", "Email", "Acción", "Módulo"}

// ExportCSV renders entries as CSV with dates and times in loc. Fields are
// quoted as needed, so commas inside an action stay in one column.
func ExportCSV(entries []domain.AuditEntry, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.UTC
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, e := range entries {
		ts := e.Timestamp.In(loc)
		row := []string{
			ts.Format("02/01/2006"),
			ts.Format("15:04:05"),
			e.UserName,
			e.UserEmail,
			e.Action,
			e.Module,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename names an export produced at t.
func ExportFilename(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return "logs-benavides-" + t.In(loc).Format("2006-01-02") + ".csv"
}

func (a *AuditLog) load(ctx context.Context, kv store.KV) ([]domain.AuditEntry, error) {
	entries, err := store.LoadList[domain.AuditEntry](ctx, kv, store.KeyAccessLogs)
	if errors.Is(err, store.ErrCorrupt) {
		a.logger().Warn("audit log unreadable, starting empty", "error", err)
		return []domain.AuditEntry{}, nil
	}
	return entries, err
}

func (a *AuditLog) save(ctx context.Context, kv store.KV, entries []domain.AuditEntry) error {
	return store.Save(ctx, kv, store.KeyAccessLogs, entries)
}

func prependCapped(entries []domain.AuditEntry, e domain.AuditEntry) []domain.AuditEntry {
	n := min(len(entries)+1, MaxAuditEntries)
	out := make([]domain.AuditEntry, 0, n)
	out = append(out, e)
	return append(out, entries[:n-1]...)
}
