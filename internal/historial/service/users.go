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

const ActionUsersViewed = "Acceso a gestión de usuarios"

// UserService maintains the staff directory. Entries are not login accounts.
type UserService struct {
	Store  store.Store
	Audit  *AuditLog
	Logger *slog.Logger
}

func (s *UserService) coll() collection[domain.SystemUser] {
	return collection[domain.SystemUser]{
		key:    store.KeyUsers,
		id:     func(u domain.SystemUser) string { return u.ID },
		logger: s.Logger,
	}
}

func (s *UserService) List(ctx context.Context, sess *domain.Session, query string) ([]domain.SystemUser, error) {
	if err := Authorize(sess, domain.PermUsers); err != nil {
		return nil, err
	}
	items, err := s.coll().list(ctx, s.Store.KV())
	if err != nil {
		return nil, err
	}
	if _, err := s.Audit.Record(ctx, sess, ActionUsersViewed, domain.ModuleUsers); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}
	out := make([]domain.SystemUser, 0, len(items))
	for _, u := range items {
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *UserService) Create(ctx context.Context, sess *domain.Session, in domain.SystemUserInput) (domain.SystemUser, error) {
	if err := Authorize(sess, domain.PermUsers); err != nil {
		return domain.SystemUser{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.SystemUser{}, err
	}

	u := domain.SystemUser{
		ID:        idx.New().String(),
		CreatedAt: time.Now().UTC().Format(time.DateOnly),
	}
	in.Apply(&u)

	err := s.coll().update(ctx, s.Store, func(_ store.Tx, items []domain.SystemUser) ([]domain.SystemUser, error) {
		for _, existing := range items {
			if strings.EqualFold(existing.Email, u.Email) {
				return nil, store.ErrAlreadyExists
			}
		}
		return append(items, u), nil
	})
	if err != nil {
		return domain.SystemUser{}, err
	}
	if _, err := s.Audit.Record(ctx, sess, "Usuario creado: "+u.Email, domain.ModuleUsers); err != nil {
		return u, err
	}
	return u, nil
}

func (s *UserService) Update(ctx context.Context, sess *domain.Session, id string, in domain.SystemUserInput) (domain.SystemUser, error) {
	if err := Authorize(sess, domain.PermUsers); err != nil {
		return domain.SystemUser{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.SystemUser{}, err
	}

	var updated domain.SystemUser
	err := s.coll().update(ctx, s.Store, func(_ store.Tx, items []domain.SystemUser) ([]domain.SystemUser, error) {
		i, ok := s.coll().find(items, id)
		if !ok {
			return nil, store.ErrNotFound
		}
		email := strings.TrimSpace(in.Email)
		for j, other := range items {
			if j != i && strings.EqualFold(other.Email, email) {
				return nil, store.ErrAlreadyExists
			}
		}
		in.Apply(&items[i])
		updated = items[i]
		return items, nil
	})
	if err != nil {
		return domain.SystemUser{}, err
	}
	if _, err := s.Audit.Record(ctx, sess, "Usuario actualizado: "+updated.Email, domain.ModuleUsers); err != nil {
		return updated, err
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, sess *domain.Session, id string) error {
	if err := Authorize(sess, domain.PermUsers); err != nil {
		return err
	}

	var removed domain.SystemUser
	err := s.coll().update(ctx, s.Store, func(_ store.Tx, items []domain.SystemUser) ([]domain.SystemUser, error) {
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
	_, err = s.Audit.Record(ctx, sess, "Usuario eliminado: "+removed.Email, domain.ModuleUsers)
	return err
}
