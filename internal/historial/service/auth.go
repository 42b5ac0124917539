package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/google/uuid"
)

// AuthService moves the process between the anonymous and authenticated
// states. Credentials are accepted as given: there is no password check.
type AuthService struct {
	Sessions *SessionStore
	Audit    *AuditLog
	Logger   *slog.Logger

	// NewID defaults to a random UUID.
	NewID func() string
}

func (s *AuthService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// Login creates a session for email with the permissions of role. The name
// is the local part of the email.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (domain.Session, error) {
	return s.start(ctx, email, domain.NameFromEmail(email), role, domain.ActionLogin)
}

// Register behaves like Login but keeps the supplied display name.
func (s *AuthService) Register(ctx context.Context, email, password, name string, role domain.Role) (domain.Session, error) {
	return s.start(ctx, email, strings.TrimSpace(name), role, domain.ActionRegister)
}

func (s *AuthService) start(ctx context.Context, email, name string, role domain.Role, action string) (domain.Session, error) {
	sess := domain.Session{
		ID:          s.newID(),
		Email:       strings.TrimSpace(email),
		Name:        name,
		Role:        role,
		Permissions: domain.PermissionsFor(role),
	}
	if err := s.Sessions.Set(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}
	if _, err := s.Audit.Record(ctx, &sess, action, domain.ModuleAuth); err != nil {
		return sess, err
	}
	s.logger().InfoContext(ctx, "session started", "user_id", sess.ID, "role", sess.Role, "action", action)
	return sess, nil
}

// Logout records the departure against the current identity and then clears
// the session. Logging out while anonymous is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	sess, ok := s.Sessions.Current()
	if !ok {
		return nil
	}

	_, recErr := s.Audit.Record(ctx, &sess, domain.ActionLogout, domain.ModuleAuth)
	clearErr := s.Sessions.Clear(ctx)
	if clearErr == nil {
		s.logger().InfoContext(ctx, "session ended", "user_id", sess.ID)
	}
	return errors.Join(recErr, clearErr)
}

// Current returns the active session, if any.
func (s *AuthService) Current() (domain.Session, bool) {
	return s.Sessions.Current()
}

func (s *AuthService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
