package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/store"
)

const (
	ActionDesignSystemUpdated = "Actualización del sistema de diseño"
	ActionDesignSystemReset   = "Restablecimiento del sistema de diseño"
)

// ThemeService stores the design tokens. A missing or unreadable record reads
// as the defaults.
type ThemeService struct {
	Store  store.Store
	Audit  *AuditLog
	Logger *slog.Logger
}

func (s *ThemeService) Get(ctx context.Context) (domain.DesignSystemConfig, error) {
	return s.load(ctx, s.Store.KV())
}

func (s *ThemeService) load(ctx context.Context, kv store.KV) (domain.DesignSystemConfig, error) {
	cfg, err := store.LoadOver(ctx, kv, store.KeyDesignSystem, domain.DefaultDesignSystem())
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.DefaultDesignSystem(), nil
	case errors.Is(err, store.ErrCorrupt):
		s.log().Warn("design system unreadable, using defaults", "error", err)
		return domain.DefaultDesignSystem(), nil
	case err != nil:
		return domain.DesignSystemConfig{}, err
	}
	// Records written before a token existed may carry it as zero.
	merged := domain.DefaultDesignSystem()
	if err := fillZero(&merged, cfg); err != nil {
		s.log().Warn("design system has invalid tokens", "error", err)
		return cfg, nil
	}
	return merged, nil
}

// Update merges p over the stored tokens.
func (s *ThemeService) Update(ctx context.Context, sess *domain.Session, p domain.DesignSystemPatch) (domain.DesignSystemConfig, error) {
	if err := Authorize(sess, domain.PermSettings); err != nil {
		return domain.DesignSystemConfig{}, err
	}

	var out domain.DesignSystemConfig
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		cur, err := s.load(ctx, tx.KV())
		if err != nil {
			return err
		}
		out, err = cur.Merge(p)
		if err != nil {
			return err
		}
		return store.Save(ctx, tx.KV(), store.KeyDesignSystem, out)
	})
	if err != nil {
		return domain.DesignSystemConfig{}, err
	}

	if _, err := s.Audit.Record(ctx, sess, ActionDesignSystemUpdated, domain.ModuleSettings); err != nil {
		return out, err
	}
	return out, nil
}

// Reset restores the defaults.
func (s *ThemeService) Reset(ctx context.Context, sess *domain.Session) (domain.DesignSystemConfig, error) {
	if err := Authorize(sess, domain.PermSettings); err != nil {
		return domain.DesignSystemConfig{}, err
	}
	cfg := domain.DefaultDesignSystem()
	if err := store.Save(ctx, s.Store.KV(), store.KeyDesignSystem, cfg); err != nil {
		return domain.DesignSystemConfig{}, err
	}
	if _, err := s.Audit.Record(ctx, sess, ActionDesignSystemReset, domain.ModuleSettings); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (s *ThemeService) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// fillZero copies the non-zero tokens of src onto dst. Radius is copied
// as is since zero is a valid radius.
func fillZero(dst *domain.DesignSystemConfig, src domain.DesignSystemConfig) error {
	p := domain.DesignSystemPatch{}
	str := func(v string) *string {
		if v == "" {
			return nil
		}
		return &v
	}
	num := func(v int) *int {
		if v == 0 {
			return nil
		}
		return &v
	}
	flt := func(v float64) *float64 {
		if v == 0 {
			return nil
		}
		return &v
	}
	p.FontFamilyBase, p.FontFamilyHeading = str(src.FontFamilyBase), str(src.FontFamilyHeading)
	p.BaseFontSize = num(src.BaseFontSize)
	p.BenavidesBlue, p.BenavidesRed = str(src.BenavidesBlue), str(src.BenavidesRed)
	p.FontWeightLight, p.FontWeightNormal = num(src.FontWeightLight), num(src.FontWeightNormal)
	p.FontWeightMedium, p.FontWeightSemibold, p.FontWeightBold = num(src.FontWeightMedium), num(src.FontWeightSemibold), num(src.FontWeightBold)
	p.TextXs, p.TextSm, p.TextBase, p.TextLg = flt(src.TextXs), flt(src.TextSm), flt(src.TextBase), flt(src.TextLg)
	p.TextXl, p.Text2xl, p.Text3xl, p.Text4xl = flt(src.TextXl), flt(src.Text2xl), flt(src.Text3xl), flt(src.Text4xl)
	p.LineHeightNone, p.LineHeightTight = flt(src.LineHeightNone), flt(src.LineHeightTight)
	p.LineHeightNormal, p.LineHeightRelaxed = flt(src.LineHeightNormal), flt(src.LineHeightRelaxed)
	p.LetterSpacingTight, p.LetterSpacingNormal, p.LetterSpacingWide = str(src.LetterSpacingTight), str(src.LetterSpacingNormal), str(src.LetterSpacingWide)
	p.Radius = &src.Radius

	merged, err := dst.Merge(p)
	if err != nil {
		return err
	}
	*dst = merged
	return nil
}
