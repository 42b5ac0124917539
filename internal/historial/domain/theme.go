package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// DesignSystemConfig holds the design tokens applied to every screen.
type DesignSystemConfig struct {
	FontFamilyBase    string `json:"fontFamilyBase"`
	FontFamilyHeading string `json:"fontFamilyHeading"`
	BaseFontSize      int    `json:"baseFontSize"`

	BenavidesBlue string `json:"benavidesBlue"`
	BenavidesRed  string `json:"benavidesRed"`

	FontWeightLight    int `json:"fontWeightLight"`
	FontWeightNormal   int `json:"fontWeightNormal"`
	FontWeightMedium   int `json:"fontWeightMedium"`
	FontWeightSemibold int `json:"fontWeightSemibold"`
	FontWeightBold     int `json:"fontWeightBold"`

	TextXs   float64 `json:"textXs"`
	TextSm   float64 `json:"textSm"`
	TextBase float64 `json:"textBase"`
	TextLg   float64 `json:"textLg"`
	TextXl   float64 `json:"textXl"`
	Text2xl  float64 `json:"text2xl"`
	Text3xl  float64 `json:"text3xl"`
	Text4xl  float64 `json:"text4xl"`

	LineHeightNone    float64 `json:"lineHeightNone"`
	LineHeightTight   float64 `json:"lineHeightTight"`
	LineHeightNormal  float64 `json:"lineHeightNormal"`
	LineHeightRelaxed float64 `json:"lineHeightRelaxed"`

	LetterSpacingTight  string `json:"letterSpacingTight"`
	LetterSpacingNormal string `json:"letterSpacingNormal"`
	LetterSpacingWide   string `json:"letterSpacingWide"`

	Radius int `json:"radius"`
}

// DefaultDesignSystem returns the brand defaults.
func DefaultDesignSystem() DesignSystemConfig {
	return DesignSystemConfig{
		FontFamilyBase:    "'AG Book Rounded'",
		FontFamilyHeading: "'AG Book Rounded'",
		BaseFontSize:      16,

		BenavidesBlue: "#223482",
		BenavidesRed:  "#e2211c",

		FontWeightLight:    300,
		FontWeightNormal:   400,
		FontWeightMedium:   500,
		FontWeightSemibold: 600,
		FontWeightBold:     700,

		TextXs:   0.75,
		TextSm:   0.875,
		TextBase: 1,
		TextLg:   1.125,
		TextXl:   1.25,
		Text2xl:  1.5,
		Text3xl:  1.875,
		Text4xl:  2.25,

		LineHeightNone:    1,
		LineHeightTight:   1.25,
		LineHeightNormal:  1.5,
		LineHeightRelaxed: 1.75,

		LetterSpacingTight:  "-0.025em",
		LetterSpacingNormal: "0",
		LetterSpacingWide:   "0.025em",

		Radius: 10,
	}
}

// DesignSystemPatch is a partial update. Nil fields keep their current value.
type DesignSystemPatch struct {
	FontFamilyBase    *string `json:"fontFamilyBase,omitempty"`
	FontFamilyHeading *string `json:"fontFamilyHeading,omitempty"`
	BaseFontSize      *int    `json:"baseFontSize,omitempty"`

	BenavidesBlue *string `json:"benavidesBlue,omitempty"`
	BenavidesRed  *string `json:"benavidesRed,omitempty"`

	FontWeightLight    *int `json:"fontWeightLight,omitempty"`
	FontWeightNormal   *int `json:"fontWeightNormal,omitempty"`
	FontWeightMedium   *int `json:"fontWeightMedium,omitempty"`
	FontWeightSemibold *int `json:"fontWeightSemibold,omitempty"`
	FontWeightBold     *int `json:"fontWeightBold,omitempty"`

	TextXs   *float64 `json:"textXs,omitempty"`
	TextSm   *float64 `json:"textSm,omitempty"`
	TextBase *float64 `json:"textBase,omitempty"`
	TextLg   *float64 `json:"textLg,omitempty"`
	TextXl   *float64 `json:"textXl,omitempty"`
	Text2xl  *float64 `json:"text2xl,omitempty"`
	Text3xl  *float64 `json:"text3xl,omitempty"`
	Text4xl  *float64 `json:"text4xl,omitempty"`

	LineHeightNone    *float64 `json:"lineHeightNone,omitempty"`
	LineHeightTight   *float64 `json:"lineHeightTight,omitempty"`
	LineHeightNormal  *float64 `json:"lineHeightNormal,omitempty"`
	LineHeightRelaxed *float64 `json:"lineHeightRelaxed,omitempty"`

	LetterSpacingTight  *string `json:"letterSpacingTight,omitempty"`
	LetterSpacingNormal *string `json:"letterSpacingNormal,omitempty"`
	LetterSpacingWide   *string `json:"letterSpacingWide,omitempty"`

	Radius *int `json:"radius,omitempty"`
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Merge applies p over c and validates the result.
func (c DesignSystemConfig) Merge(p DesignSystemPatch) (DesignSystemConfig, error) {
	setIf(&c.FontFamilyBase, p.FontFamilyBase)
	setIf(&c.FontFamilyHeading, p.FontFamilyHeading)
	setIf(&c.BaseFontSize, p.BaseFontSize)
	setIf(&c.BenavidesBlue, p.BenavidesBlue)
	setIf(&c.BenavidesRed, p.BenavidesRed)
	setIf(&c.FontWeightLight, p.FontWeightLight)
	setIf(&c.FontWeightNormal, p.FontWeightNormal)
	setIf(&c.FontWeightMedium, p.FontWeightMedium)
	setIf(&c.FontWeightSemibold, p.FontWeightSemibold)
	setIf(&c.FontWeightBold, p.FontWeightBold)
	setIf(&c.TextXs, p.TextXs)
	setIf(&c.TextSm, p.TextSm)
	setIf(&c.TextBase, p.TextBase)
	setIf(&c.TextLg, p.TextLg)
	setIf(&c.TextXl, p.TextXl)
	setIf(&c.Text2xl, p.Text2xl)
	setIf(&c.Text3xl, p.Text3xl)
	setIf(&c.Text4xl, p.Text4xl)
	setIf(&c.LineHeightNone, p.LineHeightNone)
	setIf(&c.LineHeightTight, p.LineHeightTight)
	setIf(&c.LineHeightNormal, p.LineHeightNormal)
	setIf(&c.LineHeightRelaxed, p.LineHeightRelaxed)
	setIf(&c.LetterSpacingTight, p.LetterSpacingTight)
	setIf(&c.LetterSpacingNormal, p.LetterSpacingNormal)
	setIf(&c.LetterSpacingWide, p.LetterSpacingWide)
	setIf(&c.Radius, p.Radius)
	return c, c.Validate()
}

func (c DesignSystemConfig) Validate() error {
	if strings.TrimSpace(c.FontFamilyBase) == "" || strings.TrimSpace(c.FontFamilyHeading) == "" {
		return invalid("la familia tipográfica no puede estar vacía")
	}
	if c.BaseFontSize <= 0 {
		return invalid("el tamaño base debe ser positivo")
	}
	if !hexColor.MatchString(c.BenavidesBlue) || !hexColor.MatchString(c.BenavidesRed) {
		return invalid("los colores deben ser hexadecimales (#rrggbb)")
	}
	for _, w := range []int{c.FontWeightLight, c.FontWeightNormal, c.FontWeightMedium, c.FontWeightSemibold, c.FontWeightBold} {
		if w < 100 || w > 900 {
			return invalid(fmt.Sprintf("peso tipográfico fuera de rango: %d", w))
		}
	}
	if c.Radius < 0 {
		return invalid("el radio no puede ser negativo")
	}
	return nil
}

const fontFallbacks = "'Nunito', 'Quicksand', 'Varela Round', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif"

// CSSVariables renders the tokens as custom properties, in a stable order.
func (c DesignSystemConfig) CSSVariables() [][2]string {
	rem := func(v float64) string { return fmt.Sprintf("%grem", v) }
	num := func(v float64) string { return fmt.Sprintf("%g", v) }
	return [][2]string{
		{"--font-family-base", c.FontFamilyBase + ", " + fontFallbacks},
		{"--font-family-heading", c.FontFamilyHeading + ", " + fontFallbacks},
		{"--font-size", fmt.Sprintf("%dpx", c.BaseFontSize)},
		{"--text-xs", rem(c.TextXs)},
		{"--text-sm", rem(c.TextSm)},
		{"--text-base", rem(c.TextBase)},
		{"--text-lg", rem(c.TextLg)},
		{"--text-xl", rem(c.TextXl)},
		{"--text-2xl", rem(c.Text2xl)},
		{"--text-3xl", rem(c.Text3xl)},
		{"--text-4xl", rem(c.Text4xl)},
		{"--font-weight-light", fmt.Sprint(c.FontWeightLight)},
		{"--font-weight-normal", fmt.Sprint(c.FontWeightNormal)},
		{"--font-weight-medium", fmt.Sprint(c.FontWeightMedium)},
		{"--font-weight-semibold", fmt.Sprint(c.FontWeightSemibold)},
		{"--font-weight-bold", fmt.Sprint(c.FontWeightBold)},
		{"--line-height-none", num(c.LineHeightNone)},
		{"--line-height-tight", num(c.LineHeightTight)},
		{"--line-height-normal", num(c.LineHeightNormal)},
		{"--line-height-relaxed", num(c.LineHeightRelaxed)},
		{"--letter-spacing-tight", c.LetterSpacingTight},
		{"--letter-spacing-normal", c.LetterSpacingNormal},
		{"--letter-spacing-wide", c.LetterSpacingWide},
		{"--benavides-blue", c.BenavidesBlue},
		{"--benavides-red", c.BenavidesRed},
		{"--primary", c.BenavidesBlue},
		{"--secondary", c.BenavidesRed},
		{"--radius", fmt.Sprintf("%dpx", c.Radius)},
	}
}

// CSS renders a :root block with every custom property.
func (c DesignSystemConfig) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, kv := range c.CSSVariables() {
		fmt.Fprintf(&b, "  %s: %s;\n", kv[0], kv[1])
	}
	b.WriteString("}\n")
	return b.String()
}
