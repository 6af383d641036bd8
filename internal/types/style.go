//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// StyleSettings holds the presentation parameters applied uniformly across a
// rendered document. Numeric fields are constrained to sane print ranges.
type StyleSettings struct {
	TemplateID   string  `json:"templateId" validate:"required"`
	FontFamily   string  `json:"fontFamily" validate:"required"`
	FontSize     float64 `json:"fontSize" validate:"gte=8,lte=24"`
	LineHeight   float64 `json:"lineHeight" validate:"gte=1.0,lte=3.0"`
	PrimaryColor string  `json:"primaryColor" validate:"required,hexcolor"`
}

// StylePatch carries a partial style update; nil fields are left untouched.
type StylePatch struct {
	TemplateID   *string  `json:"templateId,omitempty"`
	FontFamily   *string  `json:"fontFamily,omitempty"`
	FontSize     *float64 `json:"fontSize,omitempty"`
	LineHeight   *float64 `json:"lineHeight,omitempty"`
	PrimaryColor *string  `json:"primaryColor,omitempty"`
}

var styleValidator = validator.New()

// DefaultStyleSettings returns the style applied to a fresh document.
func DefaultStyleSettings() StyleSettings {
	return StyleSettings{
		TemplateID:   "modern",
		FontFamily:   "Inter",
		FontSize:     12,
		LineHeight:   1.5,
		PrimaryColor: "#2563eb",
	}
}

// Validate checks that the settings stay within the supported print ranges.
func (s StyleSettings) Validate() error {
	return styleValidator.Struct(s)
}

// Apply merges the patch into a copy of the settings and returns it.
func (s StyleSettings) Apply(patch StylePatch) StyleSettings {
	out := s
	if patch.TemplateID != nil {
		out.TemplateID = *patch.TemplateID
	}
	if patch.FontFamily != nil {
		out.FontFamily = *patch.FontFamily
	}
	if patch.FontSize != nil {
		out.FontSize = *patch.FontSize
	}
	if patch.LineHeight != nil {
		out.LineHeight = *patch.LineHeight
	}
	if patch.PrimaryColor != nil {
		out.PrimaryColor = *patch.PrimaryColor
	}
	return out
}
