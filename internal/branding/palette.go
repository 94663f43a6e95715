// Package branding resolves a business's chosen color scheme and font style
// into concrete hex colors and font family names, and derives the full tonal
// ramp used to theme generated sites.
package branding

import (
	"fmt"
	"regexp"

	"bizforge/internal/models"
)

// Colors is a resolved primary/secondary pair in #RRGGBB form.
type Colors struct {
	Primary   string
	Secondary string
}

// Fonts is a resolved heading/body font family pair.
type Fonts struct {
	Heading string
	Body    string
}

const (
	DefaultPrimary   = "#3b82f6"
	DefaultSecondary = "#1e40af"
	DefaultFont      = "Inter"
)

// SchemeCustom marks branding where the custom hex fields are authoritative.
const SchemeCustom = "custom"

// colorSchemes are the named palettes selectable during onboarding.
var colorSchemes = map[string]Colors{
	"blue":   {Primary: "#3b82f6", Secondary: "#1e40af"},
	"green":  {Primary: "#10b981", Secondary: "#047857"},
	"purple": {Primary: "#8b5cf6", Secondary: "#5b21b6"},
	"red":    {Primary: "#ef4444", Secondary: "#b91c1c"},
	"orange": {Primary: "#f97316", Secondary: "#c2410c"},
	"teal":   {Primary: "#14b8a6", Secondary: "#0f766e"},
	"slate":  {Primary: "#64748b", Secondary: "#334155"},
}

// fontStyles are the named heading/body pairings.
var fontStyles = map[string]Fonts{
	"modern":   {Heading: "Inter", Body: "Inter"},
	"elegant":  {Heading: "Playfair Display", Body: "Lato"},
	"bold":     {Heading: "Montserrat", Body: "Open Sans"},
	"friendly": {Heading: "Poppins", Body: "Nunito"},
}

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ResolveColors maps a branding config to a concrete color pair. When the
// scheme is "custom" the custom hex fields win; unknown schemes and malformed
// hex values fall back to the defaults so generation never fails on a bad
// color string.
func ResolveColors(branding *models.BrandingConfig) Colors {
	if branding == nil {
		return Colors{Primary: DefaultPrimary, Secondary: DefaultSecondary}
	}

	if branding.ColorScheme == SchemeCustom {
		c := Colors{Primary: DefaultPrimary, Secondary: DefaultSecondary}
		if hexPattern.MatchString(branding.CustomPrimaryColor) {
			c.Primary = branding.CustomPrimaryColor
		}
		if hexPattern.MatchString(branding.CustomSecondaryColor) {
			c.Secondary = branding.CustomSecondaryColor
		}
		return c
	}

	if scheme, ok := colorSchemes[branding.ColorScheme]; ok {
		return scheme
	}
	return Colors{Primary: DefaultPrimary, Secondary: DefaultSecondary}
}

// ResolveFonts maps a branding config to a concrete font pairing, defaulting
// to Inter for unknown styles.
func ResolveFonts(branding *models.BrandingConfig) Fonts {
	if branding == nil {
		return Fonts{Heading: DefaultFont, Body: DefaultFont}
	}
	if fonts, ok := fontStyles[branding.FontStyle]; ok {
		return fonts
	}
	return Fonts{Heading: DefaultFont, Body: DefaultFont}
}

// ShadeKeys lists the ramp indices from lightest to darkest.
var ShadeKeys = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// lightenFactors blend toward white for shades below 500, per step 50..400.
var lightenFactors = map[int]float64{
	50:  0.95,
	100: 0.9,
	200: 0.75,
	300: 0.6,
	400: 0.4,
}

// darkenFactors scale channels down for shades above 500, per step 600..950.
var darkenFactors = map[int]float64{
	600: -0.1,
	700: -0.25,
	800: -0.4,
	900: -0.55,
	950: -0.7,
}

// DeriveShades expands a base color into the 11-step tonal ramp. Shade 500 is
// the exact input; malformed hex falls back to the default blue triple.
func DeriveShades(baseHex string) map[int]string {
	r, g, b, ok := parseHex(baseHex)
	if !ok {
		r, g, b, _ = parseHex(DefaultPrimary)
		baseHex = DefaultPrimary
	}

	shades := make(map[int]string, len(ShadeKeys))
	for key, f := range lightenFactors {
		shades[key] = formatHex(
			blendToWhite(r, f),
			blendToWhite(g, f),
			blendToWhite(b, f),
		)
	}
	shades[500] = baseHex
	for key, f := range darkenFactors {
		shades[key] = formatHex(
			scaleChannel(r, f),
			scaleChannel(g, f),
			scaleChannel(b, f),
		)
	}
	return shades
}

func parseHex(hex string) (r, g, b int, ok bool) {
	if !hexPattern.MatchString(hex) {
		return 0, 0, 0, false
	}
	n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	if err != nil || n != 3 {
		return 0, 0, 0, false
	}
	return r, g, b, true
}

func formatHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}

func blendToWhite(c int, factor float64) int {
	return c + int(float64(255-c)*factor)
}

func scaleChannel(c int, factor float64) int {
	return c + int(float64(c)*factor)
}

func clamp(c int) int {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}
