package colormath

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	Black = "#000000"
	White = "#FFFFFF"

	// Luma at or above this picks a black foreground.
	contrastThreshold = 140
)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type RGB struct {
	R, G, B float64
}

type HSL struct {
	H, S, L float64
}

// Normalize accepts #RGB, #RRGGBB and their bare variants and returns the
// canonical uppercase #RRGGBB form. Anything else reports false.
func Normalize(input string) (string, bool) {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return "", false
	}
	digits := m[1]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return "#" + strings.ToUpper(digits), true
}

// MustNormalize is Normalize for values already known to be valid.
func MustNormalize(input string) string {
	hex, ok := Normalize(input)
	if !ok {
		panic(fmt.Sprintf("colormath: invalid color %q", input))
	}
	return hex
}

// channels returns the 0-255 channels of a canonical color. Any alpha
// suffix is ignored.
func channels(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) < 6 {
		return 0, 0, 0
	}
	rv, _ := strconv.ParseUint(hex[0:2], 16, 8)
	gv, _ := strconv.ParseUint(hex[2:4], 16, 8)
	bv, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return int(rv), int(gv), int(bv)
}

// alphaOf returns the alpha byte of #RRGGBBAA as 0-1, or 1 when absent.
func alphaOf(hex string) float64 {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 8 {
		return 1
	}
	a, err := strconv.ParseUint(hex[6:8], 16, 8)
	if err != nil {
		return 1
	}
	return float64(a) / 255.0
}

func fromChannels(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func HexToRGB(hex string) RGB {
	r, g, b := channels(hex)
	return RGB{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

func RGBToHex(rgb RGB) string {
	r := math.Round(clampUnit(rgb.R) * 255)
	g := math.Round(clampUnit(rgb.G) * 255)
	b := math.Round(clampUnit(rgb.B) * 255)
	return fromChannels(int(r), int(g), int(b))
}

// ApplyAlpha appends a two digit alpha byte. alpha is clamped to [0,1].
func ApplyAlpha(hex string, alpha float64) string {
	a := int(math.Round(clampUnit(alpha) * 255))
	return fmt.Sprintf("%s%02X", hex, a)
}

// Contrast picks black or white text for a background using YIQ luma.
func Contrast(hex string) string {
	r, g, b := channels(hex)
	if r*299+g*587+b*114 >= contrastThreshold*1000 {
		return Black
	}
	return White
}

// Luma is (299R + 587G + 114B) / 1000.
func Luma(hex string) float64 {
	r, g, b := channels(hex)
	return float64(r*299+g*587+b*114) / 1000.0
}

// Darken multiplies every channel by factor.
func Darken(hex string, factor float64) string {
	f := clampUnit(factor)
	r, g, b := channels(hex)
	return fromChannels(
		int(math.Round(float64(r)*f)),
		int(math.Round(float64(g)*f)),
		int(math.Round(float64(b)*f)),
	)
}

// Invert flips every channel. Used to flash a region on peek.
func Invert(hex string) string {
	r, g, b := channels(hex)
	return fromChannels(255-r, 255-g, 255-b)
}

// ToHSL returns hue in degrees [0,360) and saturation/lightness in [0,1].
func ToHSL(hex string) HSL {
	rgb := HexToRGB(hex)
	col := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}
	h, s, l := col.Hsl()
	return HSL{H: h, S: s, L: l}
}

func FromHSL(hsl HSL) string {
	h := math.Mod(hsl.H, 360)
	if h < 0 {
		h += 360
	}
	col := colorful.Hsl(h, clampUnit(hsl.S), clampUnit(hsl.L)).Clamped()
	r, g, b := col.RGB255()
	return fromChannels(int(r), int(g), int(b))
}

// VividBoost lifts lightness and saturation toward 1 by factor*(1-value).
// factor is clamped to [0,0.5].
func VividBoost(hex string, factor float64) string {
	f := math.Max(0, math.Min(0.5, factor))
	hsl := ToHSL(hex)
	hsl.L += f * (1 - hsl.L)
	hsl.S += f * (1 - hsl.S)
	return FromHSL(hsl)
}

// Blend composites a possibly translucent #RRGGBBAA color over an opaque one.
func Blend(over, under string) string {
	a := alphaOf(over)
	or, og, ob := channels(over)
	ur, ug, ub := channels(under)
	mix := func(o, u int) int {
		return int(math.Round(float64(o)*a + float64(u)*(1-a)))
	}
	return fromChannels(mix(or, ur), mix(og, ug), mix(ob, ub))
}

// IsOpaque reports whether hex carries no alpha suffix.
func IsOpaque(hex string) bool {
	return len(strings.TrimPrefix(hex, "#")) == 6
}

func sRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func Luminance(hex string) float64 {
	rgb := HexToRGB(hex)
	return 0.2126*sRGBToLinear(rgb.R) + 0.7152*sRGBToLinear(rgb.G) + 0.0722*sRGBToLinear(rgb.B)
}

func ContrastRatio(hexFg, hexBg string) float64 {
	lumFg := Luminance(hexFg)
	lumBg := Luminance(hexBg)
	lighter := math.Max(lumFg, lumBg)
	darker := math.Min(lumFg, lumBg)
	return (lighter + 0.05) / (darker + 0.05)
}
