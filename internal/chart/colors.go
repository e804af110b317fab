package chart

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/riskibarqy/team-report/internal/domain/team"
)

var (
	colorGreen = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	colorRed   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorGrey  = color.RGBA{R: 220, G: 220, B: 220, A: 255}

	fallbackPrimary   = color.RGBA{R: 0, G: 51, B: 102, A: 255}
	fallbackSecondary = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

type palette struct {
	primary   color.Color
	secondary color.Color
}

func newPalette(identity team.Identity) palette {
	return palette{
		primary:   parseHex(identity.PrimaryColor, fallbackPrimary),
		secondary: parseHex(identity.SecondaryColor, fallbackSecondary),
	}
}

// parseHex reads "#RRGGBB" or "RRGGBB".
func parseHex(value string, fallback color.Color) color.Color {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(value) != 6 {
		return fallback
	}
	rgb, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 255}
}
