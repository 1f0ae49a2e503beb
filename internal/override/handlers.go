package override

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"subtag/internal/stylesheet"
	"subtag/internal/tags"
)

// blockInput is what every handler sees for one override block.
type blockInput struct {
	text  string
	style Style
	info  ScriptInfo
}

// directive is the partial result of one block.
type directive struct {
	attrs  Attributes
	markup []string
	fade   *Fade
	fired  []string
}

type handler struct {
	name  string
	apply func(c *Compiler, in blockInput, d *directive) bool
}

// handlers run in this order for every block; later entries may read what
// earlier ones wrote into the directive.
var handlers = []handler{
	{name: "inline", apply: handleInline},
	{name: "font_size", apply: handleFontSize},
	{name: "color", apply: handleColor},
	{name: "fade", apply: handleFade},
	{name: "position", apply: handlePosition},
	{name: "rotation", apply: handleRotation},
	{name: "alignment", apply: handleAlignment},
}

func handleInline(_ *Compiler, in blockInput, d *directive) bool {
	found := false
	for _, toggle := range tags.Toggles() {
		markup, ok := toggle.Match(in.text)
		if !ok {
			continue
		}
		d.markup = append(d.markup, markup)
		found = true
	}
	return found
}

func handleFontSize(_ *Compiler, in blockInput, d *directive) bool {
	m := tags.FontSize.FindStringSubmatch(in.text)
	if m == nil {
		return false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return false
	}
	d.attrs.FontSize = ptr(value / float64(in.info.PlayResY))
	return true
}

const shadowLayers = 8

func handleColor(c *Compiler, in blockInput, d *directive) bool {
	var m []string
	for _, match := range tags.Color.FindAllStringSubmatch(in.text, -1) {
		if slot := match[1]; slot == "" || slot == "1" || slot == "3" {
			m = match
			break
		}
		c.logger.Debug("colour slot ignored", slog.String("slot", match[1]), slog.String("tag", match[0]))
	}
	if m == nil {
		return false
	}
	rgb := bgrToRGB(m[2])

	var class, rule string
	switch m[1] {
	case "", "1":
		class = "p" + rgb
		rule = stylesheet.FormatRule(class, stylesheet.Declaration{
			Property: "color",
			Value:    "#" + rgb + " !important",
		})
	case "3":
		spread := 1.8 * in.style.outlineThickness() * c.surfaceHeight * 2
		layer := "0 0 " + formatNumber(spread) + "px #" + rgb
		class = "ts" + rgb
		rule = stylesheet.FormatRule(class, stylesheet.Declaration{
			Property: "text-shadow",
			Value:    strings.Repeat(layer+", ", shadowLayers-1) + layer + " !important",
		})
	}

	if c.registry.Register(class, rule) {
		c.logger.Debug("style rule registered", slog.String("class", class))
	}
	d.markup = append(d.markup, `<span class="`+class+`">`)
	return true
}

// bgrToRGB converts an ASS colour payload (BBGGRR, optionally prefixed with
// alpha, short forms left-padded) to an upper-case RRGGBB string.
func bgrToRGB(hex string) string {
	hex = strings.ToUpper(hex)
	if len(hex) < 6 {
		hex = strings.Repeat("0", 6-len(hex)) + hex
	}
	bgr := hex[len(hex)-6:]
	return bgr[4:6] + bgr[2:4] + bgr[0:2]
}

func handleFade(_ *Compiler, in blockInput, d *directive) bool {
	m := tags.Fade.FindStringSubmatch(in.text)
	if m == nil {
		return false
	}
	fadeIn, errIn := strconv.ParseFloat(m[1], 64)
	fadeOut, errOut := strconv.ParseFloat(m[2], 64)
	if errIn != nil || errOut != nil {
		return false
	}
	d.fade = &Fade{InMS: fadeIn, OutMS: fadeOut}
	return true
}

func handlePosition(_ *Compiler, in blockInput, d *directive) bool {
	m := tags.Position.FindStringSubmatch(in.text)
	if m == nil {
		return false
	}
	x, errX := strconv.ParseFloat(m[1], 64)
	y, errY := strconv.ParseFloat(m[2], 64)
	if errX != nil || errY != nil {
		return false
	}

	alignment := tags.NormalizeStyleAlignment(in.style.Alignment)
	if a, ok := tags.ParseAlignment(in.text); ok {
		alignment = a
	}

	if tags.IsMiddle(alignment) {
		d.attrs.Align = ptr(-50.0)
	} else {
		d.attrs.Align = ptr(0.0)
	}
	if tags.IsRight(alignment) {
		d.attrs.Horiz = ptr("right")
	} else {
		d.attrs.Horiz = ptr("left")
	}
	d.attrs.Position = ptr(math.Round(x / float64(in.info.PlayResX) * 100))

	if tags.IsVCenter(alignment) {
		d.attrs.VAlign = ptr(50.0)
	} else {
		d.attrs.VAlign = ptr(0.0)
	}
	if tags.IsTop(alignment) {
		d.attrs.Vert = ptr("top")
	} else {
		d.attrs.Vert = ptr("bottom")
	}
	d.attrs.Line = ptr(math.Round(y / float64(in.info.PlayResY) * 100))
	return true
}

func handleRotation(_ *Compiler, in blockInput, d *directive) bool {
	m := tags.Rotation.FindStringSubmatch(in.text)
	if m == nil {
		return false
	}
	degrees, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return false
	}
	axis := m[1]
	if axis == "" {
		axis = "z"
	}
	// Markup angles run counter-clockwise, CSS rotations clockwise.
	d.attrs.Rotate = ptr("rotate" + strings.ToUpper(axis) + "(" + formatNumber(-degrees) + "deg)")
	return true
}

func handleAlignment(_ *Compiler, in blockInput, d *directive) bool {
	if tags.Position.MatchString(in.text) {
		return false
	}
	alignment, ok := tags.ParseAlignment(in.text)
	if !ok {
		return false
	}

	left := percent(in.style.MarginL, in.info.PlayResX)
	right := percent(in.style.MarginR, in.info.PlayResX)
	vert := percent(in.style.MarginV, in.info.PlayResY)

	if tags.IsMiddle(alignment) {
		d.attrs.Position = ptr((left + 100 - right) / 2)
		d.attrs.Horiz = ptr("left")
		d.attrs.Align = ptr(-50.0)
		d.attrs.TextAlign = ptr("center")
	} else {
		horiz := "right"
		position := right
		if tags.IsLeft(alignment) {
			horiz = "left"
			position = left
		}
		d.attrs.Position = ptr(position)
		d.attrs.Horiz = ptr(horiz)
		d.attrs.Align = ptr(0.0)
		d.attrs.TextAlign = ptr(horiz)
	}

	if tags.IsVCenter(alignment) {
		d.attrs.VAlign = ptr(50.0)
		d.attrs.Vert = ptr("bottom")
		d.attrs.Line = ptr(50.0)
	} else {
		d.attrs.VAlign = ptr(0.0)
		d.attrs.Line = ptr(vert)
		if tags.IsTop(alignment) {
			d.attrs.Vert = ptr("top")
		} else {
			d.attrs.Vert = ptr("bottom")
		}
	}
	return true
}

func percent(value float64, resolution int) float64 {
	return value / float64(resolution) * 100
}

// formatNumber prints at most two decimals without trailing zeros.
func formatNumber(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
