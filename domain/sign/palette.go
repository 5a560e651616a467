package sign

import "image/color"

// Palette maps sign-type codes to a primary stroke/chip color and a secondary
// color that keeps chip text readable on the primary background. Unknown or
// empty codes fall back to a neutral pair so rendering never fails on a stub.

type colorPair struct {
	primary   color.RGBA
	secondary color.RGBA
}

var (
	fallbackPair = colorPair{
		primary:   color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff},
		secondary: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	}

	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}

	palette = map[string]colorPair{
		CodeCardiomegaly:   {primary: color.RGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}, secondary: white},
		CodeCondensation:   {primary: color.RGBA{R: 0xfb, G: 0x8c, B: 0x00, A: 0xff}, secondary: black},
		CodeMasses:         {primary: color.RGBA{R: 0x8e, G: 0x24, B: 0xaa, A: 0xff}, secondary: white},
		CodeNodule:         {primary: color.RGBA{R: 0x39, G: 0x49, B: 0xab, A: 0xff}, secondary: white},
		CodePleuralEff:     {primary: color.RGBA{R: 0x03, G: 0x9b, B: 0xe5, A: 0xff}, secondary: black},
		CodePneumothorax:   {primary: color.RGBA{R: 0x00, G: 0x89, B: 0x7b, A: 0xff}, secondary: white},
		CodeRedistribution: {primary: color.RGBA{R: 0x7c, G: 0xb3, B: 0x42, A: 0xff}, secondary: black},
		CodeNoFinding:      {primary: color.RGBA{R: 0x75, G: 0x75, B: 0x75, A: 0xff}, secondary: white},
		CodeNormal:         {primary: color.RGBA{R: 0x54, G: 0x6e, B: 0x7a, A: 0xff}, secondary: white},
	}
)

// ColorFor returns the display color for a type code. secondary selects the
// contrasting text color instead of the primary stroke color.
func ColorFor(code string, secondary bool) color.RGBA {
	pair, ok := palette[code]
	if !ok {
		pair = fallbackPair
	}
	if secondary {
		return pair.secondary
	}
	return pair.primary
}
