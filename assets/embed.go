package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// PlaceholderRadiographPNG contains the raw PNG bytes shown before a study
// is loaded or imported.
//
//go:embed placeholder_radiograph.png
var PlaceholderRadiographPNG []byte

// SampleReportText is an embedded demo report used to prefill the report
// panel so field extraction can be tried without a real document.
//
//go:embed sample_report.txt
var SampleReportText string

// PlaceholderRadiograph decodes the embedded PNG into an image.Image.
func PlaceholderRadiograph() (image.Image, error) {
	if len(PlaceholderRadiographPNG) == 0 {
		return nil, fmt.Errorf("embedded placeholder_radiograph.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(PlaceholderRadiographPNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
