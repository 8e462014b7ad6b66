package pipeline

import (
	"fmt"

	"github.com/matzehuels/ledwire/pkg/plan"
	"github.com/matzehuels/ledwire/pkg/render"
	"github.com/matzehuels/ledwire/pkg/render/diagram"
	"github.com/matzehuels/ledwire/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
// The wiring diagram is drawn at most once and shared by svg, png and pdf.
func Render(p *plan.Plan, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	drawSVG := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		var err error
		svg, err = diagram.RenderSVG(p, diagram.WithNumbers(!opts.HideNumbers), diagram.WithScale(opts.Scale))
		return svg, err
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = drawSVG()
		case FormatPNG:
			if data, err = drawSVG(); err == nil {
				data, err = render.ToPNG(data, pngScale)
			}
		case FormatPDF:
			if data, err = drawSVG(); err == nil {
				data, err = render.ToPDF(data)
			}
		case FormatJSON:
			data, err = plan.Marshal(p, plan.EncodingJSON)
		case FormatYAML:
			data, err = plan.Marshal(p, plan.EncodingYAML)
		case FormatDOT:
			data = []byte(nodelink.ToDOT(p, dotOptions(p)))
		case FormatChain:
			data, err = nodelink.RenderSVG(nodelink.ToDOT(p, dotOptions(p)))
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// dotOptions colours the node-link view by the first harness of the plan.
func dotOptions(p *plan.Plan) nodelink.Options {
	var opts nodelink.Options
	if len(p.Harnesses) > 0 {
		opts.Harness = p.Harnesses[0].Name
	}
	return opts
}
