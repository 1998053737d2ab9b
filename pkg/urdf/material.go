package urdf

import (
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/robodesc/pkg/math"
)

// parseMaterial decodes a material element. Only the name is required;
// texture, color and specular are each independently optional. A
// malformed rgba color is a warning, not a failure.
func (p *parser) parseMaterial(el *xmlquery.Node) (*Material, error) {
	name, ok := attrValue(el, "name")
	if !ok {
		return nil, errors.Wrap(ErrMissingAttribute, "material must have a name")
	}

	mat := &Material{
		Name:  name,
		Color: math.Color4{A: 1}, // black, fully opaque
	}

	if t := childElement(el, "texture"); t != nil {
		if fn, ok := attrValue(t, "filename"); ok {
			mat.TextureFile = fn
		}
	}

	if c := childElement(el, "color"); c != nil {
		if rgba, ok := attrValue(c, "rgba"); ok {
			col, err := parseColor4(rgba)
			if err != nil {
				p.log.Warn("material has a malformed rgba color",
					zap.String("material", name), zap.Error(err))
			} else {
				mat.Color = col
			}
		}
	}

	// specular is a non-standard extension
	if s := childElement(el, "specular"); s != nil {
		if rgb, ok := attrValue(s, "rgb"); ok {
			if v, err := parseVector3(rgb, false); err == nil {
				mat.Specular = v
			}
		}
	}

	return mat, nil
}
