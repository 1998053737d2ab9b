package urdf

import (
	"strconv"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/robodesc/pkg/math"
)

// parseGeometry decodes a geometry element, dispatching on its single
// child's tag. All length-valued fields are unit scaled; plane normals
// are directions and stay unscaled. Mesh references are resolved
// against the document directory and must exist.
func (p *parser) parseGeometry(el *xmlquery.Node) (Geometry, error) {
	var geom Geometry

	if el == nil {
		return geom, errors.Wrap(ErrMissingElement, "geometry")
	}
	shape := firstChildElement(el)
	if shape == nil {
		return geom, errors.Wrap(ErrMissingElement, "geometry element has no shape child")
	}

	switch shape.Data {
	case "sphere":
		geom.Type = GeomSphere
		r, ok := attrValue(shape, "radius")
		if !ok {
			return geom, errors.Wrap(ErrMissingAttribute, "sphere must have a radius")
		}
		radius, err := strconv.ParseFloat(r, 64)
		if err != nil {
			return geom, errors.Wrapf(ErrMalformedVector, "sphere radius %q", r)
		}
		geom.Radius = radius * p.scale

	case "box":
		geom.Type = GeomBox
		s, ok := attrValue(shape, "size")
		if !ok {
			return geom, errors.Wrap(ErrMissingAttribute, "box must have a size")
		}
		size, err := parseVector3(s, false)
		if err != nil {
			return geom, errors.Wrap(err, "box size")
		}
		geom.BoxSize = size.Scale(p.scale)

	case "cylinder", "capsule":
		if shape.Data == "cylinder" {
			geom.Type = GeomCylinder
		} else {
			geom.Type = GeomCapsule
		}
		length, lok := attrValue(shape, "length")
		radius, rok := attrValue(shape, "radius")
		if !lok || !rok {
			return geom, errors.Wrapf(ErrMissingAttribute,
				"%s must have both length and radius", shape.Data)
		}
		rv, err := strconv.ParseFloat(radius, 64)
		if err != nil {
			return geom, errors.Wrapf(ErrMalformedVector, "%s radius %q", shape.Data, radius)
		}
		lv, err := strconv.ParseFloat(length, 64)
		if err != nil {
			return geom, errors.Wrapf(ErrMalformedVector, "%s length %q", shape.Data, length)
		}
		geom.Radius = rv * p.scale
		geom.Length = lv * p.scale

	case "mesh":
		geom.Type = GeomMesh
		geom.MeshScale = math.Vec3{X: 1, Y: 1, Z: 1}

		if s, ok := attrValue(shape, "scale"); ok {
			scale, err := parseVector3(s, false)
			if err != nil {
				p.log.Warn("mesh scale should be a vector3, trying uniform scalar",
					zap.String("scale", s))
				if f, ferr := strconv.ParseFloat(s, 64); ferr == nil && f != 0 {
					scale = math.Vec3{X: f, Y: f, Z: f}
				} else {
					scale = geom.MeshScale
				}
			}
			geom.MeshScale = scale
		}
		geom.MeshScale = geom.MeshScale.Scale(p.scale)

		fn, _ := attrValue(shape, "filename")
		if fn == "" {
			return geom, errors.Wrap(ErrMissingAttribute, "mesh filename is empty")
		}
		resolved, ok := p.files.Resolve(p.dir, fn)
		if !ok {
			return geom, errors.Wrapf(ErrMeshNotFound, "mesh %q (from %q)", fn, p.dir)
		}
		geom.MeshFile = resolved

	case "plane":
		geom.Type = GeomPlane
		n, ok := attrValue(shape, "normal")
		if !ok {
			return geom, errors.Wrap(ErrMissingAttribute, "plane must have a normal")
		}
		normal, err := parseVector3(n, false)
		if err != nil {
			return geom, errors.Wrap(err, "plane normal")
		}
		geom.PlaneNormal = normal

	default:
		return geom, errors.Wrapf(ErrUnknownGeometry, "%q", shape.Data)
	}

	return geom, nil
}
