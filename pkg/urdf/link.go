package urdf

import (
	"strconv"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/robodesc/pkg/math"
)

// parseLink assembles one link: contact parameters, inertial data and
// any number of visual and collision children, in document order. A
// failure in any child aborts the whole link.
func (p *parser) parseLink(model *Model, el *xmlquery.Node) (*Link, error) {
	name, ok := attrValue(el, "name")
	if !ok {
		return nil, errors.Wrap(ErrMissingAttribute, "link must have a name")
	}
	link := &Link{Name: name}

	if ci := childElement(el, "contact"); ci != nil {
		contact, err := p.parseContact(ci)
		if err != nil {
			return nil, errors.Wrapf(err, "contact for link %q", name)
		}
		link.Contact = contact
	}

	if in := childElement(el, "inertial"); in != nil {
		inertia, err := p.parseInertia(in)
		if err != nil {
			return nil, errors.Wrapf(err, "inertial for link %q", name)
		}
		link.Inertia = inertia
	} else {
		link.Inertia = p.defaultInertia(name)
	}

	for _, vis := range childElements(el, "visual") {
		visual, err := p.parseVisual(model, vis)
		if err != nil {
			return nil, errors.Wrapf(err, "visual for link %q", name)
		}
		link.Visuals = append(link.Visuals, visual)
	}

	for _, col := range childElements(el, "collision") {
		collision, err := p.parseCollision(col)
		if err != nil {
			return nil, errors.Wrapf(err, "collision for link %q", name)
		}
		link.Collisions = append(link.Collisions, collision)
	}

	return link, nil
}

// defaultInertia supplies mass properties for links without an inertial
// element. A link named "world" is the conventional static anchor and
// gets zero mass; anything else gets unit mass and unit principal
// inertia, with a warning.
func (p *parser) defaultInertia(linkName string) Inertia {
	if linkName == "world" {
		return Inertia{Origin: math.Identity()}
	}
	p.log.Warn("no inertial data for link, using mass=1 and unit diagonal inertia",
		zap.String("link", linkName))
	return Inertia{
		Origin: math.Identity(),
		Mass:   1,
		Ixx:    1,
		Iyy:    1,
		Izz:    1,
	}
}

// parseContact decodes the optional per-link contact block. Every child
// is independently optional, but a present child must carry a numeric
// value attribute. friction_anchor is presence-only.
func (p *parser) parseContact(el *xmlquery.Node) (ContactInfo, error) {
	var contact ContactInfo

	fields := []struct {
		tag string
		dst **float64
	}{
		{"inertia_scaling", &contact.InertiaScaling},
		{"lateral_friction", &contact.LateralFriction},
		{"rolling_friction", &contact.RollingFriction},
		{"spinning_friction", &contact.SpinningFriction},
		{"restitution", &contact.Restitution},
		{"stiffness", &contact.Stiffness},
		{"damping", &contact.Damping},
	}
	for _, f := range fields {
		c := childElement(el, f.tag)
		if c == nil {
			continue
		}
		v, ok := attrValue(c, "value")
		if !ok {
			return contact, errors.Wrapf(ErrMissingAttribute, "%s must have a value", f.tag)
		}
		val, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return contact, errors.Wrapf(ErrMalformedVector, "%s value %q", f.tag, v)
		}
		*f.dst = &val
	}

	if childElement(el, "friction_anchor") != nil {
		contact.FrictionAnchor = true
	}

	return contact, nil
}

// parseInertia decodes an inertial element: optional origin, required
// mass and a tensor with either all six terms or exactly the three
// diagonal terms.
func (p *parser) parseInertia(el *xmlquery.Node) (Inertia, error) {
	inertia := Inertia{Origin: math.Identity()}

	if o := childElement(el, "origin"); o != nil {
		inertia.Origin = p.parseTransform(o)
	}

	mass := childElement(el, "mass")
	if mass == nil {
		return inertia, errors.Wrap(ErrMissingElement, "inertial must have a mass element")
	}
	mv, ok := attrValue(mass, "value")
	if !ok {
		return inertia, errors.Wrap(ErrMissingAttribute, "mass must have a value")
	}
	m, err := strconv.ParseFloat(mv, 64)
	if err != nil {
		return inertia, errors.Wrapf(ErrMalformedVector, "mass value %q", mv)
	}
	inertia.Mass = m

	tensor := childElement(el, "inertia")
	if tensor == nil {
		return inertia, errors.Wrap(ErrMissingElement, "inertial must have an inertia element")
	}

	full := []string{"ixx", "ixy", "ixz", "iyy", "iyz", "izz"}
	diagonal := []string{"ixx", "iyy", "izz"}
	dst := map[string]*float64{
		"ixx": &inertia.Ixx, "ixy": &inertia.Ixy, "ixz": &inertia.Ixz,
		"iyy": &inertia.Iyy, "iyz": &inertia.Iyz, "izz": &inertia.Izz,
	}

	terms := full
	if !hasAllAttrs(tensor, full) {
		if !hasAllAttrs(tensor, diagonal) {
			return inertia, errors.Wrap(ErrMissingAttribute,
				"inertia must have ixx,ixy,ixz,iyy,iyz,izz or the diagonal ixx,iyy,izz")
		}
		terms = diagonal
	}
	for _, term := range terms {
		v, _ := attrValue(tensor, term)
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return inertia, errors.Wrapf(ErrMalformedVector, "inertia %s %q", term, v)
		}
		*dst[term] = f
	}

	return inertia, nil
}

func hasAllAttrs(n *xmlquery.Node, names []string) bool {
	for _, name := range names {
		if !hasAttr(n, name) {
			return false
		}
	}
	return true
}

// parseVisual decodes a visual element. A material referenced purely by
// name is left for the orchestrator's back-fill pass; any inline
// texture/color/specular sub-block produces a local material that also
// overrides the model-level entry of the same name.
func (p *parser) parseVisual(model *Model, el *xmlquery.Node) (Visual, error) {
	visual := Visual{Origin: math.Identity()}

	if o := childElement(el, "origin"); o != nil {
		visual.Origin = p.parseTransform(o)
	}

	geom, err := p.parseGeometry(childElement(el, "geometry"))
	if err != nil {
		return visual, err
	}
	visual.Geometry = geom

	if name, ok := attrValue(el, "name"); ok {
		visual.Name = name
	}

	mat := childElement(el, "material")
	if mat == nil {
		return visual, nil
	}
	matName, ok := attrValue(mat, "name")
	if !ok {
		return visual, errors.Wrap(ErrMissingAttribute, "visual material must have a name")
	}
	visual.MaterialName = matName

	hasInline := childElement(mat, "texture") != nil ||
		childElement(mat, "color") != nil ||
		childElement(mat, "specular") != nil
	if hasInline {
		local, err := p.parseMaterial(mat)
		if err != nil {
			return visual, err
		}
		// A later inline declaration overrides the model-level entry.
		model.Materials[matName] = local
		visual.Geometry.Material = local
		visual.Geometry.LocalMaterial = true
	}

	return visual, nil
}

// parseCollision decodes a collision element, including the optional
// group/mask filter attributes and the concave flag.
func (p *parser) parseCollision(el *xmlquery.Node) (Collision, error) {
	collision := Collision{Origin: math.Identity()}

	if o := childElement(el, "origin"); o != nil {
		collision.Origin = p.parseTransform(o)
	}

	geom, err := p.parseGeometry(childElement(el, "geometry"))
	if err != nil {
		return collision, err
	}
	collision.Geometry = geom

	if g, ok := attrValue(el, "group"); ok {
		group, err := strconv.Atoi(g)
		if err != nil {
			return collision, errors.Wrapf(ErrMalformedVector, "collision group %q", g)
		}
		collision.Group = &group
	}
	if m, ok := attrValue(el, "mask"); ok {
		mask, err := strconv.Atoi(m)
		if err != nil {
			return collision, errors.Wrapf(ErrMalformedVector, "collision mask %q", m)
		}
		collision.Mask = &mask
	}

	if name, ok := attrValue(el, "name"); ok {
		collision.Name = name
	}
	if hasAttr(el, "concave") {
		collision.Concave = true
	}

	return collision, nil
}
