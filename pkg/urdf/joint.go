package urdf

import (
	"strconv"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/robodesc/pkg/math"
)

func jointTypeFromString(s string) (JointType, error) {
	switch s {
	case "revolute":
		return JointRevolute, nil
	case "continuous":
		return JointContinuous, nil
	case "prismatic":
		return JointPrismatic, nil
	case "fixed":
		return JointFixed, nil
	case "floating":
		return JointFloating, nil
	case "planar":
		return JointPlanar, nil
	case "spherical":
		return JointSpherical, nil
	default:
		return 0, errors.Wrapf(ErrUnknownJointType, "%q", s)
	}
}

// parseJoint decodes a joint element: name, type, parent and child link
// names, origin, axis, limits and dynamics. A parent or child element
// without a link attribute fails here; an entirely absent element
// leaves the name empty and fails later during tree assembly.
func (p *parser) parseJoint(el *xmlquery.Node) (*Joint, error) {
	name, ok := attrValue(el, "name")
	if !ok {
		return nil, errors.Wrap(ErrMissingAttribute, "unnamed joint")
	}
	joint := &Joint{
		Name:                   name,
		ParentToJointTransform: math.Identity(),
	}

	if o := childElement(el, "origin"); o != nil {
		joint.ParentToJointTransform = p.parseTransform(o)
	}

	if parent := childElement(el, "parent"); parent != nil {
		pname, ok := attrValue(parent, "link")
		if !ok {
			return nil, errors.Wrapf(ErrMissingAttribute,
				"no parent link name for joint %q", name)
		}
		joint.ParentLinkName = pname
	}

	if child := childElement(el, "child"); child != nil {
		cname, ok := attrValue(child, "link")
		if !ok {
			return nil, errors.Wrapf(ErrMissingAttribute,
				"no child link name for joint %q", name)
		}
		joint.ChildLinkName = cname
	}

	typeStr, ok := attrValue(el, "type")
	if !ok {
		return nil, errors.Wrapf(ErrMissingAttribute, "joint %q has no type", name)
	}
	jointType, err := jointTypeFromString(typeStr)
	if err != nil {
		return nil, errors.Wrapf(err, "joint %q", name)
	}
	joint.Type = jointType

	if joint.Type != JointFixed && joint.Type != JointFloating {
		axis, err := p.parseAxis(el, name)
		if err != nil {
			return nil, err
		}
		joint.Axis = axis
	}

	if limit := childElement(el, "limit"); limit != nil {
		if err := p.parseJointLimits(joint, limit); err != nil {
			return nil, errors.Wrapf(err, "limit for joint %q", name)
		}
	} else if joint.Type == JointRevolute || joint.Type == JointPrismatic {
		return nil, errors.Wrapf(ErrMissingLimit, "%s joint %q", joint.Type, name)
	}

	if dyn := childElement(el, "dynamics"); dyn != nil {
		if err := p.parseJointDynamics(joint, dyn); err != nil {
			return nil, errors.Wrapf(err, "dynamics for joint %q", name)
		}
	}

	return joint, nil
}

// parseAxis decodes the joint axis for every type that has one. A
// missing axis element or xyz attribute defaults to (1,0,0) with a
// warning; a malformed xyz is a hard failure.
func (p *parser) parseAxis(el *xmlquery.Node, jointName string) (math.Vec3, error) {
	defaultAxis := math.Vec3{X: 1}

	axis := childElement(el, "axis")
	if axis == nil {
		p.log.Warn("no axis element for joint, defaulting to (1,0,0)",
			zap.String("joint", jointName))
		return defaultAxis, nil
	}
	xyz, ok := attrValue(axis, "xyz")
	if !ok {
		p.log.Warn("axis element has no xyz attribute, defaulting to (1,0,0)",
			zap.String("joint", jointName))
		return defaultAxis, nil
	}
	v, err := parseVector3(xyz, false)
	if err != nil {
		return math.Vec3{}, errors.Wrapf(err, "axis for joint %q", jointName)
	}
	return v, nil
}

// parseJointLimits decodes the limit element. Prismatic bounds are
// lengths and get unit scaled; revolute bounds are angles and do not.
// Absent attributes keep their defaults (lower 0, upper -1, effort and
// velocity 0).
func (p *parser) parseJointLimits(joint *Joint, el *xmlquery.Node) error {
	joint.LowerLimit = 0
	joint.UpperLimit = -1
	joint.EffortLimit = 0
	joint.VelocityLimit = 0

	attrs := []struct {
		name string
		dst  *float64
	}{
		{"lower", &joint.LowerLimit},
		{"upper", &joint.UpperLimit},
		{"effort", &joint.EffortLimit},
		{"velocity", &joint.VelocityLimit},
	}
	for _, a := range attrs {
		s, ok := attrValue(el, a.name)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.Wrapf(ErrMalformedVector, "limit %s %q", a.name, s)
		}
		*a.dst = v
	}

	if joint.Type == JointPrismatic {
		joint.LowerLimit *= p.scale
		joint.UpperLimit *= p.scale
	}
	return nil
}

// parseJointDynamics decodes the dynamics element. The element is
// optional, but when present it must specify at least one of damping
// or friction.
func (p *parser) parseJointDynamics(joint *Joint, el *xmlquery.Node) error {
	damping, hasDamping := attrValue(el, "damping")
	friction, hasFriction := attrValue(el, "friction")
	if !hasDamping && !hasFriction {
		return ErrEmptyDynamics
	}

	if hasDamping {
		v, err := strconv.ParseFloat(damping, 64)
		if err != nil {
			return errors.Wrapf(ErrMalformedVector, "dynamics damping %q", damping)
		}
		joint.Damping = v
	}
	if hasFriction {
		v, err := strconv.ParseFloat(friction, 64)
		if err != nil {
			return errors.Wrapf(ErrMalformedVector, "dynamics friction %q", friction)
		}
		joint.Friction = v
	}
	return nil
}
