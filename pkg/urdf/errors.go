package urdf

import "errors"

// Parse errors.
var (
	ErrNoRobotElement   = errors.New("expected a robot element")
	ErrNoRobotName      = errors.New("robot element must have a name attribute")
	ErrNoLinks          = errors.New("no links found in robot description")
	ErrDuplicateLink    = errors.New("link name is not unique")
	ErrDuplicateJoint   = errors.New("joint name is not unique")
	ErrMissingAttribute = errors.New("missing required attribute")
	ErrMissingElement   = errors.New("missing required child element")
	ErrUnknownGeometry  = errors.New("unknown geometry type")
	ErrUnknownJointType = errors.New("unknown joint type")
	ErrMissingLimit     = errors.New("joint type requires a limit element")
	ErrEmptyDynamics    = errors.New("dynamics element specifies neither damping nor friction")
	ErrUnknownMaterial  = errors.New("cannot find material")
	ErrUnknownLink      = errors.New("cannot resolve link reference")
	ErrMeshNotFound     = errors.New("mesh file does not exist")
	ErrMalformedVector  = errors.New("malformed vector value")
	ErrMalformedColor   = errors.New("malformed color value")
	ErrNoRootLink       = errors.New("no root link found")
)
