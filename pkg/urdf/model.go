// Package urdf parses URDF robot descriptions into kinematic-tree models.
package urdf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Faultbox/robodesc/pkg/math"
)

// JointType represents the motion freedom of a joint.
type JointType int

const (
	JointRevolute   JointType = iota // Rotation about an axis, with limits
	JointContinuous                  // Rotation about an axis, unlimited
	JointPrismatic                   // Translation along an axis, with limits
	JointFixed                       // No relative motion
	JointFloating                    // All six degrees of freedom
	JointPlanar                      // Motion in a plane
	JointSpherical                   // Rotation about a point
)

// String returns a human-readable joint type name.
func (t JointType) String() string {
	switch t {
	case JointRevolute:
		return "revolute"
	case JointContinuous:
		return "continuous"
	case JointPrismatic:
		return "prismatic"
	case JointFixed:
		return "fixed"
	case JointFloating:
		return "floating"
	case JointPlanar:
		return "planar"
	case JointSpherical:
		return "spherical"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// GeometryType represents the shape variant of a geometry element.
type GeometryType int

const (
	GeomSphere GeometryType = iota
	GeomBox
	GeomCylinder
	GeomCapsule
	GeomMesh
	GeomPlane
)

// String returns a human-readable geometry type name.
func (t GeometryType) String() string {
	switch t {
	case GeomSphere:
		return "sphere"
	case GeomBox:
		return "box"
	case GeomCylinder:
		return "cylinder"
	case GeomCapsule:
		return "capsule"
	case GeomMesh:
		return "mesh"
	case GeomPlane:
		return "plane"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Material is a named render material shared between the model table and
// any visual that references it.
type Material struct {
	Name        string
	TextureFile string
	Color       math.Color4 // Defaults to black, fully opaque
	Specular    math.Vec3
}

// Geometry is one of six shape variants. Only the fields of the active
// Type are meaningful.
type Geometry struct {
	Type GeometryType

	Radius  float64   // sphere, cylinder, capsule
	Length  float64   // cylinder, capsule
	BoxSize math.Vec3 // box

	MeshFile  string    // mesh; rewritten to the resolved path after lookup
	MeshScale math.Vec3 // mesh

	PlaneNormal math.Vec3 // plane; direction only, never unit scaled

	// Material resolved for the enclosing visual. LocalMaterial is true
	// when it was declared inline on the visual rather than looked up in
	// the model-level table.
	Material      *Material
	LocalMaterial bool
}

// Visual is a render shape attached to a link.
type Visual struct {
	Name         string
	Origin       math.Mat4 // link-local pose
	Geometry     Geometry
	MaterialName string
}

// Collision is a collision shape attached to a link.
type Collision struct {
	Name     string
	Origin   math.Mat4 // link-local pose
	Geometry Geometry

	Group   *int // collision filter group, when specified
	Mask    *int // collision filter mask, when specified
	Concave bool // force concave trimesh collision
}

// Inertia holds the mass properties of a link.
type Inertia struct {
	Origin math.Mat4 // link-local inertial frame
	Mass   float64

	Ixx, Ixy, Ixz float64
	Iyy, Iyz      float64
	Izz           float64
}

// ContactInfo holds per-link contact simulation parameters. Every field
// is independently optional; nil means the document did not specify it.
type ContactInfo struct {
	InertiaScaling   *float64
	LateralFriction  *float64
	RollingFriction  *float64
	SpinningFriction *float64
	Restitution      *float64
	Stiffness        *float64
	Damping          *float64
	FrictionAnchor   bool
}

// Link is a rigid body node in the kinematic tree.
type Link struct {
	Name       string
	Contact    ContactInfo
	Inertia    Inertia
	Visuals    []Visual
	Collisions []Collision

	// Set once by the tree builder.
	Index       int
	ParentLink  *Link
	ParentJoint *Joint
	ChildJoints []*Joint
	ChildLinks  []*Link
}

// Joint is a typed connection between a parent and child link.
type Joint struct {
	Name string
	Type JointType

	ParentLinkName string
	ChildLinkName  string

	// Transform from the parent link frame to the joint frame.
	ParentToJointTransform math.Mat4

	// Meaningful for every type except fixed and floating.
	Axis math.Vec3

	LowerLimit    float64
	UpperLimit    float64
	EffortLimit   float64
	VelocityLimit float64

	Damping  float64
	Friction float64
}

// Model is a fully parsed and validated robot description.
type Model struct {
	Name       string
	SourceFile string
	Scale      float64

	Materials map[string]*Material
	Links     map[string]*Link
	Joints    map[string]*Joint

	RootLinks []*Link
	LinkNames map[int]string // link index -> link name
}

func newModel() *Model {
	return &Model{
		Materials: make(map[string]*Material),
		Links:     make(map[string]*Link),
		Joints:    make(map[string]*Joint),
		LinkNames: make(map[int]string),
	}
}

// LinkByName returns the named link, or nil if not found.
func (m *Model) LinkByName(name string) *Link {
	return m.Links[name]
}

// JointByName returns the named joint, or nil if not found.
func (m *Model) JointByName(name string) *Joint {
	return m.Joints[name]
}

// MaterialByName returns the named material, or nil if not found.
func (m *Model) MaterialByName(name string) *Material {
	return m.Materials[name]
}

// LinkByIndex returns the link with the given tree index, or nil.
func (m *Model) LinkByIndex(index int) *Link {
	name, ok := m.LinkNames[index]
	if !ok {
		return nil
	}
	return m.Links[name]
}

// SortedLinkNames returns every link name in the canonical (lexicographic)
// order used for index assignment.
func (m *Model) SortedLinkNames() []string {
	names := make([]string, 0, len(m.Links))
	for name := range m.Links {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortedJointNames returns every joint name in lexicographic order.
func (m *Model) SortedJointNames() []string {
	names := make([]string, 0, len(m.Joints))
	for name := range m.Joints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VisualCount returns the total number of visuals across all links.
func (m *Model) VisualCount() int {
	total := 0
	for _, link := range m.Links {
		total += len(link.Visuals)
	}
	return total
}

// CollisionCount returns the total number of collisions across all links.
func (m *Model) CollisionCount() int {
	total := 0
	for _, link := range m.Links {
		total += len(link.Collisions)
	}
	return total
}

// KinematicChain returns a human-readable dump of the link/joint tree,
// one line per node, starting at each root.
func (m *Model) KinematicChain() string {
	var b strings.Builder
	fmt.Fprintf(&b, "model %s\n", m.Name)
	for i, root := range m.RootLinks {
		fmt.Fprintf(&b, "root L(%d): %s\n", i, root.Name)
		writeLinkChildren(&b, root, "  ")
	}
	return b.String()
}

func writeLinkChildren(b *strings.Builder, link *Link, prefix string) {
	for i, joint := range link.ChildJoints {
		fmt.Fprintf(b, "%schild J(%d): %s [%s] ->(%s)\n",
			prefix, i, joint.Name, joint.Type, joint.ChildLinkName)
	}
	for i, child := range link.ChildLinks {
		fmt.Fprintf(b, "%schild L(%d): %s\n", prefix, i, child.Name)
		writeLinkChildren(b, child, prefix+"  ")
	}
}
