package urdf

import (
	"io"
	"os"
	"path/filepath"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/robodesc/pkg/math"
)

var xpRobot = xpath.MustCompile(`/robot`)

// FileResolver locates referenced asset files. Resolve joins the
// candidate filename against the source document's directory (and any
// implementation-specific search paths) and reports whether the result
// exists. The resolved path replaces the document's relative filename
// in the parsed model.
type FileResolver interface {
	Resolve(dir, filename string) (string, bool)
}

// LocalFiles resolves asset references against the local filesystem.
type LocalFiles struct{}

// Resolve joins dir and filename and checks that the file exists.
func (LocalFiles) Resolve(dir, filename string) (string, bool) {
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// Parser parses URDF documents. The zero value parses with unit scale,
// no logging and local-filesystem mesh resolution. A single Parser may
// be used for many documents; each Parse call is independent, so
// parsers with different scales can run concurrently.
type Parser struct {
	// Scale multiplies every length-valued quantity in the document
	// (positions, shape dimensions, mesh scale, prismatic limits).
	// Angular values, colors, masses and plane normals are never
	// scaled. Zero means 1.
	Scale float64

	// Log receives warning diagnostics. Fatal conditions are returned
	// as errors, not logged. Nil disables logging.
	Log *zap.Logger

	// Files resolves mesh file references. Nil means LocalFiles.
	Files FileResolver
}

// ParseFile reads and parses a URDF file from disk.
func (p *Parser) ParseFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading robot description")
	}
	defer f.Close()
	return p.Parse(f, path)
}

// Parse parses a URDF document from r. sourceFile is the document's
// path, used to resolve relative mesh references and recorded on the
// returned model. On any parse failure no model is returned.
func (p *Parser) Parse(r io.Reader, sourceFile string) (*Model, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing robot description XML")
	}

	robot := xmlquery.QuerySelector(doc, xpRobot)
	if robot == nil {
		return nil, ErrNoRobotElement
	}

	pp := &parser{
		scale: p.Scale,
		log:   p.Log,
		files: p.Files,
		dir:   filepath.Dir(sourceFile),
	}
	if pp.scale == 0 {
		pp.scale = 1
	}
	if pp.log == nil {
		pp.log = zap.NewNop()
	}
	if pp.files == nil {
		pp.files = LocalFiles{}
	}

	model, err := pp.parseRobot(robot)
	if err != nil {
		return nil, err
	}
	model.SourceFile = sourceFile
	model.Scale = pp.scale
	return model, nil
}

// parser carries the per-document parse context: the unit scale, the
// diagnostic sink, the mesh resolver and the document directory.
type parser struct {
	scale float64
	log   *zap.Logger
	files FileResolver
	dir   string
}

// parseRobot drives the document parse: materials, links, joints,
// material back-fill, then tree assembly.
func (p *parser) parseRobot(robot *xmlquery.Node) (*Model, error) {
	model := newModel()

	name, ok := attrValue(robot, "name")
	if !ok {
		return nil, ErrNoRobotName
	}
	model.Name = name

	for _, el := range childElements(robot, "material") {
		mat, err := p.parseMaterial(el)
		if err != nil {
			return nil, err
		}
		if _, exists := model.Materials[mat.Name]; exists {
			p.log.Warn("duplicate material, keeping first definition",
				zap.String("material", mat.Name))
			continue
		}
		model.Materials[mat.Name] = mat
	}

	for _, el := range childElements(robot, "link") {
		link, err := p.parseLink(model, el)
		if err != nil {
			return nil, errors.Wrap(err, "parsing link")
		}
		if _, exists := model.Links[link.Name]; exists {
			return nil, errors.Wrapf(ErrDuplicateLink, "link %q", link.Name)
		}
		model.Links[link.Name] = link
	}
	if len(model.Links) == 0 {
		return nil, ErrNoLinks
	}

	for _, el := range childElements(robot, "joint") {
		joint, err := p.parseJoint(el)
		if err != nil {
			return nil, errors.Wrap(err, "parsing joint")
		}
		if _, exists := model.Joints[joint.Name]; exists {
			return nil, errors.Wrapf(ErrDuplicateJoint, "joint %q", joint.Name)
		}
		model.Joints[joint.Name] = joint
	}

	if err := p.resolveMaterials(model); err != nil {
		return nil, err
	}

	if err := p.buildTree(model); err != nil {
		return nil, err
	}
	return model, nil
}

// resolveMaterials back-fills every visual that references a material
// by name with the model-level definition. Visuals carrying an inline
// material were already resolved at parse time.
func (p *parser) resolveMaterials(model *Model) error {
	for _, name := range model.SortedLinkNames() {
		link := model.Links[name]
		for i := range link.Visuals {
			vis := &link.Visuals[i]
			if vis.Geometry.LocalMaterial || vis.MaterialName == "" {
				continue
			}
			mat, ok := model.Materials[vis.MaterialName]
			if !ok {
				return errors.Wrapf(ErrUnknownMaterial, "material %q for visual on link %q",
					vis.MaterialName, link.Name)
			}
			vis.Geometry.Material = mat
		}
	}
	return nil
}

// parseTransform decodes an origin-style element with optional xyz and
// rpy attributes into a pose matrix. Translation is unit scaled.
// Malformed values are swallowed: a bad xyz leaves zero translation and
// a bad rpy leaves identity rotation. This function never fails.
func (p *parser) parseTransform(el *xmlquery.Node) math.Mat4 {
	tr := math.Identity()

	var pos math.Vec3
	if s, ok := attrValue(el, "xyz"); ok {
		if v, err := parseVector3(s, false); err == nil {
			pos = v
		}
	}
	tr = tr.WithTranslation(pos.Scale(p.scale))

	if s, ok := attrValue(el, "rpy"); ok {
		if rpy, err := parseVector3(s, false); err == nil {
			q := math.QuatFromEuler(rpy.X, rpy.Y, rpy.Z).Normalize()
			tr = q.ToMat4().WithTranslation(tr.Translation())
		}
	}
	return tr
}
