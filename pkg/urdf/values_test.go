package urdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/robodesc/pkg/math"
)

func TestParseVector3(t *testing.T) {
	v, err := parseVector3("1 2 3", false)
	require.NoError(t, err)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, v)
}

func TestParseVector3ExtraTokensIgnored(t *testing.T) {
	v, err := parseVector3("1 2 3 4 5", false)
	require.NoError(t, err)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, v)
}

func TestParseVector3LastThree(t *testing.T) {
	v, err := parseVector3("9 9 1 2 3", true)
	require.NoError(t, err)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, v)

	// With exactly three tokens both modes agree.
	v, err = parseVector3("1 2 3", true)
	require.NoError(t, err)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, v)
}

func TestParseVector3TooFew(t *testing.T) {
	_, err := parseVector3("1 2", false)
	assert.ErrorIs(t, err, ErrMalformedVector)
}

func TestParseVector3BadToken(t *testing.T) {
	_, err := parseVector3("1 x 3", false)
	assert.ErrorIs(t, err, ErrMalformedVector)
}

func TestParseVector3Whitespace(t *testing.T) {
	v, err := parseVector3("  1\t 2\n3 ", false)
	require.NoError(t, err)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, v)
}

func TestParseColor4(t *testing.T) {
	c, err := parseColor4("0.1 0.2 0.3 1")
	require.NoError(t, err)
	assert.Equal(t, math.Color4{R: 0.1, G: 0.2, B: 0.3, A: 1}, c)
}

func TestParseColor4WrongCount(t *testing.T) {
	for _, s := range []string{"1 2 3", "1 2 3 4 5", ""} {
		_, err := parseColor4(s)
		assert.ErrorIs(t, err, ErrMalformedColor, "input %q", s)
	}
}

func TestParseTransformTranslationScaled(t *testing.T) {
	p := testParser(t, 2, nil)
	tr := p.parseTransform(elem(t, `<origin xyz="1 2 3"/>`))
	assert.Equal(t, math.Vec3{X: 2, Y: 4, Z: 6}, tr.Translation())
}

func TestParseTransformDefaultsIdentity(t *testing.T) {
	p := testParser(t, 1, nil)
	tr := p.parseTransform(elem(t, `<origin/>`))
	assert.Equal(t, math.Identity(), tr)
}

func TestParseTransformRotation(t *testing.T) {
	p := testParser(t, 1, nil)
	// A pi yaw flips x and y.
	tr := p.parseTransform(elem(t, `<origin rpy="0 0 3.14159265358979"/>`))
	rotated := tr.TransformVector(math.Vec3{X: 1})
	assert.InDelta(t, -1, rotated.X, 1e-6)
	assert.InDelta(t, 0, rotated.Y, 1e-6)
	assert.InDelta(t, 0, rotated.Z, 1e-6)
}

func TestParseTransformSwallowsMalformedValues(t *testing.T) {
	p := testParser(t, 1, nil)

	// Malformed rpy keeps identity rotation, never an error.
	tr := p.parseTransform(elem(t, `<origin xyz="1 0 0" rpy="not a rotation"/>`))
	assert.Equal(t, math.Vec3{X: 1}, tr.Translation())
	assert.Equal(t, math.Vec3{Y: 1}, tr.TransformVector(math.Vec3{Y: 1}))

	// Malformed xyz keeps zero translation.
	tr = p.parseTransform(elem(t, `<origin xyz="bogus"/>`))
	assert.Equal(t, math.Vec3{}, tr.Translation())
}
