package urdf

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Faultbox/robodesc/pkg/math"
)

// parseVector3 decodes a whitespace-separated numeric triple. Extra
// tokens beyond the needed three are ignored. When lastThree is set the
// trailing three tokens are used instead of the leading three, for
// forward-compatible formats that prepend extra fields.
func parseVector3(s string, lastThree bool) (math.Vec3, error) {
	parts, err := parseFloats(s)
	if err != nil {
		return math.Vec3{}, err
	}
	if len(parts) < 3 {
		return math.Vec3{}, errors.Wrapf(ErrMalformedVector, "need 3 values, got %d in %q", len(parts), s)
	}
	if lastThree {
		parts = parts[len(parts)-3:]
	}
	return math.Vec3{X: parts[0], Y: parts[1], Z: parts[2]}, nil
}

// parseColor4 decodes a whitespace-separated rgba quadruple. Unlike
// vectors, the token count must be exactly four.
func parseColor4(s string) (math.Color4, error) {
	parts, err := parseFloats(s)
	if err != nil {
		return math.Color4{}, err
	}
	if len(parts) != 4 {
		return math.Color4{}, errors.Wrapf(ErrMalformedColor, "need 4 values, got %d in %q", len(parts), s)
	}
	return math.Color4{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}, nil
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Fields(s)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedVector, "bad number %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}
