package isosig_test

import (
	"testing"

	"github.com/kevinjzhang/triangulations/builder"
	"github.com/kevinjzhang/triangulations/isosig"
	"github.com/kevinjzhang/triangulations/triangulation"
	"github.com/stretchr/testify/require"
)

func TestFromSignature_Malformed(t *testing.T) {
	t.Parallel()

	tri, err := builder.MinimalSphere3()
	require.NoError(t, err)
	good, err := isosig.Canonicalize(tri)
	require.NoError(t, err)

	cases := map[string]string{
		"empty":             "",
		"bad alphabet char": "~" + good[1:],
		"truncated":         good[:len(good)-1],
		"trailing garbage":  good + "aa",
		"bare sentinel":     "-",
	}
	for name, sig := range cases {
		_, err := isosig.FromSignature(triangulation.Dim3, sig)
		require.ErrorIs(t, err, isosig.ErrMalformedSignature, name)
	}

	_, err = isosig.FromSignature(triangulation.Dimension(2), good)
	require.ErrorIs(t, err, triangulation.ErrBadDimension)
}

func TestFromSignature_WrongDimensionFails(t *testing.T) {
	t.Parallel()

	// A 4-dimensional signature pushed through the 3-dimensional decoder
	// must be rejected, not misread: the facet-count arithmetic no
	// longer matches the string length.
	tri, err := builder.MinimalSphere4()
	require.NoError(t, err)
	sig, err := isosig.Canonicalize(tri)
	require.NoError(t, err)
	_, err = isosig.FromSignature(triangulation.Dim3, sig)
	require.Error(t, err)
}

func TestFromSignature_LargeTriangulationSentinel(t *testing.T) {
	t.Parallel()

	// 70 tetrahedra: the component size no longer fits one character, so
	// the signature starts with the sentinel and a width marker.
	tri, err := builder.LayeredSolidTorus(70)
	require.NoError(t, err)
	id := triangulation.Identity(4)
	sig, _, err := isosig.EncodeFrom(tri, 0, id, false)
	require.NoError(t, err)
	require.Equal(t, byte('-'), sig[0], "index 63 is the sentinel character")

	decoded, err := isosig.FromSignature(triangulation.Dim3, sig)
	require.NoError(t, err)
	require.Equal(t, 70, decoded.Size())

	again, _, err := isosig.EncodeFrom(decoded, 0, id, false)
	require.NoError(t, err)
	require.Equal(t, sig, again)
}

func TestFromSignature_BoundaryFacetsSurvive(t *testing.T) {
	t.Parallel()

	// The lone pentachoron is all boundary; its signature must decode
	// back to a single simplex with five boundary facets.
	tri, err := builder.Pentachoron()
	require.NoError(t, err)
	sig, err := isosig.Canonicalize(tri)
	require.NoError(t, err)

	decoded, err := isosig.FromSignature(triangulation.Dim4, sig)
	require.NoError(t, err)
	require.Equal(t, 1, decoded.Size())
	for f := 0; f < 5; f++ {
		g, err := decoded.Facet(0, f)
		require.NoError(t, err)
		require.True(t, g.IsBoundary())
	}
}
