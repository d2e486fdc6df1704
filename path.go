package clippy

import "strings"

// minClosedVertices is the vertex count from which the outline gets closed.
const minClosedVertices = 3

// BuildPath returns the CSS polygon coordinate list for the handle set.
//
// Vertices are emitted in insertion order as "x% y%" pairs joined by commas.
// Once the set holds at least three vertices the first inserted vertex (the
// session seed) is repeated at the end to close the outline. This closes back
// to the seed corner even when it is not where the user started clicking.
func BuildPath(s HandleSet) string {
	verts := PathVertices(s)
	pairs := make([]string, len(verts))
	for i, v := range verts {
		pairs[i] = v.String()
	}
	return strings.Join(pairs, ",")
}

// PathVertices returns the vertices of the polygon outline in drawing order,
// closing pair included.
func PathVertices(s HandleSet) []Vertex {
	verts := s.Vertices()
	if len(verts) >= minClosedVertices {
		verts = append(verts, s.First().Vertex)
	}
	return verts
}

// Polygon wraps a coordinate list into the CSS polygon() function.
func Polygon(path string) string {
	return "polygon(" + path + ")"
}

// Declaration returns the full clip-path CSS declaration for path.
func Declaration(path string) string {
	return "clip-path: " + Polygon(path) + ";"
}
