package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/labyrinth/pkg/math"
)

// OBJ format errors.
var (
	ErrInvalidOBJVertex = errors.New("invalid OBJ vertex")
	ErrInvalidOBJFace   = errors.New("invalid OBJ face")
)

// OBJFace is a polygon referencing vertex positions by zero-based index.
type OBJFace struct {
	Indices []int
	Object  string // Name from the last "o" statement
	Group   string // Name from the last "g" statement
	Line    int    // Source line, for diagnostics
}

// OBJ holds the position data of a Wavefront OBJ file.
// Normals, texture coordinates and materials are ignored.
type OBJ struct {
	Vertices []math.Vec3
	Faces    []OBJFace
	Warnings []string
	// Malformed holds one wrapped ErrInvalidOBJVertex or ErrInvalidOBJFace
	// per rejected line. Each is also reported in Warnings.
	Malformed []error

	// Indices of malformed vertices. They keep their slot so later faces
	// resolve as written.
	badVertices map[int]bool
}

// OBJTriangle is a position-only triangle.
type OBJTriangle [3]math.Vec3

// ParseOBJ parses Wavefront OBJ text.
//
// Malformed vertex and face lines are skipped and recorded in Malformed, so
// a damaged file still yields every well-formed triangle. Only a read
// failure is returned as an error.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}
	var object, group string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseOBJVertex(fields[1:])
			if err != nil {
				obj.malformed(lineNo, err)
				if obj.badVertices == nil {
					obj.badVertices = make(map[int]bool)
				}
				obj.badVertices[len(obj.Vertices)] = true
			}
			obj.Vertices = append(obj.Vertices, v)

		case "f":
			indices, err := parseOBJFace(fields[1:], len(obj.Vertices))
			if err != nil {
				obj.malformed(lineNo, err)
				continue
			}
			obj.Faces = append(obj.Faces, OBJFace{
				Indices: indices,
				Object:  object,
				Group:   group,
				Line:    lineNo,
			})

		case "o":
			object = strings.Join(fields[1:], " ")
		case "g":
			group = strings.Join(fields[1:], " ")

		case "vn", "vt", "vp", "s", "mtllib", "usemtl", "l", "p":
			// Not needed for collision geometry

		default:
			obj.Warnings = append(obj.Warnings, fmt.Sprintf("line %d: unknown statement %q", lineNo, fields[0]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	return obj, nil
}

func (o *OBJ) malformed(lineNo int, err error) {
	err = fmt.Errorf("line %d: %w", lineNo, err)
	o.Malformed = append(o.Malformed, err)
	o.Warnings = append(o.Warnings, err.Error())
}

// ParseOBJFile reads and parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

// Triangles returns every face with exactly three in-range, well-formed
// vertices. Other faces are skipped entirely (never fanned) and counted in
// skipped.
func (o *OBJ) Triangles() (tris []OBJTriangle, skipped int) {
	tris = make([]OBJTriangle, 0, len(o.Faces))
	for _, f := range o.Faces {
		if len(f.Indices) != 3 {
			skipped++
			continue
		}

		var tri OBJTriangle
		valid := true
		for i, idx := range f.Indices {
			if idx < 0 || idx >= len(o.Vertices) || o.badVertices[idx] {
				valid = false
				break
			}
			tri[i] = o.Vertices[idx]
		}
		if !valid {
			skipped++
			continue
		}
		tris = append(tris, tri)
	}
	return tris, skipped
}

func parseOBJVertex(fields []string) (math.Vec3, error) {
	if len(fields) < 3 {
		return math.Vec3{}, fmt.Errorf("%w: expected 3 coordinates, got %d", ErrInvalidOBJVertex, len(fields))
	}

	var c [3]float32
	for i := range 3 {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: %q", ErrInvalidOBJVertex, fields[i])
		}
		c[i] = float32(f)
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// parseOBJFace resolves "v", "v/vt", "v//vn" and "v/vt/vn" references.
// Negative indices are relative to the vertices read so far.
func parseOBJFace(fields []string, vertexCount int) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: expected at least 3 vertices, got %d", ErrInvalidOBJFace, len(fields))
	}

	indices := make([]int, 0, len(fields))
	for _, ref := range fields {
		pos, _, _ := strings.Cut(ref, "/")
		n, err := strconv.Atoi(pos)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("%w: bad vertex reference %q", ErrInvalidOBJFace, ref)
		}
		if n < 0 {
			n = vertexCount + n
		} else {
			n-- // OBJ indices start at 1
		}
		indices = append(indices, n)
	}
	return indices, nil
}
