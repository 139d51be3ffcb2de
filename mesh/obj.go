package mesh

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ObjData holds the raw contents of a Wavefront OBJ file. Vertices are
// 1-indexed as in the file format; index 0 is a reserved placeholder.
// Faces hold 1-indexed vertex indices, three or more per face.
type ObjData struct {
	Vertices []mgl32.Vec3
	Faces    [][]int
}

// ParseError reports a malformed vertex or face token. A parse error
// aborts the whole load; the caller never sees partial data.
type ParseError struct {
	Line  int
	Field string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("obj: line %d: bad %s %q: %v", e.Line, e.Field, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadObj reads an OBJ file from disk. IO failures and malformed tokens
// are both fatal to the load attempt.
func LoadObj(path string) (*ObjData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()
	o, err := ParseObj(f)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ParseObj parses OBJ text. Lines starting "v" define vertices, lines
// starting "f" define faces; face tokens may carry /texcoord/normal
// suffixes of which only the first index is read. All other lines are
// ignored.
func ParseObj(r io.Reader) (*ObjData, error) {
	o := &ObjData{
		// Keep faces 1-indexed by reserving slot 0.
		Vertices: []mgl32.Vec3{{}},
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if err := o.parseVertex(line, fields[1:]); err != nil {
				return nil, err
			}
		case "f":
			if err := o.parseFace(line, fields[1:]); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: read: %w", err)
	}
	return o, nil
}

func (o *ObjData) parseVertex(line int, ss []string) error {
	if len(ss) < 3 {
		return &ParseError{Line: line, Field: "vertex", Token: strings.Join(ss, " "), Err: fmt.Errorf("want 3 coordinates, got %d", len(ss))}
	}
	var v mgl32.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(ss[i], 32)
		if err != nil {
			return &ParseError{Line: line, Field: "vertex coordinate", Token: ss[i], Err: err}
		}
		v[i] = float32(f)
	}
	o.Vertices = append(o.Vertices, v)
	return nil
}

func (o *ObjData) parseFace(line int, ss []string) error {
	face := make([]int, 0, len(ss))
	for _, tok := range ss {
		// "i/t/n" carries texcoord and normal indices; only the
		// vertex index is wanted.
		first := tok
		if k := strings.IndexByte(tok, '/'); k >= 0 {
			first = tok[:k]
		}
		idx, err := strconv.Atoi(first)
		if err != nil {
			return &ParseError{Line: line, Field: "face index", Token: tok, Err: err}
		}
		face = append(face, idx)
	}
	o.Faces = append(o.Faces, face)
	return nil
}

// VertexCount returns the number of vertices, not counting the reserved
// slot 0.
func (o *ObjData) VertexCount() int { return len(o.Vertices) - 1 }

// FaceCount returns the number of faces.
func (o *ObjData) FaceCount() int { return len(o.Faces) }

// Triangulate fans every face into triangles around its first vertex and
// returns 1-indexed index triples. Faces with fewer than three indices
// contribute nothing.
func (o *ObjData) Triangulate() [][3]int {
	var tris [][3]int
	for _, face := range o.Faces {
		for i := 2; i < len(face); i++ {
			tris = append(tris, [3]int{face[0], face[i-1], face[i]})
		}
	}
	return tris
}

// Bounds returns the axis-aligned bounding box of the loaded vertices.
func (o *ObjData) Bounds() (bmin, bmax mgl32.Vec3) {
	bmin = mgl32.Vec3{float32(math.Inf(1)), float32(math.Inf(1)), float32(math.Inf(1))}
	bmax = mgl32.Vec3{float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(-1))}
	for _, v := range o.Vertices[1:] {
		for j := 0; j < 3; j++ {
			bmin[j] = min32(bmin[j], v[j])
			bmax[j] = max32(bmax[j], v[j])
		}
	}
	return bmin, bmax
}

// TriMesh converts the loaded data to a flat triangle mesh: faces are fan
// triangulated and every triangle gets one flat normal computed from the
// cross product of its first two edges. Triangles referencing an index
// outside the vertex list are skipped.
func (o *ObjData) TriMesh() *TriMesh {
	tm := &TriMesh{}
	tm.Verts = make([]float32, 0, o.VertexCount()*3)
	for _, v := range o.Vertices[1:] {
		tm.Verts = append(tm.Verts, v[0], v[1], v[2])
	}
	nverts := int32(o.VertexCount())
	for _, tri := range o.Triangulate() {
		a, b, c := int32(tri[0]-1), int32(tri[1]-1), int32(tri[2]-1)
		if a < 0 || a >= nverts || b < 0 || b >= nverts || c < 0 || c >= nverts {
			continue
		}
		tm.Tris = append(tm.Tris, a, b, c)
	}

	tm.Normals = make([]float32, len(tm.Tris))
	for i := 0; i+2 < len(tm.Tris); i += 3 {
		v0 := tm.Vert(tm.Tris[i])
		v1 := tm.Vert(tm.Tris[i+1])
		v2 := tm.Vert(tm.Tris[i+2])
		n := v1.Sub(v0).Cross(v2.Sub(v0))
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		tm.Normals[i] = n[0]
		tm.Normals[i+1] = n[1]
		tm.Normals[i+2] = n[2]
	}
	return tm
}
