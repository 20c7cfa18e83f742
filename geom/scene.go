package geom

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/verstree/verstree/resources"
	"github.com/verstree/verstree/versioning"
	"github.com/vmihailenco/msgpack/v5"
)

const SCENE_VERSION = "1.0.0"

func init() {
	versioning.Register(resources.RT_SCENE, versioning.FromString(SCENE_VERSION))
}

type edgeKey struct {
	from string
	to   string
}

// Scene is a planar subdivision: a vertex set and the faces bounding
// it, with the directed-edge incidence derived at construction time.
// The unbounded exterior face is implicit.
type Scene struct {
	Identifier uuid.UUID
	Vertices   []*Vertex
	Faces      []*Face

	faceOf map[edgeKey]*Face
}

// NewScene builds a subdivision from vertex coordinates and faces
// given as vertex index cycles.  Interior faces are expected in
// counterclockwise orientation, the convention mesh formats use.
func NewScene(coords []Vec2, faces [][]int) (*Scene, error) {
	s := &Scene{
		Identifier: uuid.New(),
		faceOf:     make(map[edgeKey]*Face),
	}

	for i, c := range coords {
		s.Vertices = append(s.Vertices, &Vertex{
			Name: fmt.Sprintf("v%d", i),
			X:    c.X,
			Y:    c.Y,
		})
	}

	for j, cycle := range faces {
		if len(cycle) < 3 {
			return nil, fmt.Errorf("face %d has only %d vertices", j, len(cycle))
		}
		for _, idx := range cycle {
			if idx < 0 || idx >= len(s.Vertices) {
				return nil, fmt.Errorf("face %d references vertex %d out of %d", j, idx, len(s.Vertices))
			}
		}
		face := &Face{Name: fmt.Sprintf("F%d", j)}
		for i, idx := range cycle {
			u := s.Vertices[idx]
			w := s.Vertices[cycle[(i+1)%len(cycle)]]
			face.Vertices = append(face.Vertices, u)

			s.faceOf[edgeKey{u.Name, w.Name}] = face
			u.addEdge(&Edge{U: u, V: w})
			w.addEdge(&Edge{U: w, V: u})
		}
		s.Faces = append(s.Faces, face)
	}

	return s, nil
}

// FaceAbove returns the face on the left of the directed edge, which
// for a rightward edge is the face above it.  nil means the exterior.
func (s *Scene) FaceAbove(e *Edge) *Face {
	return s.faceOf[edgeKey{e.U.Name, e.V.Name}]
}

// FaceBelow returns the face on the right of the directed edge, which
// for a rightward edge is the face below it.  nil means the exterior.
func (s *Scene) FaceBelow(e *Edge) *Face {
	return s.faceOf[edgeKey{e.V.Name, e.U.Name}]
}

// sceneFile is the serialized form: faces flattened to index cycles.
type sceneFile struct {
	Version    versioning.Version `msgpack:"version"`
	Identifier uuid.UUID          `msgpack:"identifier"`
	Vertices   []Vec2             `msgpack:"vertices"`
	Faces      [][]int            `msgpack:"faces"`
}

func (s *Scene) Serialize(w io.Writer) error {
	file := sceneFile{
		Version:    versioning.GetCurrentVersion(resources.RT_SCENE),
		Identifier: s.Identifier,
	}

	index := make(map[*Vertex]int, len(s.Vertices))
	for i, v := range s.Vertices {
		file.Vertices = append(file.Vertices, Vec2{X: v.X, Y: v.Y})
		index[v] = i
	}
	for _, f := range s.Faces {
		cycle := make([]int, 0, len(f.Vertices))
		for _, v := range f.Vertices {
			cycle = append(cycle, index[v])
		}
		file.Faces = append(file.Faces, cycle)
	}

	return msgpack.NewEncoder(w).Encode(&file)
}

func DeserializeScene(r io.Reader) (*Scene, error) {
	var file sceneFile
	if err := msgpack.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	s, err := NewScene(file.Vertices, file.Faces)
	if err != nil {
		return nil, err
	}
	s.Identifier = file.Identifier
	return s, nil
}
