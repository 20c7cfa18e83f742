// Package wavefront reads the subset of the Wavefront OBJ format a
// planar subdivision needs: vertex positions and faces.  The z
// coordinate and any other record types are ignored.
package wavefront

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/verstree/verstree/geom"
)

// Parse reads an OBJ stream into a scene.  Face indices are 1-based;
// negative indices count back from the last vertex seen, and the
// v/vt/vn slash forms are accepted.
func Parse(r io.Reader) (*geom.Scene, error) {
	var (
		coords []geom.Vec2
		faces  [][]int
	)

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: vertex with %d coordinates", lineno, len(fields)-1)
			}
			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad x coordinate: %w", lineno, err)
			}
			y, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad y coordinate: %w", lineno, err)
			}
			coords = append(coords, geom.Vec2{X: x, Y: y})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face with %d vertices", lineno, len(fields)-1)
			}
			cycle := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := parseIndex(ref, len(coords))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineno, err)
				}
				cycle = append(cycle, idx)
			}
			faces = append(faces, cycle)

		default:
			// vn, vt, o, g, s, usemtl, mtllib, ...
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read obj: %w", err)
	}

	return geom.NewScene(coords, faces)
}

// ParseFile reads an OBJ file into a scene.
func ParseFile(path string) (*geom.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// parseIndex resolves a face vertex reference to a 0-based index.
func parseIndex(ref string, seen int) (int, error) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	idx, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad vertex reference %q: %w", ref, err)
	}
	switch {
	case idx > 0:
		return idx - 1, nil
	case idx < 0:
		return seen + idx, nil
	default:
		return 0, fmt.Errorf("vertex reference 0 is not valid")
	}
}
