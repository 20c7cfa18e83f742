// Package planar locates points in a planar subdivision by slab
// decomposition.  A sweep over the vertices in lexicographic order
// maintains the set of segments crossing the current slab inside a
// node-copying persistent tree; each slab keeps the version the
// sweep left behind, so a later query reads the segment list of its
// slab as it was during the sweep.  A query materializes that list
// and scans it from the bottom, so its cost is linear in the number
// of segments crossing the slab.
package planar

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/verstree/verstree/bst"
	"github.com/verstree/verstree/geom"
	"github.com/verstree/verstree/logging"
	"github.com/verstree/verstree/persistent"
	"github.com/verstree/verstree/persistent/nodecopy"
)

var ErrNotAnalyzed = errors.New("planar: scene has not been analyzed")

// Slab is a vertical strip starting at an event x-coordinate and
// reaching to the next one.  Version addresses the segment set
// crossing the strip.
type Slab struct {
	Start   float64
	Name    string
	Version persistent.Version
}

func (s *Slab) String() string {
	return fmt.Sprintf("%s(%g)", s.Name, s.Start)
}

// Location is the answer to a point query.  A nil Face means the
// point lies in the exterior.
type Location struct {
	Point   geom.Vec2
	Slab    *Slab
	Segment *geom.Edge
	Face    *geom.Face
}

type Locator struct {
	scene    *geom.Scene
	logger   *logging.Logger
	slabs    *bst.Tree[*Slab]
	segments *nodecopy.Tree[*geom.Edge]
	analyzed bool
}

func NewLocator(scene *geom.Scene, logger *logging.Logger) *Locator {
	return &Locator{
		scene:  scene,
		logger: logger,
		slabs: bst.New(func(a, b *Slab) int {
			switch {
			case a.Start < b.Start:
				return -1
			case a.Start > b.Start:
				return +1
			default:
				return 0
			}
		}),
		segments: nodecopy.New(geom.CompareSegments),
	}
}

// Analyze sweeps the subdivision and stamps every slab with the
// version of the segment set crossing it.  It runs once; further
// calls are no-ops.
func (l *Locator) Analyze() error {
	if l.analyzed {
		return nil
	}
	if len(l.scene.Vertices) == 0 {
		return errors.New("planar: scene has no vertices")
	}

	vertices := slices.Clone(l.scene.Vertices)
	slices.SortFunc(vertices, geom.CompareSweep)

	// one slab per event x, plus the unbounded strip on the left
	l.slabs.Insert(&Slab{Start: math.Inf(-1), Name: "slab0", Version: persistent.None})
	slabAt := make(map[float64]*Slab)
	n := 1
	for _, v := range vertices {
		if _, ok := slabAt[v.X]; !ok {
			slab := &Slab{Start: v.X, Name: fmt.Sprintf("slab%d", n), Version: persistent.None}
			n++
			l.slabs.Insert(slab)
			slabAt[v.X] = slab
		}
	}
	l.logger.Trace("planar", "analyze: %d vertices, %d slabs", len(vertices), n)

	for _, v := range vertices {
		// drop segments that end at the incoming vertex
		var ending []*geom.Edge
		for _, s := range l.segments.InOrder(l.segments.LatestVersion()) {
			if s.V.Equal(v) {
				ending = append(ending, s)
			}
		}
		if len(ending) > 0 {
			l.segments.Delete(ending...)
		}

		// open the outgoing segments that span past it
		var outgoing []*geom.Edge
		for _, e := range v.Edges {
			if e.Rightward() {
				outgoing = append(outgoing, e)
			}
		}
		if len(outgoing) > 0 {
			l.segments.Insert(outgoing...)
		}

		slab := slabAt[v.X]
		slab.Version = l.segments.LatestVersion()
		l.logger.Trace("planar", "sweep %s: -%d +%d segments, %s at version %d",
			v.Name, len(ending), len(outgoing), slab.Name, slab.Version)
	}

	l.analyzed = true
	return nil
}

// Locate answers a point query: the slab containing p, the first
// segment at or above it, and the face between them.  The scene must
// have been analyzed.
func (l *Locator) Locate(p geom.Vec2) (*Location, error) {
	if !l.analyzed {
		return nil, ErrNotAnalyzed
	}

	slab, ok := l.slabs.SearchLE(&Slab{Start: p.X})
	if !ok {
		panic("planar: no slab found left of a query point")
	}

	loc := &Location{Point: p, Slab: slab}
	for _, seg := range l.segments.InOrder(slab.Version) {
		if geom.BelowOrOn(seg, p) {
			loc.Segment = seg
			loc.Face = l.scene.FaceBelow(seg)
			break
		}
	}

	if loc.Face != nil {
		l.logger.Trace("planar", "point (%g, %g) in %s under %s: %s",
			p.X, p.Y, slab.Name, loc.Segment, loc.Face.Name)
	} else {
		l.logger.Trace("planar", "point (%g, %g) in %s: exterior", p.X, p.Y, slab.Name)
	}
	return loc, nil
}

// Report runs a batch of queries and assembles a serializable
// location report.
func (l *Locator) Report(points []geom.Vec2) (*geom.LocationReport, error) {
	report := geom.NewLocationReport(l.scene.Identifier)
	for i, p := range points {
		loc, err := l.Locate(p)
		if err != nil {
			return nil, err
		}
		lp := geom.LocatedPoint{
			Name: fmt.Sprintf("p%d", i),
			X:    p.X,
			Y:    p.Y,
			Slab: loc.Slab.Name,
		}
		if loc.Face != nil {
			lp.Face = loc.Face.Name
		}
		report.Points = append(report.Points, lp)
	}
	return report, nil
}
