package geom

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/verstree/verstree/resources"
	"github.com/verstree/verstree/versioning"
	"github.com/vmihailenco/msgpack/v5"
)

const LOCATION_REPORT_VERSION = "1.0.0"

func init() {
	versioning.Register(resources.RT_LOCATION_REPORT, versioning.FromString(LOCATION_REPORT_VERSION))
}

// LocatedPoint is one query point together with where it landed.
// Empty Slab or Face means the point fell outside, or in the
// exterior face.
type LocatedPoint struct {
	Name string  `msgpack:"name" json:"name"`
	X    float64 `msgpack:"x" json:"x"`
	Y    float64 `msgpack:"y" json:"y"`
	Slab string  `msgpack:"slab" json:"slab"`
	Face string  `msgpack:"face" json:"face"`
}

// LocationReport is the serialized outcome of a batch of point
// locations against one scene.
type LocationReport struct {
	Version    versioning.Version `msgpack:"version"`
	Identifier uuid.UUID          `msgpack:"identifier"`
	Scene      uuid.UUID          `msgpack:"scene"`
	Points     []LocatedPoint     `msgpack:"points"`
}

func NewLocationReport(scene uuid.UUID) *LocationReport {
	return &LocationReport{
		Version:    versioning.GetCurrentVersion(resources.RT_LOCATION_REPORT),
		Identifier: uuid.New(),
		Scene:      scene,
	}
}

func (r *LocationReport) Serialize(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(r)
}

func DeserializeLocationReport(rd io.Reader) (*LocationReport, error) {
	var r LocationReport
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode location report: %w", err)
	}
	return &r, nil
}
