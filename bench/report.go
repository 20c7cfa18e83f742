package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/verstree/verstree/resources"
	"github.com/verstree/verstree/versioning"
	"github.com/vmihailenco/msgpack/v5"
)

const REPORT_VERSION = "1.0.0"

func init() {
	versioning.Register(resources.RT_BENCH_REPORT, versioning.FromString(REPORT_VERSION))
}

// Cell is the outcome of exercising one engine at one size.
type Cell struct {
	Scenario string        `msgpack:"scenario" json:"scenario"`
	Engine   string        `msgpack:"engine" json:"engine"`
	Size     int           `msgpack:"size" json:"size"`
	Insert   time.Duration `msgpack:"insert" json:"insert"`
	Delete   time.Duration `msgpack:"delete" json:"delete"`
	Bytes    uint64        `msgpack:"bytes" json:"bytes"`
}

type Report struct {
	Version    versioning.Version `msgpack:"version"`
	Identifier uuid.UUID          `msgpack:"identifier"`
	Cells      []Cell             `msgpack:"cells"`
}

func NewReport() *Report {
	return &Report{
		Version:    versioning.GetCurrentVersion(resources.RT_BENCH_REPORT),
		Identifier: uuid.New(),
	}
}

// Render writes the report as an aligned table, one cell per line.
func (r *Report) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%-16s %-10s %8s %14s %14s %12s\n",
		"SCENARIO", "ENGINE", "SIZE", "INSERT", "DELETE", "ALLOCATED")
	if err != nil {
		return err
	}
	for _, c := range r.Cells {
		deleted := "-"
		if c.Delete > 0 {
			deleted = c.Delete.String()
		}
		_, err := fmt.Fprintf(w, "%-16s %-10s %8d %14s %14s %12s\n",
			c.Scenario, c.Engine, c.Size, c.Insert, deleted, humanize.IBytes(c.Bytes))
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Report) Serialize(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(r)
}

func DeserializeReport(rd io.Reader) (*Report, error) {
	var r Report
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode bench report: %w", err)
	}
	return &r, nil
}
