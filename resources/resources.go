package resources

import "fmt"

type Resource uint32

const (
	RT_SCENE           Resource = 1
	RT_LOCATION_REPORT Resource = 2
	RT_BENCH_REPORT    Resource = 3
)

func (r Resource) String() string {
	switch r {
	case RT_SCENE:
		return "scene"
	case RT_LOCATION_REPORT:
		return "location report"
	case RT_BENCH_REPORT:
		return "bench report"
	default:
		return fmt.Sprintf("unknown resource %d", uint32(r))
	}
}
