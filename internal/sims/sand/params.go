package sand

import (
	"strconv"

	"sand-ca/internal/core"
)

const maxBrushRadius = 32

// Parameters reports the live tick state and particle counts.
func (s *Sand) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Chunk",
			Params: []core.Parameter{
				{Key: "tick", Label: "Tick", Type: core.ParamTypeInt, Value: strconv.FormatUint(s.tick, 10)},
				{Key: "moved", Label: "Moved", Type: core.ParamTypeInt, Value: strconv.Itoa(s.moved), Description: "particles moved by the last step"},
				{Key: "sand", Label: "Sand", Type: core.ParamTypeInt, Value: strconv.Itoa(s.grid.Count(core.CodeSand))},
				{Key: "wall", Label: "Wall", Type: core.ParamTypeInt, Value: strconv.Itoa(s.grid.Count(core.CodeWall))},
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				{Key: "brush", Label: "Radius", Type: core.ParamTypeInt, Value: strconv.Itoa(s.cfg.BrushRadius)},
				{Key: "diagonal", Label: "Diagonal", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.cfg.Diagonal)},
			},
		},
	}}
}

// SetIntParameter updates the brush radius. Other keys are rejected.
func (s *Sand) SetIntParameter(key string, value int) bool {
	if key != "brush" {
		return false
	}
	s.cfg.BrushRadius = min(max(value, 1), maxBrushRadius)
	return true
}
