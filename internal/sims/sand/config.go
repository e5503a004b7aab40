package sand

import "strconv"

// Config holds parameters for the falling-sand chunk.
type Config struct {
	// Size is the side length of the square chunk.
	Size int
	// BrushRadius is the radius of the paint brush in cells.
	BrushRadius int
	// Diagonal enables the diagonal fallback when straight-down is blocked.
	Diagonal bool
}

// DefaultConfig returns the standard 160x160 chunk with an 8-cell brush.
func DefaultConfig() Config {
	return Config{Size: 160, BrushRadius: 8, Diagonal: true}
}

// ClassicConfig returns the straight-down variant with a single-cell brush.
func ClassicConfig() Config {
	c := DefaultConfig()
	c.BrushRadius = 1
	c.Diagonal = false
	return c
}

// FromMap populates a Config from a string map, starting from base.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BrushRadius = parsed
		}
	}
	if v, ok := cfg["diagonal"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Diagonal = parsed
		}
	}
	return c
}
