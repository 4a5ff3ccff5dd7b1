package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

const separator = string(filepath.Separator)

// Path is an absolute, lexically cleaned path held as its ordered name
// components. The root (and volume on Windows) is not a component, so "/" has
// zero components and "/cache/a" has two.
type Path struct {
	Volume string
	Names  []string
}

// ParsePath makes p absolute, resolves "." and ".." segments and splits it into
// components. The path does not need to exist and symlinks are not followed.
func ParsePath(p string) (Path, error) {
	if p == "" {
		return Path{}, fmt.Errorf("empty path")
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return Path{}, fmt.Errorf("failed to resolve %s: %w", p, err)
	}

	vol := filepath.VolumeName(abs)
	rest := strings.Trim(abs[len(vol):], separator)
	if rest == "" {
		return Path{Volume: vol}, nil
	}
	return Path{Volume: vol, Names: strings.Split(rest, separator)}, nil
}

// Len returns the number of name components.
func (p Path) Len() int {
	return len(p.Names)
}

// String renders the path in the platform's native form.
func (p Path) String() string {
	return p.Volume + separator + strings.Join(p.Names, separator)
}

// HasPrefix reports whether base is an ancestor of p or equal to it. The check
// compares whole components, so /cache/ab is not under /cache/a.
func (p Path) HasPrefix(base Path) bool {
	if p.Volume != base.Volume || len(p.Names) < len(base.Names) {
		return false
	}
	for i, name := range base.Names {
		if p.Names[i] != name {
			return false
		}
	}
	return true
}

// Resolve returns p with names appended. The result never shares storage with p.
func (p Path) Resolve(names []string) Path {
	joined := make([]string, 0, len(p.Names)+len(names))
	joined = append(joined, p.Names...)
	joined = append(joined, names...)
	return Path{Volume: p.Volume, Names: joined}
}

// UnitRange is the half-open component range [Start, End) that forms a
// tracked unit below a base directory.
type UnitRange struct {
	Start int
	End   int
}

// NewUnitRange derives the unit range for a base directory and a depth.
func NewUnitRange(base Path, depth int) UnitRange {
	return UnitRange{Start: base.Len(), End: base.Len() + depth}
}

// Depth returns the number of components a unit spans below the base.
func (r UnitRange) Depth() int {
	return r.End - r.Start
}

// TrackedUnit truncates p to the ancestor lying exactly rng.Depth() levels
// below base. It returns false when p is outside base or too shallow.
func TrackedUnit(base Path, rng UnitRange, p Path) (Path, bool) {
	if rng.End < rng.Start || p.Len() < rng.End || !p.HasPrefix(base) {
		return Path{}, false
	}
	return base.Resolve(p.Names[rng.Start:rng.End]), true
}
