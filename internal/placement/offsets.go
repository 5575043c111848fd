package placement

import (
	"maps"
	"slices"

	wserrors "github.com/mj1618/workspace-output/internal/errors"
	"github.com/mj1618/workspace-output/internal/model"
)

// DefaultStride is the width of the number band reserved per output.
const DefaultStride = 100

// OffsetTable maps output names to their base offset. An offset is computed
// on first use and then cached for the lifetime of the table, even if the
// set of active outputs changes afterwards.
type OffsetTable struct {
	dir     *Directory
	stride  int
	offsets map[string]int
}

// NewOffsetTable creates an empty table. A stride <= 0 selects DefaultStride.
func NewOffsetTable(dir *Directory, stride int) *OffsetTable {
	if stride <= 0 {
		stride = DefaultStride
	}
	return &OffsetTable{
		dir:     dir,
		stride:  stride,
		offsets: make(map[string]int),
	}
}

// Stride returns the band width.
func (t *OffsetTable) Stride() int {
	return t.stride
}

// OffsetFor returns stride × the rank of name among the active outputs
// sorted by name.
func (t *OffsetTable) OffsetFor(name string) (int, error) {
	if offset, ok := t.offsets[name]; ok {
		return offset, nil
	}

	sorted, err := t.dir.SortedByName()
	if err != nil {
		return 0, err
	}
	index := slices.IndexFunc(sorted, func(o model.Output) bool { return o.Name == name })
	if index < 0 {
		return 0, wserrors.New(wserrors.ErrCodeUnknownOutput, "output %q is not active", name)
	}

	offset := t.stride * index
	t.offsets[name] = offset
	return offset, nil
}

// Snapshot returns a copy of the cached offsets.
func (t *OffsetTable) Snapshot() map[string]int {
	return maps.Clone(t.offsets)
}
