package placement

import (
	"cmp"
	"slices"

	wserrors "github.com/mj1618/workspace-output/internal/errors"
	"github.com/mj1618/workspace-output/internal/model"
)

// OutputSource lists the window manager's outputs.
type OutputSource interface {
	Outputs() ([]model.Output, error)
}

// Directory answers ordering questions about the active outputs.
// Each call queries the source again.
type Directory struct {
	src OutputSource
}

// NewDirectory creates a Directory over src.
func NewDirectory(src OutputSource) *Directory {
	return &Directory{src: src}
}

// Active returns the active outputs in source order.
func (d *Directory) Active() ([]model.Output, error) {
	outputs, err := d.src.Outputs()
	if err != nil {
		return nil, err
	}
	active := make([]model.Output, 0, len(outputs))
	for _, o := range outputs {
		if o.Active {
			active = append(active, o)
		}
	}
	return active, nil
}

// SortedByName returns the active outputs sorted by name.
func (d *Directory) SortedByName() ([]model.Output, error) {
	return d.sorted(func(a, b model.Output) int { return cmp.Compare(a.Name, b.Name) })
}

// SortedByX returns the active outputs sorted by horizontal position.
func (d *Directory) SortedByX() ([]model.Output, error) {
	return d.sorted(func(a, b model.Output) int { return cmp.Compare(a.Rect.X, b.Rect.X) })
}

// SortedByY returns the active outputs sorted by vertical position.
func (d *Directory) SortedByY() ([]model.Output, error) {
	return d.sorted(func(a, b model.Output) int { return cmp.Compare(a.Rect.Y, b.Rect.Y) })
}

// sorted is stable so ties keep source order.
func (d *Directory) sorted(compare func(a, b model.Output) int) ([]model.Output, error) {
	active, err := d.Active()
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(active, compare)
	return active, nil
}

// Neighbor returns the output next to current in direction dir. Left and
// right follow X order, up and down follow Y order. With wrap set, moving
// past either end continues at the other end; otherwise it fails with
// NO_NEIGHBOR_OUTPUT.
func (d *Directory) Neighbor(current string, dir Direction, wrap bool) (model.Output, error) {
	var (
		ordered []model.Output
		err     error
	)
	if dir.horizontal() {
		ordered, err = d.SortedByX()
	} else {
		ordered, err = d.SortedByY()
	}
	if err != nil {
		return model.Output{}, err
	}
	if len(ordered) == 0 {
		return model.Output{}, wserrors.New(wserrors.ErrCodeNoActiveOutputs, "no active outputs")
	}

	index := slices.IndexFunc(ordered, func(o model.Output) bool { return o.Name == current })
	if index < 0 {
		return model.Output{}, wserrors.New(wserrors.ErrCodeUnknownOutput, "output %q is not active", current)
	}

	target := index + dir.step()
	if target < 0 || target >= len(ordered) {
		if !wrap {
			return model.Output{}, wserrors.New(wserrors.ErrCodeNoNeighborOutput, "no output %s of %q", dir, current)
		}
		target = (target + len(ordered)) % len(ordered)
	}
	return ordered[target], nil
}
