package domain

import (
	"fmt"
	"strings"

	apperrors "brightbuddy/internal/platform/errors"
)

// Definition is the ordered list of task labels a parent maintains.
type Definition []string

// DefaultTasks seeds the routine on first run.
var DefaultTasks = Definition{
	"Wake Up and Stretch",
	"Brush Teeth",
	"Get Dressed",
	"Eat Breakfast",
	"Pack Bag for School",
	"Review Daily Goals",
}

func (d Definition) Clone() Definition {
	out := make(Definition, len(d))
	copy(out, d)
	return out
}

func (d Definition) checkIndex(index int) error {
	if index < 0 || index >= len(d) {
		return fmt.Errorf("%w: task index %d out of range [0,%d)", apperrors.ErrInvalidInput, index, len(d))
	}
	return nil
}

func NormalizeLabel(label string) (string, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return "", fmt.Errorf("%w: task label is required", apperrors.ErrInvalidInput)
	}
	return trimmed, nil
}

func (d Definition) Add(label string) (Definition, error) {
	trimmed, err := NormalizeLabel(label)
	if err != nil {
		return nil, err
	}
	return append(d.Clone(), trimmed), nil
}

func (d Definition) Remove(index int) (Definition, error) {
	if err := d.checkIndex(index); err != nil {
		return nil, err
	}
	out := make(Definition, 0, len(d)-1)
	out = append(out, d[:index]...)
	return append(out, d[index+1:]...), nil
}

// MoveUp reports false without copying when index is already first.
func (d Definition) MoveUp(index int) (Definition, bool, error) {
	if err := d.checkIndex(index); err != nil {
		return nil, false, err
	}
	if index == 0 {
		return d, false, nil
	}
	out := d.Clone()
	out[index-1], out[index] = out[index], out[index-1]
	return out, true, nil
}

// MoveDown reports false without copying when index is already last.
func (d Definition) MoveDown(index int) (Definition, bool, error) {
	if err := d.checkIndex(index); err != nil {
		return nil, false, err
	}
	if index == len(d)-1 {
		return d, false, nil
	}
	out := d.Clone()
	out[index+1], out[index] = out[index], out[index+1]
	return out, true, nil
}

// Validate is applied to imported definitions.
func (d Definition) Validate() error {
	for i, label := range d {
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf("%w: task %d has an empty label", apperrors.ErrInvalidInput, i)
		}
	}
	return nil
}
