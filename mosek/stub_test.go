//go:build !mosek

package mosek

import (
	"errors"
	"testing"
)

func TestNotLinked(t *testing.T) {
	if _, err := NewEnv(); !errors.Is(err, ErrNotLinked) {
		t.Errorf("NewEnv error = %v, expected ErrNotLinked", err)
	}
	if _, err := NewTask(nil); !errors.Is(err, ErrNotLinked) {
		t.Errorf("NewTask error = %v, expected ErrNotLinked", err)
	}
	if _, err := LibraryVersion(); !errors.Is(err, ErrNotLinked) {
		t.Errorf("LibraryVersion error = %v, expected ErrNotLinked", err)
	}

	model := Model{ColCosts: []float64{1}}
	if _, err := model.Solve(); !errors.Is(err, ErrNotLinked) {
		t.Errorf("Solve error = %v, expected ErrNotLinked", err)
	}
}

func TestClosedTask(t *testing.T) {
	var task Task
	if err := task.AppendVars(1); err == nil {
		t.Error("expected error on closed task")
	}
	if _, err := task.Optimize(); CodeOf(err) != ResErrWrapper {
		t.Errorf("Optimize on closed task: %v", err)
	}
	task.Close()
	task.Close()
}

func TestCodeDescriptionWithoutLibrary(t *testing.T) {
	name, desc := CodeDescription(ResErrSpace)
	if name != "MSK_RES_ERR_SPACE" || desc != "" {
		t.Errorf("CodeDescription = %q, %q", name, desc)
	}
}
