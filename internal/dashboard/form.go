package dashboard

import (
	"errors"
	"fmt"
)

// FormMode is the lifecycle stage of a create/edit form.
type FormMode int

const (
	FormClosed FormMode = iota
	FormCreating
	FormEditing
)

func (m FormMode) String() string {
	switch m {
	case FormClosed:
		return "closed"
	case FormCreating:
		return "creating"
	case FormEditing:
		return "editing"
	}
	return fmt.Sprintf("FormMode(%d)", int(m))
}

var (
	ErrInvalidTransition = errors.New("invalid form transition")
	ErrRequiredFields    = errors.New("required fields missing")
)

// FormState is a form's mode plus the record it edits. EditingID is set only in FormEditing.
type FormState struct {
	Mode      FormMode
	EditingID string
}

// OpenCreate moves Closed -> Creating.
func (f *FormState) OpenCreate() error {
	if f.Mode != FormClosed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, f.Mode, FormCreating)
	}
	f.Mode = FormCreating
	return nil
}

// OpenEdit moves Closed -> Editing(id).
func (f *FormState) OpenEdit(id string) error {
	if f.Mode != FormClosed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, f.Mode, FormEditing)
	}
	if id == "" {
		return fmt.Errorf("%w: editing requires an id", ErrInvalidTransition)
	}
	f.Mode = FormEditing
	f.EditingID = id
	return nil
}

// Close returns an open form to Closed and clears the editing id.
func (f *FormState) Close() error {
	if f.Mode == FormClosed {
		return fmt.Errorf("%w: form already closed", ErrInvalidTransition)
	}
	f.Mode = FormClosed
	f.EditingID = ""
	return nil
}

func (f FormState) IsOpen() bool { return f.Mode != FormClosed }
