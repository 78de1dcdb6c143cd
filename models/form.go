package models

import "strconv"

// EditPhase tells whether a submit will create a new record or update an
// existing one. The absence of an edit target is the create-mode default,
// so there is no separate idle phase.
type EditPhase int

const (
	// PhaseCreate is the default phase: the form holds a draft for a new
	// record and submit performs an add.
	PhaseCreate EditPhase = iota

	// PhaseEdit means the form holds a draft for an existing record and
	// submit performs an update against the target identifier.
	PhaseEdit
)

// FormState is the mutable draft being edited. All fields hold raw,
// unvalidated text exactly as the user typed it; price in particular is
// entered as text and parsed only on submit.
type FormState struct {
	Name     string
	Price    string
	Category string
	ImageURL string
}

// IsEmpty reports whether every field of the draft is blank.
func (f FormState) IsEmpty() bool {
	return f == FormState{}
}

// FormFromItem renders an existing record back into raw form text,
// as "begin edit" requires.
func FormFromItem(item CatalogItem) FormState {
	return FormState{
		Name:     item.Name,
		Price:    strconv.FormatFloat(item.Price, 'f', -1, 64),
		Category: item.Category,
		ImageURL: item.ImageURL,
	}
}
