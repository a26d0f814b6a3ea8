package ui

// Renderer is the render capability injected into workflows: set a named
// text property, toggle a named visibility flag, reset a form. The terminal
// implementation lives in this package; tests use recording fakes.
type Renderer interface {
	SetText(field Field, value string)
	SetVisible(field Field, visible bool)
	ResetForm(form Form)
}

// InputReader is the read-input capability: the current value of a named
// form field.
type InputReader interface {
	Value(field Field) string
}

// FormState is a trivial InputReader backed by a map. The CLI layer writes
// prompted values into it; ResetForm clears them.
type FormState struct {
	values map[Field]string
}

func NewFormState() *FormState {
	return &FormState{values: make(map[Field]string)}
}

func (f *FormState) Set(field Field, value string) { f.values[field] = value }

func (f *FormState) Value(field Field) string { return f.values[field] }

// ClearForm wipes every input belonging to the form.
func (f *FormState) ClearForm(form Form) {
	for _, field := range FormFields[form] {
		delete(f.values, field)
	}
}
