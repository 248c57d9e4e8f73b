package validation

// Form collects fields and tracks per-field inline errors together with an
// invalid marker, the way the site annotates inputs in place.
type Form struct {
	fields []Field
	errors map[string]string
}

// NewForm builds a form over the given fields.
func NewForm(fields ...Field) *Form {
	return &Form{fields: fields, errors: make(map[string]string)}
}

// SetValue updates a field's value by name. Unknown names are ignored.
func (f *Form) SetValue(name, value string) {
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].Value = value
			return
		}
	}
}

// ValidateField re-validates one field, replacing or removing its inline
// error, and reports its validity.
func (f *Form) ValidateField(name string) bool {
	for _, fld := range f.fields {
		if fld.Name != name {
			continue
		}
		res := Validate(fld)
		if res.Valid {
			delete(f.errors, name)
		} else {
			f.errors[name] = res.Message
		}
		return res.Valid
	}
	return false
}

// Validate runs every field through the validator and reports whether the
// whole form is submittable. Inline errors are refreshed as a side effect.
func (f *Form) Validate() bool {
	valid := true
	for _, fld := range f.fields {
		if !f.ValidateField(fld.Name) {
			valid = false
		}
	}
	return valid
}

// Error returns the inline error for a field, if one is recorded.
func (f *Form) Error(name string) (string, bool) {
	msg, ok := f.errors[name]
	return msg, ok
}

// Invalid reports whether the field currently carries the invalid marker.
func (f *Form) Invalid(name string) bool {
	_, ok := f.errors[name]
	return ok
}

// FirstInvalid returns the first invalid field in declaration order, like
// the site focusing the first failing input on submit.
func (f *Form) FirstInvalid() (Field, bool) {
	for _, fld := range f.fields {
		if f.Invalid(fld.Name) {
			return fld, true
		}
	}
	return Field{}, false
}

// Reset clears all values and inline errors.
func (f *Form) Reset() {
	for i := range f.fields {
		f.fields[i].Value = ""
	}
	f.errors = make(map[string]string)
}
