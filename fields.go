package ecobee

// fieldSet is the per-node accumulator used on both sides of the marshaller:
// decode fills one before invoking a type's build function, and encodeFields
// implementations fill one for the encoder to drain. Keys are field names;
// absent keys mean the field is not set.
type fieldSet map[string]any

func (fs fieldSet) str(name string) *string {
	if v, ok := fs[name]; ok {
		s := v.(string)
		return &s
	}
	return nil
}

func (fs fieldSet) integer(name string) *int {
	if v, ok := fs[name]; ok {
		n := v.(int)
		return &n
	}
	return nil
}

func (fs fieldSet) real(name string) *float64 {
	if v, ok := fs[name]; ok {
		f := v.(float64)
		return &f
	}
	return nil
}

func (fs fieldSet) boolean(name string) *bool {
	if v, ok := fs[name]; ok {
		b := v.(bool)
		return &b
	}
	return nil
}

func (fs fieldSet) strings(name string) []string {
	if v, ok := fs[name]; ok {
		return v.([]string)
	}
	return nil
}

func (fs fieldSet) ints(name string) []int {
	if v, ok := fs[name]; ok {
		return v.([]int)
	}
	return nil
}

// object retrieves a decoded composite field as its concrete type.
func object[T any](fs fieldSet, name string) *T {
	if v, ok := fs[name]; ok {
		return v.(*T)
	}
	return nil
}

// objects retrieves a decoded sequence-of-composites field.
func objects[T any](fs fieldSet, name string) []*T {
	v, ok := fs[name]
	if !ok {
		return nil
	}
	decoded := v.([]Object)
	out := make([]*T, 0, len(decoded))
	for _, obj := range decoded {
		out = append(out, any(obj).(*T))
	}
	return out
}

func (fs fieldSet) putString(name string, v *string) {
	if v != nil {
		fs[name] = *v
	}
}

func (fs fieldSet) putInt(name string, v *int) {
	if v != nil {
		fs[name] = *v
	}
}

func (fs fieldSet) putFloat(name string, v *float64) {
	if v != nil {
		fs[name] = *v
	}
}

func (fs fieldSet) putBool(name string, v *bool) {
	if v != nil {
		fs[name] = *v
	}
}

func (fs fieldSet) putStrings(name string, v []string) {
	if v != nil {
		fs[name] = v
	}
}

func (fs fieldSet) putInts(name string, v []int) {
	if v != nil {
		fs[name] = v
	}
}

// putObject stores a composite field, skipping typed nils.
func putObject[T any](fs fieldSet, name string, v *T) {
	if v != nil {
		fs[name] = any(v)
	}
}

// putObjects stores a sequence-of-composites field as []Object.
func putObjects[T Object](fs fieldSet, name string, v []T) {
	if v == nil {
		return
	}
	out := make([]Object, 0, len(v))
	for _, obj := range v {
		out = append(out, obj)
	}
	fs[name] = out
}

// Pointer helpers for building sparse request objects, mirroring the
// omit-when-nil encode contract.

// String returns a pointer to v.
func String(v string) *string { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
