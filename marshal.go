package ecobee

import (
	"strconv"
	"strings"
)

// Decode converts a wire payload into a typed object graph. The payload must
// be rooted at a single key whose value holds the data for one instance of
// typeName; the root key itself carries no type information (the caller
// supplies the type, and every nested type resolves through the registry).
//
// Decoding is all-or-nothing: an unknown key, a shape mismatch, or a missing
// registry entry aborts the call and no partial object is returned.
func Decode(payload map[string]any, typeName string) (Object, error) {
	desc, err := lookupType(typeName)
	if err != nil {
		return nil, err
	}

	if len(payload) != 1 {
		return nil, &ShapeMismatchError{
			Type:     typeName,
			Expected: "payload rooted at a single key",
			Actual:   "payload with " + strconv.Itoa(len(payload)) + " root keys",
		}
	}

	for key, value := range payload {
		data, ok := value.(map[string]any)
		if !ok {
			return nil, &ShapeMismatchError{
				Type:     typeName,
				Key:      key,
				Expected: "object",
				Actual:   shapeOf(value),
			}
		}
		return decodeObject(desc, data)
	}

	return nil, nil // unreachable
}

// Encode converts a typed object graph back into a wire payload rooted at the
// object's type name, the exact inverse of Decode. Nil fields are omitted
// entirely; the vendor API treats an omitted key differently from an explicit
// default, particularly in partial-update requests.
func Encode(obj Object) (map[string]any, error) {
	fields, err := encodeFields(obj)
	if err != nil {
		return nil, err
	}
	return map[string]any{obj.TypeName(): fields}, nil
}

// decodeObject builds one node of the object graph. Children are fully built
// before the node's own factory runs, so construction is strictly bottom-up.
func decodeObject(desc *typeDescriptor, data map[string]any) (Object, error) {
	fs := make(fieldSet, len(data))

	for wire, raw := range data {
		f, ok := desc.byWire[wire]
		if !ok {
			return nil, &UnknownFieldError{Type: desc.name, Key: wire}
		}
		if raw == nil {
			continue // explicit null decodes as an absent field
		}

		v, err := decodeValue(desc.name, f, raw)
		if err != nil {
			return nil, err
		}
		fs[f.name] = v
	}

	return desc.build(fs), nil
}

// decodeValue checks a wire value against the field's declared type and
// converts it to the representation stored in a fieldSet.
func decodeValue(typeName string, f fieldDef, raw any) (any, error) {
	switch f.typ.kind {
	case kindString:
		s, ok := raw.(string)
		if !ok {
			return nil, mismatch(typeName, f, raw)
		}
		return s, nil

	case kindInt:
		n, ok := coerceInt(raw)
		if !ok {
			return nil, mismatch(typeName, f, raw)
		}
		return n, nil

	case kindFloat:
		n, ok := coerceFloat(raw)
		if !ok {
			return nil, mismatch(typeName, f, raw)
		}
		return n, nil

	case kindBool:
		b, ok := coerceBool(raw)
		if !ok {
			return nil, mismatch(typeName, f, raw)
		}
		return b, nil

	case kindObject:
		data, ok := raw.(map[string]any)
		if !ok {
			return nil, mismatch(typeName, f, raw)
		}
		child, err := lookupType(f.typ.ref)
		if err != nil {
			return nil, err
		}
		return decodeObject(child, data)

	case kindList:
		entries, ok := raw.([]any)
		if !ok {
			return nil, mismatch(typeName, f, raw)
		}
		return decodeList(typeName, f, entries)
	}

	return nil, mismatch(typeName, f, raw)
}

// decodeList dispatches each element on the declared element type. The
// element type comes from the registry, never from inspecting the elements.
func decodeList(typeName string, f fieldDef, entries []any) (any, error) {
	elem := *f.typ.elem

	switch elem.kind {
	case kindObject:
		child, err := lookupType(elem.ref)
		if err != nil {
			return nil, err
		}
		out := make([]Object, 0, len(entries))
		for _, entry := range entries {
			data, ok := entry.(map[string]any)
			if !ok {
				return nil, mismatch(typeName, f, entry)
			}
			obj, err := decodeObject(child, data)
			if err != nil {
				return nil, err
			}
			out = append(out, obj)
		}
		return out, nil

	case kindString:
		out := make([]string, 0, len(entries))
		for _, entry := range entries {
			s, ok := entry.(string)
			if !ok {
				return nil, mismatch(typeName, f, entry)
			}
			out = append(out, s)
		}
		return out, nil

	case kindInt:
		out := make([]int, 0, len(entries))
		for _, entry := range entries {
			n, ok := coerceInt(entry)
			if !ok {
				return nil, mismatch(typeName, f, entry)
			}
			out = append(out, n)
		}
		return out, nil

	case kindFloat:
		out := make([]float64, 0, len(entries))
		for _, entry := range entries {
			n, ok := coerceFloat(entry)
			if !ok {
				return nil, mismatch(typeName, f, entry)
			}
			out = append(out, n)
		}
		return out, nil

	case kindBool:
		out := make([]bool, 0, len(entries))
		for _, entry := range entries {
			b, ok := coerceBool(entry)
			if !ok {
				return nil, mismatch(typeName, f, entry)
			}
			out = append(out, b)
		}
		return out, nil

	case kindList:
		inner := fieldDef{name: f.name, wire: f.wire, typ: elem}
		out := make([]any, 0, len(entries))
		for _, entry := range entries {
			sub, ok := entry.([]any)
			if !ok {
				return nil, mismatch(typeName, inner, entry)
			}
			v, err := decodeList(typeName, inner, sub)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}

	return nil, mismatch(typeName, f, entries)
}

// encodeFields walks one object depth-first and emits wireName: value pairs
// in declared field order, skipping fields the object does not carry.
func encodeFields(obj Object) (map[string]any, error) {
	desc, err := lookupType(obj.TypeName())
	if err != nil {
		return nil, err
	}

	fs := obj.encodeFields()
	out := make(map[string]any, len(fs))

	for _, f := range desc.fields {
		v, ok := fs[f.name]
		if !ok {
			continue
		}
		ev, err := encodeValue(desc.name, f, v)
		if err != nil {
			return nil, err
		}
		out[f.wire] = ev
	}

	return out, nil
}

func encodeValue(typeName string, f fieldDef, v any) (any, error) {
	switch f.typ.kind {
	case kindString, kindInt, kindFloat, kindBool:
		return v, nil

	case kindObject:
		child, ok := v.(Object)
		if !ok {
			return nil, mismatch(typeName, f, v)
		}
		return encodeFields(child)

	case kindList:
		return encodeList(typeName, f, v)
	}

	return nil, mismatch(typeName, f, v)
}

func encodeList(typeName string, f fieldDef, v any) (any, error) {
	switch elems := v.(type) {
	case []Object:
		out := make([]any, 0, len(elems))
		for _, elem := range elems {
			ev, err := encodeFields(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		return out, nil

	case []string:
		out := make([]any, 0, len(elems))
		for _, elem := range elems {
			out = append(out, elem)
		}
		return out, nil

	case []int:
		out := make([]any, 0, len(elems))
		for _, elem := range elems {
			out = append(out, elem)
		}
		return out, nil

	case []float64:
		out := make([]any, 0, len(elems))
		for _, elem := range elems {
			out = append(out, elem)
		}
		return out, nil

	case []bool:
		out := make([]any, 0, len(elems))
		for _, elem := range elems {
			out = append(out, elem)
		}
		return out, nil

	case []any:
		inner := fieldDef{name: f.name, wire: f.wire, typ: *f.typ.elem}
		out := make([]any, 0, len(elems))
		for _, elem := range elems {
			ev, err := encodeList(typeName, inner, elem)
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		return out, nil
	}

	return nil, mismatch(typeName, f, v)
}

// coerceInt normalizes the integer encodings seen in ecobee payloads: JSON
// numbers (float64 after generic decoding), native ints, and integer-valued
// strings. Booleans never coerce to integers despite the 0/1 overlap.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func coerceBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func mismatch(typeName string, f fieldDef, raw any) error {
	return &ShapeMismatchError{
		Type:     typeName,
		Key:      f.wire,
		Expected: f.typ.String(),
		Actual:   shapeOf(raw),
	}
}

// shapeOf names the runtime shape of a wire value for error messages.
func shapeOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	}
	return "unknown"
}
