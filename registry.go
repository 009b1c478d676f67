package ecobee

import "fmt"

// Object is implemented by every ecobee domain type. Implementations live in
// this package; the unexported method keeps the interface sealed so the
// registry can assume every Object has a matching descriptor.
type Object interface {
	// TypeName returns the registered type name, e.g. "Thermostat".
	TypeName() string

	// encodeFields returns the set fields of the object, keyed by field name.
	encodeFields() fieldSet
}

// fieldKind enumerates the declared types a field can have on the wire.
type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindFloat
	kindBool
	kindObject
	kindList
)

// fieldType is the declared type of a single field: a primitive, a reference
// to another registered type, or an ordered sequence of either.
type fieldType struct {
	kind fieldKind
	ref  string     // target type name when kind == kindObject
	elem *fieldType // element type when kind == kindList
}

var (
	tString = fieldType{kind: kindString}
	tInt    = fieldType{kind: kindInt}
	tFloat  = fieldType{kind: kindFloat}
	tBool   = fieldType{kind: kindBool}
)

// tObject declares a field holding an instance of the named type.
func tObject(name string) fieldType {
	return fieldType{kind: kindObject, ref: name}
}

// tList declares a field holding an ordered sequence of elem.
func tList(elem fieldType) fieldType {
	return fieldType{kind: kindList, elem: &elem}
}

// String renders the declared type the way error messages report it.
func (t fieldType) String() string {
	switch t.kind {
	case kindString:
		return "string"
	case kindInt:
		return "integer"
	case kindFloat:
		return "real"
	case kindBool:
		return "boolean"
	case kindObject:
		return t.ref
	case kindList:
		return "list of " + t.elem.String()
	}
	return "unknown"
}

// fieldDef binds one field name to its wire name and declared type.
type fieldDef struct {
	name string
	wire string
	typ  fieldType
}

// typeDescriptor is the static metadata for one registered type: the ordered
// field list, the wire-name/field-name maps in both directions, and the
// factory that builds an instance once all fields of a node are decoded.
type typeDescriptor struct {
	name        string
	fields      []fieldDef
	byWire      map[string]fieldDef
	byName      map[string]fieldDef
	wireToField map[string]string
	fieldToWire map[string]string
	build       func(fieldSet) Object
}

// registry maps type names to descriptors. It is populated from init
// functions in the domain model files and read-only afterward.
var registry = map[string]*typeDescriptor{}

// registerType adds a descriptor to the registry. Duplicate type names, field
// names, or wire names are authoring defects and panic at init.
func registerType(name string, fields []fieldDef, build func(fieldSet) Object) {
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("ecobee: type %q registered twice", name))
	}

	desc := &typeDescriptor{
		name:        name,
		fields:      fields,
		byWire:      make(map[string]fieldDef, len(fields)),
		byName:      make(map[string]fieldDef, len(fields)),
		wireToField: make(map[string]string, len(fields)),
		fieldToWire: make(map[string]string, len(fields)),
		build:       build,
	}

	for _, f := range fields {
		if _, ok := desc.byName[f.name]; ok {
			panic(fmt.Sprintf("ecobee: type %q declares field %q twice", name, f.name))
		}
		if _, ok := desc.byWire[f.wire]; ok {
			panic(fmt.Sprintf("ecobee: type %q declares wire name %q twice", name, f.wire))
		}
		desc.byName[f.name] = f
		desc.byWire[f.wire] = f
		desc.wireToField[f.wire] = f.name
		desc.fieldToWire[f.name] = f.wire
	}

	registry[name] = desc
}

// lookupType resolves a type name to its descriptor.
func lookupType(name string) (*typeDescriptor, error) {
	desc, ok := registry[name]
	if !ok {
		return nil, &MissingTypeError{Name: name}
	}
	return desc, nil
}
