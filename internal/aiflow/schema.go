package aiflow

import (
	"fmt"
	"reflect"
	"strings"

	"google.golang.org/genai"
)

// SchemaOf derives a response schema from a Go struct type. The derivation
// follows json tags for property names, the desc tag for descriptions and the
// enum tag (comma separated) for closed string sets. Pointer fields are
// optional; everything else is required. Panics on types that cannot be
// expressed, which is a programming error caught at flow registration.
func SchemaOf(v any) *genai.Schema {
	s, err := schemaOfType(reflect.TypeOf(v))
	if err != nil {
		panic(fmt.Sprintf("aiflow: cannot derive schema for %T: %v", v, err))
	}
	return s
}

func schemaOfType(t reflect.Type) (*genai.Schema, error) {
	switch t.Kind() {
	case reflect.Ptr:
		return schemaOfType(t.Elem())
	case reflect.String:
		return &genai.Schema{Type: genai.TypeString}, nil
	case reflect.Bool:
		return &genai.Schema{Type: genai.TypeBoolean}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &genai.Schema{Type: genai.TypeInteger}, nil
	case reflect.Float32, reflect.Float64:
		return &genai.Schema{Type: genai.TypeNumber}, nil
	case reflect.Slice, reflect.Array:
		items, err := schemaOfType(t.Elem())
		if err != nil {
			return nil, err
		}
		return &genai.Schema{Type: genai.TypeArray, Items: items}, nil
	case reflect.Struct:
		return schemaOfStruct(t)
	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind())
	}
}

func schemaOfStruct(t reflect.Type) (*genai.Schema, error) {
	props := map[string]*genai.Schema{}
	var required []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := jsonName(f)
		if name == "-" {
			continue
		}
		fs, err := schemaOfType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		if desc := f.Tag.Get("desc"); desc != "" {
			fs.Description = desc
		}
		if enum := f.Tag.Get("enum"); enum != "" {
			if fs.Type != genai.TypeString {
				return nil, fmt.Errorf("field %s: enum tag on non-string", f.Name)
			}
			fs.Enum = strings.Split(enum, ",")
		}
		props[name] = fs
		if f.Type.Kind() != reflect.Ptr {
			required = append(required, name)
		}
	}
	return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}, nil
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		return f.Name
	}
	return name
}
