package metadata

import (
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// Inspect analyzes a struct and returns its EntityDef.
func Inspect(entity any, name string, entityType EntityType) EntityDef {
	t := reflect.TypeOf(entity)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if name == "" {
		name = t.Name()
	}

	def := EntityDef{
		Name:   name,
		Label:  guessLabel(name),
		Type:   entityType,
		Fields: make([]FieldDef, 0),
	}

	inspectStruct(t, &def)

	return def
}

func inspectStruct(t reflect.Type, def *EntityDef) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.PkgPath != "" { // unexported
			continue
		}

		// Handle embedded structs (flattening)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			inspectStruct(field.Type, def)
			continue
		}

		fDef := FieldDef{
			Name:     jsonName(field),
			Label:    guessLabel(field.Name),
			Required: isRequired(field),
			ReadOnly: isReadOnly(field),
		}

		// Filter out ignored fields (json:"-")
		if fDef.Name == "-" {
			continue
		}

		mapFieldType(&fDef, field)
		def.Fields = append(def.Fields, fDef)
	}
}

func mapFieldType(def *FieldDef, field reflect.StructField) {
	t := field.Type

	// Explicit reference: `ref:"account"`
	if ref, ok := field.Tag.Lookup("ref"); ok {
		def.Type = TypeReference
		def.ReferenceType = ref
		return
	}

	switch t {
	case timeType:
		def.Type = TypeDate
		return
	case decimalType:
		def.Type = TypeMoney
		def.Scale = 2
		return
	}

	switch t.Kind() {
	case reflect.String:
		def.Type = TypeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// Guess reference type from name: e.g. "CustomerID" -> "customer"
		if field.Name != "ID" && strings.HasSuffix(field.Name, "ID") {
			def.Type = TypeReference
			def.ReferenceType = strings.ToLower(strings.TrimSuffix(field.Name, "ID"))
			return
		}
		def.Type = TypeInteger
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		def.Type = TypeInteger
	case reflect.Float32, reflect.Float64:
		def.Type = TypeNumber
	case reflect.Bool:
		def.Type = TypeBoolean
	default:
		def.Type = TypeString // fallback
	}
}

func jsonName(field reflect.StructField) string {
	if tag, ok := field.Tag.Lookup("json"); ok {
		parts := strings.Split(tag, ",")
		if parts[0] != "" {
			return parts[0]
		}
	}
	// Fallback: camelCase
	runes := []rune(field.Name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func isRequired(field reflect.StructField) bool {
	for _, tagName := range []string{"validate", "binding"} {
		tag, ok := field.Tag.Lookup(tagName)
		if !ok {
			continue
		}
		for _, rule := range strings.Split(tag, ",") {
			if rule == "required" {
				return true
			}
		}
	}
	return false
}

func isReadOnly(field reflect.StructField) bool {
	// Assigned by the store
	return field.Name == "ID" || field.Name == "CreatedAt"
}

// guessLabel splits CamelCase: "CustomerName" -> "Customer Name", "ID" stays "ID".
func guessLabel(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
