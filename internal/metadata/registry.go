// Package metadata describes the stored entities for clients building forms and tables.
package metadata

import (
	"sort"
	"sync"
)

// EntityType defines the category of the entity.
type EntityType string

const (
	TypeCatalog  EntityType = "catalog"
	TypeDocument EntityType = "document"
	TypeRegister EntityType = "register"
)

// FieldType defines the data type of a field.
type FieldType string

const (
	TypeString    FieldType = "string"
	TypeInteger   FieldType = "integer"
	TypeNumber    FieldType = "number" // float
	TypeBoolean   FieldType = "boolean"
	TypeDate      FieldType = "date"
	TypeReference FieldType = "reference"
	TypeEnum      FieldType = "enum"
	TypeMoney     FieldType = "money"
)

// EntityDef describes a business entity.
type EntityDef struct {
	Name       string     `json:"name"`
	Label      string     `json:"label,omitempty"`
	Type       EntityType `json:"type"`
	Collection string     `json:"collection"`
	Mutable    bool       `json:"mutable"`
	Fields     []FieldDef `json:"fields"`
}

// Field returns the field with the given JSON name.
func (d *EntityDef) Field(name string) (*FieldDef, bool) {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i], true
		}
	}
	return nil, false
}

// FieldDef describes a field.
type FieldDef struct {
	Name          string    `json:"name"`
	Label         string    `json:"label,omitempty"`
	Type          FieldType `json:"type"`
	ReferenceType string    `json:"referenceType,omitempty"` // For references, e.g. "account"
	Required      bool      `json:"required,omitempty"`
	ReadOnly      bool      `json:"readOnly,omitempty"`
	Scale         int       `json:"scale,omitempty"` // For money
	Options       []string  `json:"options,omitempty"`
}

// Registry stores entity definitions.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]EntityDef
}

func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]EntityDef),
	}
}

func (r *Registry) Register(def EntityDef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities[def.Name] = def
}

func (r *Registry) Get(name string) (EntityDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entities[name]
	return d, ok
}

// List returns all definitions sorted by name.
func (r *Registry) List() []EntityDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]EntityDef, 0, len(r.entities))
	for _, def := range r.entities {
		list = append(list, def)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}
