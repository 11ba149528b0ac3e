package schema

import "sort"

// Family names a top-level grouping of variants.
type Family string

const (
	Encoder    Family = "encoder"
	Classifier Family = "classifier"
)

// Families lists every family in document order.
var Families = []Family{Encoder, Classifier}

// Section returns the document key holding the family's variants.
func (f Family) Section() string {
	switch f {
	case Encoder:
		return "efnet_encoder"
	case Classifier:
		return "efnet_classifier"
	}
	return ""
}

// Valid reports whether f is a known family.
func (f Family) Valid() bool {
	return f.Section() != ""
}

// Parameter describes one tunable value of a variant.
type Parameter struct {
	Name string
	Kind Kind
	// Min and Max bound numeric values (and every element of an IntList)
	// when set.
	Min *float64
	Max *float64
}

// Variant describes one named configuration preset.
type Variant struct {
	Family Family
	Name   string
	// Disabled variants are optional schema branches that a document may
	// still enable by declaring them.
	Disabled   bool
	Parameters []Parameter
}

// Parameter returns the declared parameter by name.
func (v *Variant) Parameter(name string) (*Parameter, bool) {
	for i := range v.Parameters {
		if v.Parameters[i].Name == name {
			return &v.Parameters[i], true
		}
	}
	return nil, false
}

// Names returns the declared parameter names in sorted order.
func (v *Variant) Names() []string {
	names := make([]string, len(v.Parameters))
	for i, p := range v.Parameters {
		names[i] = p.Name
	}
	sort.Strings(names)
	return names
}

// Schema indexes variants by family and name.
type Schema struct {
	variants map[Family]map[string]*Variant
}

// New builds a schema; a later variant with the same family and name
// replaces an earlier one.
func New(variants ...*Variant) *Schema {
	s := &Schema{variants: make(map[Family]map[string]*Variant)}
	for _, v := range variants {
		byName, ok := s.variants[v.Family]
		if !ok {
			byName = make(map[string]*Variant)
			s.variants[v.Family] = byName
		}
		byName[v.Name] = v
	}
	return s
}

// Lookup returns the variant schema for family and name.
func (s *Schema) Lookup(family Family, name string) (*Variant, bool) {
	v, ok := s.variants[family][name]
	return v, ok
}

// Variants returns the family's variants sorted by name. Disabled variants
// are included only when withDisabled is set.
func (s *Schema) Variants(family Family, withDisabled bool) []*Variant {
	var out []*Variant
	for _, v := range s.variants[family] {
		if v.Disabled && !withDisabled {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
