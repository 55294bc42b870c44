package types

// Capability is an empty marker. It carries no methods and is used only as a
// compile-time tag and type constraint.
type Capability interface{}

var _ Capability = (*SimplePerson)(nil)

// SimplePerson is a name and age record tagged with Capability.
type SimplePerson struct {
	SimplePersonID string `json:"simple_person_id"` // UUID v7, generated on creation.
	Name           string `json:"name"`
	Age            int    `json:"age"`
}

// NewSimplePerson returns a SimplePerson with the given name and age.
func NewSimplePerson(name string, age int) *SimplePerson {
	return &SimplePerson{Name: name, Age: age}
}

// InstanceMethod does nothing.
func (s *SimplePerson) InstanceMethod() {}

// ClassMethod is the type-level SimplePerson operation. It does nothing.
func ClassMethod() {}

// Tagged returns items unchanged. The Capability constraint accepts any type.
func Tagged[T Capability](items ...T) []T {
	return items
}
