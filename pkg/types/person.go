package types

import (
	"fmt"
	"io"
)

// Person is a named record with an age, a hobby, and a per-instance nickname.
// The type-level nickname shared by every Person lives in the package
// singleton; see SharedNickname.
type Person struct {
	PersonID string `json:"person_id"` // UUID v7, generated on creation.
	Name     string `json:"name"`      // Required for storage.
	Age      int    `json:"age"`
	Hobby    string `json:"hobby"`
	NickName string `json:"nick_name,omitempty"`
}

// NewPerson returns a Person with the given name, age, and hobby.
func NewPerson(name string, age int, hobby string) *Person {
	return &Person{Name: name, Age: age, Hobby: hobby}
}

// Describe returns a greeting that mentions the person's name, age, and hobby.
func (p *Person) Describe() string {
	return fmt.Sprintf("Hi, I'm %s, %d years old, and I like %s.", p.Name, p.Age, p.Hobby)
}

// SaySomething writes Describe to w followed by a newline.
func (p *Person) SaySomething(w io.Writer) {
	fmt.Fprintln(w, p.Describe())
}

// SharedNickname returns the nickname shared by all Person values.
func (p *Person) SharedNickname() string {
	return SharedNickname()
}

// SetSharedNickname replaces the nickname shared by all Person values.
func (p *Person) SetSharedNickname(nickname string) {
	SetSharedNickname(nickname)
}
