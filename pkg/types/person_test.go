package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonDescribe(t *testing.T) {
	tests := []struct {
		name   string
		person *Person
		want   []string
	}{
		{
			name:   "all fields present",
			person: NewPerson("Alice", 30, "chess"),
			want:   []string{"Alice", "30", "chess"},
		},
		{
			name:   "zero age",
			person: NewPerson("Bob", 0, "sleeping"),
			want:   []string{"Bob", "0", "sleeping"},
		},
		{
			name:   "empty hobby",
			person: &Person{Name: "Carol", Age: 41},
			want:   []string{"Carol", "41"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.person.Describe()
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestPersonDescribeFormat(t *testing.T) {
	p := NewPerson("Alice", 30, "chess")
	assert.Equal(t, "Hi, I'm Alice, 30 years old, and I like chess.", p.Describe())
}

func TestPersonSaySomething(t *testing.T) {
	p := NewPerson("Alice", 30, "chess")
	var buf bytes.Buffer

	p.SaySomething(&buf)

	assert.Equal(t, p.Describe()+"\n", buf.String())
}

func TestPersonDescribeHasNoSideEffects(t *testing.T) {
	p := NewPerson("Alice", 30, "chess")
	before := *p

	_ = p.Describe()

	assert.Equal(t, before, *p)
}
