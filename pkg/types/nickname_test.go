package types

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedNicknameVisibleAcrossInstances(t *testing.T) {
	t.Cleanup(ResetSharedNickname)

	a := NewPerson("Alice", 30, "chess")
	b := NewPerson("Bob", 25, "rowing")

	a.SetSharedNickname("Ace")

	assert.Equal(t, "Ace", b.SharedNickname())
	assert.Equal(t, "Ace", SharedNickname())

	b.SetSharedNickname("Bee")
	assert.Equal(t, "Bee", a.SharedNickname())
}

func TestSharedNicknameIndependentOfInstanceNickname(t *testing.T) {
	t.Cleanup(ResetSharedNickname)

	p := NewPerson("Alice", 30, "chess")
	p.NickName = "Al"
	SetSharedNickname("Ace")

	assert.Equal(t, "Al", p.NickName)
	assert.Equal(t, "Ace", p.SharedNickname())
}

func TestResetSharedNickname(t *testing.T) {
	SetSharedNickname("temp")
	ResetSharedNickname()
	assert.Empty(t, SharedNickname())
}

func TestSharedNicknameConcurrentAccess(t *testing.T) {
	t.Cleanup(ResetSharedNickname)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			SetSharedNickname(fmt.Sprintf("nick-%d", i))
		}(i)
		go func() {
			defer wg.Done()
			_ = SharedNickname()
		}()
	}
	wg.Wait()

	assert.Contains(t, SharedNickname(), "nick-")
}
