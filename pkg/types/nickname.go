package types

import "sync"

// sharedNickname holds the process-wide nickname for Person. The value is
// owned by this package; readers and writers go through the accessors below.
var sharedNickname struct {
	mu    sync.RWMutex
	value string
}

// SharedNickname returns the process-wide Person nickname.
// Safe for concurrent use.
func SharedNickname() string {
	sharedNickname.mu.RLock()
	defer sharedNickname.mu.RUnlock()
	return sharedNickname.value
}

// SetSharedNickname replaces the process-wide Person nickname.
// Safe for concurrent use.
func SetSharedNickname(nickname string) {
	sharedNickname.mu.Lock()
	defer sharedNickname.mu.Unlock()
	sharedNickname.value = nickname
}

// ResetSharedNickname restores the empty nickname. Tests call it in cleanup.
func ResetSharedNickname() {
	SetSharedNickname("")
}
