package types

// Setting is a key/value pair stored in the settings table.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Standard setting keys.
const (
	SettingNickname = "nickname"
)
