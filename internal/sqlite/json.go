package sqlite

// JSON record structures that mirror the JSONL file format.

// personJSON represents a person in people.jsonl.
type personJSON struct {
	PersonID string `json:"person_id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Hobby    string `json:"hobby"`
	NickName string `json:"nick_name"`
}

// simplePersonJSON represents a simple person in simple_people.jsonl.
type simplePersonJSON struct {
	SimplePersonID string `json:"simple_person_id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
}

// settingJSON represents a setting in settings.jsonl.
type settingJSON struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
