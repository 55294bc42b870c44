package types

// Standard table names for Cupboard.GetTable.
const (
	TablePeople       = "people"
	TableSimplePeople = "simple_people"
	TableSettings     = "settings"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	TablePeople,
	TableSimplePeople,
	TableSettings,
}
