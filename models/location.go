package models

// LocationName is both the identifier sent to the API and the label shown
// to the user.
type LocationName string

func (n LocationName) String() string {
	return string(n)
}

// Level identifies one control of the country -> state -> city chain.
type Level int

const (
	LevelCountry Level = iota
	LevelState
	LevelCity
)

// Levels lists every level from the root of the chain down.
var Levels = []Level{LevelCountry, LevelState, LevelCity}

func (l Level) String() string {
	switch l {
	case LevelCountry:
		return "country"
	case LevelState:
		return "state"
	case LevelCity:
		return "city"
	}
	return "unknown"
}

// Placeholder is the first option of a level's dropdown. Picking it clears
// the selection.
func (l Level) Placeholder() string {
	switch l {
	case LevelCountry:
		return "Select Country"
	case LevelState:
		return "Select State"
	case LevelCity:
		return "Select City"
	}
	return ""
}

// Names converts raw strings into location names, keeping order.
func Names(raw []string) []LocationName {
	names := make([]LocationName, 0, len(raw))
	for _, r := range raw {
		names = append(names, LocationName(r))
	}
	return names
}
