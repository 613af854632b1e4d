// This file contains general, non-enumerated types shared across the
// domain model.

package h3mcore

// MapCoord identifies a tile on the map: x and y bounded by the map
// dimension, z in {0, 1} selecting the surface or underground level.
type MapCoord struct {
	X, Y, Z uint8
}

// Difficulty is the scenario's difficulty level.
type Difficulty struct {
	Enum

	ID uint8
}

// Difficulties is an enumeration of the possible difficulties.
var Difficulties = []*Difficulty{
	{Enum{"Easy"}, 0},
	{Enum{"Normal"}, 1},
	{Enum{"Hard"}, 2},
	{Enum{"Expert"}, 3},
	{Enum{"Impossible"}, 4},
}

// Named difficulties.
var (
	DifficultyEasy       = Difficulties[0]
	DifficultyNormal     = Difficulties[1]
	DifficultyHard       = Difficulties[2]
	DifficultyExpert     = Difficulties[3]
	DifficultyImpossible = Difficulties[4]
)

// DifficultyByID returns the Difficulty for the given id.
// ok is false if id is out of range 0..=4; difficulty is a mandatory
// enumerated field, so this is fatal to the caller.
func DifficultyByID(id uint8) (d *Difficulty, ok bool) {
	if int(id) < len(Difficulties) {
		return Difficulties[id], true
	}
	return nil, false
}

// Behaviour is an AI player's starting behaviour.
type Behaviour struct {
	Enum

	ID int8
}

// Behaviours is an enumeration of the possible behaviours.
var Behaviours = []*Behaviour{
	{Enum{"None"}, -1},
	{Enum{"Random"}, 0},
	{Enum{"Warrior"}, 1},
	{Enum{"Builder"}, 2},
	{Enum{"Explorer"}, 3},
}

// BehaviourByID returns the Behaviour for the given id.
// ok is false if id is not in -1..=3.
func BehaviourByID(id int8) (b *Behaviour, ok bool) {
	for _, b := range Behaviours {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// PlayerColor identifies one of the eight player colors. The fixed order
// Red, Blue, Tan, Green, Orange, Purple, Teal, Pink recurs throughout the
// format: player records, team bytes, player bitmaps.
type PlayerColor struct {
	Enum

	// Index is the position of this color in the fixed iteration order,
	// also used as the bit index in per-color bitmasks.
	Index int
}

// PlayerColors is the fixed, ordered enumeration of the eight colors.
var PlayerColors = []*PlayerColor{
	{Enum{"Red"}, 0},
	{Enum{"Blue"}, 1},
	{Enum{"Tan"}, 2},
	{Enum{"Green"}, 3},
	{Enum{"Orange"}, 4},
	{Enum{"Purple"}, 5},
	{Enum{"Teal"}, 6},
	{Enum{"Pink"}, 7},
}

// PlayerColorByIndex returns the PlayerColor at the given position in the
// fixed order. ok is false if index is out of 0..=7.
func PlayerColorByIndex(index int) (c *PlayerColor, ok bool) {
	if index >= 0 && index < len(PlayerColors) {
		return PlayerColors[index], true
	}
	return nil, false
}

// Gender is a hero's gender override.
type Gender struct {
	Enum

	ID uint8
}

// Genders is an enumeration of the possible gender overrides.
var Genders = []*Gender{
	{Enum{"Male"}, 0},
	{Enum{"Female"}, 1},
}

// GenderByID returns the Gender for the given id, or (nil, true) if id
// denotes "no override". ok is false if id is neither a known gender nor
// the no-override sentinel (2).
func GenderByID(id uint8) (g *Gender, ok bool) {
	switch id {
	case 0:
		return Genders[0], true
	case 1:
		return Genders[1], true
	case 2:
		return nil, true
	default:
		return nil, false
	}
}

// SecondarySkillLevel is the proficiency level of a secondary skill.
type SecondarySkillLevel struct {
	Enum

	ID uint8
}

// SecondarySkillLevels is an enumeration of the possible levels.
var SecondarySkillLevels = []*SecondarySkillLevel{
	{Enum{"Basic"}, 0},
	{Enum{"Advanced"}, 1},
	{Enum{"Expert"}, 2},
}

// SecondarySkillLevelByID returns the SecondarySkillLevel for the given id.
func SecondarySkillLevelByID(id uint8) (l *SecondarySkillLevel, ok bool) {
	if int(id) < len(SecondarySkillLevels) {
		return SecondarySkillLevels[id], true
	}
	return nil, false
}
