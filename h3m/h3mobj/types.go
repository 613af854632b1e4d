// This file contains the object-template id catalog: the value an
// ObjectTemplate carries in its ID field and the parser dispatches on
// when decoding an Object's payload.
//
// The wire format ties every concrete payload to a numeric id baked
// into the map file by the original editor; the distilled spec that
// grounds this package does not carry that numeric table, so the
// values below are this implementation's own internally consistent
// catalog rather than a reproduction of the game's original ids (see
// DESIGN.md). What matters for a correct decode is that every
// ObjectTemplate.ID produced by the parser is dispatched through this
// same table.
package h3mobj

// ObjectID identifies which payload variant an object's body decodes
// into.
type ObjectID uint32

const (
	Event ObjectID = iota + 1

	Monster
	RandomMonster
	RandomMonsterL1
	RandomMonsterL2
	RandomMonsterL3
	RandomMonsterL4
	RandomMonsterL5
	RandomMonsterL6
	RandomMonsterL7

	Shipyard
	Lighthouse
	CreatureGenerator1
	CreatureGenerator2
	CreatureGenerator3
	CreatureGenerator4

	Mine
	AbandonedMine

	Hero
	RandomHero
	Prison

	Artifact
	RandomArt
	RandomTreasureArt
	RandomMinorArt
	RandomMajorArt
	RandomRelicArt

	SpellScroll

	Resource
	RandomResource

	Sign
	OceanBottle

	SeerHut
	WitchHut
	Scholar

	Garrison
	Garrison2

	Town
	RandomTown

	ShrineOfMagicIncantation
	ShrineOfMagicGesture
	ShrineOfMagicThought

	PandorasBox
	Grail

	RandomDwelling
	RandomDwellingLvl
	RandomDwellingFaction

	QuestGuard
	HeroPlaceholder

	CreatureBank
	DerelictShip
	DragonUtopia
	Crypt
	Shipwreck
)

var objectIDNames = map[ObjectID]string{
	Event:                    "Event",
	Monster:                  "Monster",
	RandomMonster:            "RandomMonster",
	RandomMonsterL1:          "RandomMonsterL1",
	RandomMonsterL2:          "RandomMonsterL2",
	RandomMonsterL3:          "RandomMonsterL3",
	RandomMonsterL4:          "RandomMonsterL4",
	RandomMonsterL5:          "RandomMonsterL5",
	RandomMonsterL6:          "RandomMonsterL6",
	RandomMonsterL7:          "RandomMonsterL7",
	Shipyard:                 "Shipyard",
	Lighthouse:               "Lighthouse",
	CreatureGenerator1:       "CreatureGenerator1",
	CreatureGenerator2:       "CreatureGenerator2",
	CreatureGenerator3:       "CreatureGenerator3",
	CreatureGenerator4:       "CreatureGenerator4",
	Mine:                     "Mine",
	AbandonedMine:            "AbandonedMine",
	Hero:                     "Hero",
	RandomHero:               "RandomHero",
	Prison:                   "Prison",
	Artifact:                 "Artifact",
	RandomArt:                "RandomArt",
	RandomTreasureArt:        "RandomTreasureArt",
	RandomMinorArt:           "RandomMinorArt",
	RandomMajorArt:           "RandomMajorArt",
	RandomRelicArt:           "RandomRelicArt",
	SpellScroll:              "SpellScroll",
	Resource:                 "Resource",
	RandomResource:           "RandomResource",
	Sign:                     "Sign",
	OceanBottle:              "OceanBottle",
	SeerHut:                  "SeerHut",
	WitchHut:                 "WitchHut",
	Scholar:                  "Scholar",
	Garrison:                 "Garrison",
	Garrison2:                "Garrison2",
	Town:                     "Town",
	RandomTown:               "RandomTown",
	ShrineOfMagicIncantation: "ShrineOfMagicIncantation",
	ShrineOfMagicGesture:     "ShrineOfMagicGesture",
	ShrineOfMagicThought:     "ShrineOfMagicThought",
	PandorasBox:              "PandorasBox",
	Grail:                    "Grail",
	RandomDwelling:           "RandomDwelling",
	RandomDwellingLvl:        "RandomDwellingLvl",
	RandomDwellingFaction:    "RandomDwellingFaction",
	QuestGuard:               "QuestGuard",
	HeroPlaceholder:          "HeroPlaceholder",
	CreatureBank:             "CreatureBank",
	DerelictShip:             "DerelictShip",
	DragonUtopia:             "DragonUtopia",
	Crypt:                    "Crypt",
	Shipwreck:                "Shipwreck",
}

// String returns the dispatch name, or "Unknown object id" for an id this
// catalog does not define.
func (id ObjectID) String() string {
	if name, ok := objectIDNames[id]; ok {
		return name
	}
	return "Unknown object id"
}
