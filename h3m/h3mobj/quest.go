package h3mobj

// MissionKind tags which condition a Quest requires.
type MissionKind byte

const (
	MissionNone MissionKind = iota
	MissionLevel
	MissionPrimarySkills
	MissionKillHero
	MissionKillCreature
	MissionArtifacts
	MissionArmy
	MissionResources
	MissionHero
	MissionPlayer
	MissionKeymaster
	MissionHOTAMulti
)

// HOTAMultiKind tags the two HOTA "multi" sub-missions.
type HOTAMultiKind byte

const (
	HOTAMultiHeroClass HOTAMultiKind = iota
	HOTAMultiReachDate
)

// Mission is the tagged condition payload of a Quest; only the fields
// relevant to Kind are populated.
type Mission struct {
	Kind MissionKind

	Level         uint32
	PrimarySkills PrimarySkillBonus
	HeroID        uint32
	CreatureID    uint32
	Artifacts     []uint8
	Army          []CreatureStackSlot
	Resources     ResourcePack
	HeroIdentity  uint8
	PlayerID      uint8

	HOTAMulti           HOTAMultiKind
	HOTAHeroClassBitmap []int
	HOTAReachDate       uint32
}

// Quest is the shared mission-plus-text encoding used by SeerHut and
// QuestGuard. Reward is only ever populated for a SeerHut quest: the
// shared encoding does not carry a reward for QuestGuard.
type Quest struct {
	Mission Mission

	LastDay int32

	ProposalText   string
	ProgressText   string
	CompletionText string

	Reward *Reward
}

// RewardKind tags a SeerHut's reward.
type RewardKind byte

const (
	RewardNone RewardKind = iota
	RewardExperience
	RewardManaPoints
	RewardMorale
	RewardLuck
	RewardResources
	RewardPrimarySkill
	RewardSecondarySkill
	RewardArtifact
	RewardSpell
	RewardCreature
)

// Reward is the tagged payload a SeerHut grants on quest completion.
type Reward struct {
	Kind RewardKind

	Amount         uint32
	ManaDiff       int32
	Morale         int8
	Luck           int8
	Resource       ResourcePack
	PrimarySkill   PrimarySkillBonus
	SecondarySkill SecondarySkillGrant
	ArtifactID     uint32
	SpellID        uint32
	Creature       CreatureStackSlot
}

// SeerHutPayload is the payload for SeerHut: one quest before HOTA3,
// or a repeatable set of quests from HOTA3 onward. Each Quest carries
// its own Reward.
type SeerHutPayload struct {
	base

	Quest      *Quest
	Quests     []Quest
	Repeatable []Quest
}

// QuestGuardPayload is the payload for QuestGuard.
type QuestGuardPayload struct {
	base

	Quest Quest
}

// WitchHutPayload is the payload for WitchHut.
type WitchHutPayload struct {
	base

	// AllowedSkills is nil for pre-AB formats, which grant every skill.
	AllowedSkills []int
}

// ScholarBonusKind tags what a Scholar teaches.
type ScholarBonusKind byte

// ScholarPayload is the payload for Scholar.
type ScholarPayload struct {
	base

	BonusKind ScholarBonusKind
	BonusID   uint8
}
