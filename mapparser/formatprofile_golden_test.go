package mapparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rrowniak/tower-h3/h3m/h3mcore"
)

// formatProfileGoldenYAML is the §4.4 format-delta table, authored as data
// instead of a Go literal so the golden values read as a spec table rather
// than test code.
const formatProfileGoldenYAML = `
- tag: roe
  sub_version: 0
  heroes_count: 128
  heroes_portraits: 130
  artifacts_count: 127
  factions: 8
  level_ab: false
  level_sod: false
- tag: ab
  sub_version: 0
  heroes_count: 156
  heroes_portraits: 159
  artifacts_count: 129
  factions: 9
  level_ab: true
  level_sod: false
- tag: sod
  sub_version: 0
  heroes_count: 156
  heroes_portraits: 163
  artifacts_count: 144
  factions: 9
  level_ab: true
  level_sod: true
- tag: wog
  sub_version: 0
  heroes_count: 156
  heroes_portraits: 163
  artifacts_count: 144
  factions: 9
  level_ab: true
  level_sod: true
- tag: hota
  sub_version: 0
  heroes_count: 178
  heroes_portraits: 186
  artifacts_count: 163
  factions: 10
  level_ab: true
  level_sod: true
- tag: hota
  sub_version: 1
  heroes_count: 178
  heroes_portraits: 188
  artifacts_count: 165
  factions: 10
  level_ab: true
  level_sod: true
- tag: hota
  sub_version: 3
  heroes_count: 179
  heroes_portraits: 188
  artifacts_count: 165
  factions: 10
  level_ab: true
  level_sod: true
`

type formatProfileGoldenCase struct {
	Tag             string `yaml:"tag"`
	SubVersion      uint32 `yaml:"sub_version"`
	HeroesCount     int    `yaml:"heroes_count"`
	HeroesPortraits int    `yaml:"heroes_portraits"`
	ArtifactsCount  int    `yaml:"artifacts_count"`
	Factions        int    `yaml:"factions"`
	LevelAB         bool   `yaml:"level_ab"`
	LevelSOD        bool   `yaml:"level_sod"`
}

var formatProfileGoldenTags = map[string]*h3mcore.FormatTag{
	"roe":  h3mcore.FormatROE,
	"ab":   h3mcore.FormatAB,
	"sod":  h3mcore.FormatSOD,
	"wog":  h3mcore.FormatWOG,
	"hota": h3mcore.FormatHOTA,
}

func TestNewFormatProfile_goldenTable(t *testing.T) {
	var cases []formatProfileGoldenCase
	require.NoError(t, yaml.Unmarshal([]byte(formatProfileGoldenYAML), &cases))
	require.NotEmpty(t, cases)

	for _, c := range cases {
		tag, ok := formatProfileGoldenTags[c.Tag]
		require.True(t, ok, "unknown golden tag %q", c.Tag)

		p := NewFormatProfile(tag, c.SubVersion)
		assert.Equal(t, c.HeroesCount, p.HeroesCount, "%s/%d heroes_count", c.Tag, c.SubVersion)
		assert.Equal(t, c.HeroesPortraits, p.HeroesPortraits, "%s/%d heroes_portraits", c.Tag, c.SubVersion)
		assert.Equal(t, c.ArtifactsCount, p.ArtifactsCount, "%s/%d artifacts_count", c.Tag, c.SubVersion)
		assert.Equal(t, c.Factions, len(p.Factions), "%s/%d factions", c.Tag, c.SubVersion)
		assert.Equal(t, c.LevelAB, p.LevelAB, "%s/%d level_ab", c.Tag, c.SubVersion)
		assert.Equal(t, c.LevelSOD, p.LevelSOD, "%s/%d level_sod", c.Tag, c.SubVersion)
	}
}
