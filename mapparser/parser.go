/*

Package mapparser implements decoding of the Heroes of Might and Magic III
.h3m scenario format into the github.com/rrowniak/tower-h3/h3m domain
model.

The package is safe for concurrent use: a parse owns its own InputStream
over an independent byte slice, and FormatProfile is a pure function of
its inputs.

*/
package mapparser

import (
	"fmt"
	"os"
	"runtime"

	"github.com/rrowniak/tower-h3/h3m"
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
	"github.com/rrowniak/tower-h3/h3merr"
	"github.com/rrowniak/tower-h3/h3mlog"
	"github.com/rrowniak/tower-h3/mapparser/mapdecoder"
)

// Config holds parser configuration.
type Config struct {
	// Debug mirrors the teacher parser's Config.Debug knob. The decoder
	// does not read it, and the returned Map carries no raw bytes.
	Debug bool

	_ struct{} // To prevent unkeyed literals
}

// ParseFile reads and decodes an H3M file, transparently undoing a
// leading gzip wrapper.
func ParseFile(name string) (*h3m.Map, error) {
	return ParseFileConfig(name, Config{})
}

// ParseFileConfig reads and decodes an H3M file using cfg.
func ParseFileConfig(name string, cfg Config) (*h3m.Map, error) {
	stat, err := os.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, h3merr.ErrNotFound
		}
		return nil, h3merr.Io("stat", err)
	}
	if stat.IsDir() {
		return nil, h3merr.ErrNotAFile
	}

	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, h3merr.Io("read", err)
	}

	return ParseConfig(raw, cfg)
}

// Parse decodes an H3M byte slice, transparently undoing a leading gzip
// wrapper.
func Parse(data []byte) (*h3m.Map, error) {
	return ParseConfig(data, Config{})
}

// ParseConfig decodes an H3M byte slice using cfg.
func ParseConfig(data []byte, cfg Config) (*h3m.Map, error) {
	raw, err := mapdecoder.Decode(data)
	if err != nil {
		return nil, err
	}
	return parseProtected(raw, cfg)
}

// parseProtected calls parse, converting any panic raised by InputStream
// or a structured decode check into a h3merr error. Input is untrusted;
// this also protects against implementation bugs in the section decoder.
func parseProtected(raw []byte, cfg Config) (m *h3m.Map, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case shortRead:
				err = h3merr.ShortRead(v.where)
			case decodeFail:
				err = h3merr.Decode(v.where, v.why)
			default:
				buf := make([]byte, 2000)
				n := runtime.Stack(buf, false)
				h3mlog.Error("mapparser: unexpected panic",
					h3mlog.F("panic", fmt.Sprint(r)),
					h3mlog.F("stack", string(buf[:n])))
				err = h3merr.Decode("internal", fmt.Sprint(r))
			}
		}
	}()

	return decodeMap(raw, cfg)
}

// decodeMap runs the section-by-section decode described in the H3M
// wire format contract.
func decodeMap(raw []byte, cfg Config) (*h3m.Map, error) {
	s := NewInputStream(raw)

	tag, mirrorMap, arenaMap, profile := readFormatTagAndProfile(s)

	m := &h3m.Map{}
	m.Info = readInfo(s, profile, tag, mirrorMap, arenaMap)
	m.Players = readPlayers(s, profile)
	m.WinLoss = readWinLoss(s, profile)
	m.Teams = readTeamInfo(s)
	m.HeroesDef = readHeroesDef(s, profile)
	m.Options = readMapOptions(s, profile)
	m.AllowedArtifacts = readAllowedArtifacts(s, profile)
	m.AllowedSpells = readAllowedSpells(s, profile)
	m.Rumors = readRumors(s)
	m.PredefinedHeroes = readPredefinedHeroes(s, profile)
	m.Terrain = readTerrain(s, m.Info)
	m.ObjectTemplates = readObjectTemplates(s)
	m.Objects = readObjects(s, profile, m.ObjectTemplates)
	m.Events = nil // see SPEC_FULL.md open questions: wire layout not implemented upstream

	return m, nil
}

// readFormatTagAndProfile decodes step 1: the format tag and any HOTA
// sub-version fields, and builds the FormatProfile everything else reads
// through.
func readFormatTagAndProfile(s *InputStream) (tag *h3mcore.FormatTag, mirrorMap, arenaMap bool, profile *FormatProfile) {
	const where = "format"

	id := s.U32(where)
	var ok bool
	tag, ok = h3mcore.FormatTagByID(id)
	if !ok {
		s.fail(where, "unknown format tag")
	}
	if tag.ID == h3mcore.FormatVCMI.ID {
		s.fail(where, "VCMI not supported")
	}

	var subVersion uint32
	if tag.ID == h3mcore.FormatHOTA.ID {
		subVersion = s.U32(where)
		if subVersion > 0 {
			mirrorMap = s.Bool(where)
			arenaMap = s.Bool(where)
		}
		if subVersion > 1 {
			s.U32(where) // observed constant 12, discarded
		}
	}

	profile = NewFormatProfile(tag, subVersion)
	return
}
