// This file contains the FormatTag enum, the top-level discriminator that
// selects which FormatProfile the rest of the decoder runs under.

package h3mcore

// FormatTag identifies the H3M feature level a map was authored for.
type FormatTag struct {
	Enum

	// ID as it appears on the wire (the first u32 of the file).
	ID uint32
}

// FormatTags is an enumeration of the recognized format tags.
var FormatTags = []*FormatTag{
	{Enum{"Restoration of Erathia"}, 0x0e},
	{Enum{"Armageddon's Blade"}, 0x15},
	{Enum{"Shadow of Death"}, 0x1c},
	{Enum{"Horn of the Abyss"}, 0x20},
	{Enum{"Wake of Gods"}, 0x33},
	{Enum{"VCMI"}, 0x64},
}

// Named format tags.
var (
	FormatROE  = FormatTags[0]
	FormatAB   = FormatTags[1]
	FormatSOD  = FormatTags[2]
	FormatHOTA = FormatTags[3]
	FormatWOG  = FormatTags[4]
	FormatVCMI = FormatTags[5]
)

// FormatTagByID returns the FormatTag for the given wire id.
// ok is false if id does not name a recognized format; the format tag is a
// mandatory enumerated field, so an unrecognized id is fatal to the caller.
func FormatTagByID(id uint32) (tag *FormatTag, ok bool) {
	for _, t := range FormatTags {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}
