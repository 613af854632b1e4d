// This file contains the placed-object model: a template reference
// plus a kind-specific payload.

package h3m

import (
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
	"github.com/rrowniak/tower-h3/h3m/h3mobj"
)

// Object is one placed instance of an ObjectTemplate on the map.
type Object struct {
	Position h3mcore.MapCoord

	// TemplateIndex is the index into Map.ObjectTemplates this object
	// was instantiated from.
	TemplateIndex uint32

	Type h3mobj.ObjectType
}
