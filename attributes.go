// This file is part of VidExt.
//
// VidExt is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VidExt is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VidExt.  If not, see <https://www.gnu.org/licenses/>.

package vidext

import "fmt"

// GLAttr identifies a rendering context attribute. The ordinal values form a
// contiguous sequence beginning at one and are part of the binary contract
// with the emulation core. They must not be renumbered.
type GLAttr int

// List of valid GLAttr values.
const (
	DoubleBuffer GLAttr = iota + 1
	BufferSize
	DepthSize
	RedSize
	GreenSize
	BlueSize
	AlphaSize
	SwapControl
)

func (attr GLAttr) String() string {
	switch attr {
	case DoubleBuffer:
		return "double buffer"
	case BufferSize:
		return "buffer size"
	case DepthSize:
		return "depth size"
	case RedSize:
		return "red size"
	case GreenSize:
		return "green size"
	case BlueSize:
		return "blue size"
	case AlphaSize:
		return "alpha size"
	case SwapControl:
		return "swap control"
	}
	return fmt.Sprintf("unknown attribute (%d)", int(attr))
}

func (attr GLAttr) valid() bool {
	return attr >= DoubleBuffer && attr <= SwapControl
}

// Registry records the rendering context attributes requested by the emulation
// core and the values actually honoured by the host.
//
// Requested and resolved values are deliberately kept in two separate
// mappings. Values set with SetAttribute() before surface creation are
// requests; during SetVideoMode() the host consults the requests and writes
// back what it could honour with Resolve(). GetAttribute() only ever reports
// resolved values.
//
// On Quit() the resolved values are cleared but requested values are
// retained. A caller that sets its attributes, fails to set a video mode and
// quits can try again without re-stating its requests.
//
// The Registry is not safe for concurrent use. It must only be accessed from
// the thread that owns the rendering context.
type Registry struct {
	requested map[GLAttr]int
	resolved  map[GLAttr]int
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{
		requested: make(map[GLAttr]int),
		resolved:  make(map[GLAttr]int),
	}
}

// SetAttribute records a requested value for the attribute. The request takes
// effect at the next surface creation.
func (reg *Registry) SetAttribute(attr GLAttr, value int) error {
	if !attr.valid() {
		return fmt.Errorf("set attribute: %w: %d", ErrInvalidAttribute, int(attr))
	}
	reg.requested[attr] = value
	return nil
}

// GetAttribute returns the resolved value for the attribute. The resolved
// value may differ from the requested value if the host negotiated a fallback
// during surface creation.
//
// Returns ErrAttributeUnavailable if no surface has been created since the
// registry was last cleared.
func (reg *Registry) GetAttribute(attr GLAttr) (int, error) {
	if !attr.valid() {
		return 0, fmt.Errorf("get attribute: %w: %d", ErrInvalidAttribute, int(attr))
	}
	v, ok := reg.resolved[attr]
	if !ok {
		return 0, fmt.Errorf("get attribute: %w: %s", ErrAttributeUnavailable, attr)
	}
	return v, nil
}

// Requested returns the requested value for the attribute, if one has been
// recorded. Used by drivers during surface creation.
func (reg *Registry) Requested(attr GLAttr) (int, bool) {
	v, ok := reg.requested[attr]
	return v, ok
}

// Resolve records the value the host actually honoured for the attribute.
// Called by drivers during surface creation and by the bridge when a swap
// interval changes.
func (reg *Registry) Resolve(attr GLAttr, value int) {
	reg.resolved[attr] = value
}

// ClearResolved invalidates all resolved values. Requested values are
// retained. Called on Quit() and immediately before a new surface is created.
func (reg *Registry) ClearResolved() {
	clear(reg.resolved)
}
