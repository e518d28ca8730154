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

import (
	"errors"
	"fmt"
)

// Status is the value returned by every operation in the function table. The
// emulation core may branch on the integer value of a Status so the values
// are frozen. New statuses may be added but existing values must never be
// renumbered.
type Status int

// List of Status values.
const (
	Success Status = iota
	NotInitialized
	AlreadyInitialized
	UnsupportedMode
	InvalidAttribute
	AttributeUnavailable
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case NotInitialized:
		return "not initialised"
	case AlreadyInitialized:
		return "already initialised"
	case UnsupportedMode:
		return "unsupported mode"
	case InvalidAttribute:
		return "invalid attribute"
	case AttributeUnavailable:
		return "attribute unavailable"
	}
	return fmt.Sprintf("unknown status (%d)", int(s))
}

// Sentinel errors for each failure Status. Bridge operations return errors
// wrapping one of these sentinels; the function table converts them back to
// Status values at the boundary with the emulation core.
var (
	ErrNotInitialized       = errors.New("not initialised")
	ErrAlreadyInitialized   = errors.New("already initialised")
	ErrUnsupportedMode      = errors.New("unsupported mode")
	ErrInvalidAttribute     = errors.New("invalid attribute")
	ErrAttributeUnavailable = errors.New("attribute unavailable")
)

// ToStatus converts an error returned by a Bridge operation to the Status
// value expected by the emulation core.
//
// Errors originating in this package always wrap one of the sentinel errors
// above. A non-nil error that wraps none of them can only have come from the
// host driver during surface creation or negotiation, so it is reported as
// UnsupportedMode.
func ToStatus(err error) Status {
	if err == nil {
		return Success
	}

	switch {
	case errors.Is(err, ErrNotInitialized):
		return NotInitialized
	case errors.Is(err, ErrAlreadyInitialized):
		return AlreadyInitialized
	case errors.Is(err, ErrInvalidAttribute):
		return InvalidAttribute
	case errors.Is(err, ErrAttributeUnavailable):
		return AttributeUnavailable
	}

	return UnsupportedMode
}
