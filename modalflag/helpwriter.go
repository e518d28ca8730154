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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter captures the output of flag.FlagSet so that it can be presented
// with sub-mode information when help is requested.
type helpWriter struct {
	buffer strings.Builder
}

func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buffer.Write(p)
}

func (hw *helpWriter) help(output io.Writer, path string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	if path != "" {
		fmt.Fprintf(output, "mode: %s\n", path)
	}

	flagHelp := hw.buffer.String()
	if flagHelp != "" {
		io.WriteString(output, flagHelp)
	}

	if len(subModes) > 0 {
		fmt.Fprintf(output, "sub-modes: %s (default: %s)\n",
			strings.ToLower(strings.Join(subModes, ", ")),
			strings.ToLower(subModes[0]))
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}

	hw.buffer.Reset()
}
