// This file is part of Patch2600.
//
// Patch2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Patch2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Patch2600.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter buffers the output of flag.FlagSet so that we can control when
// and where it is displayed.
type helpWriter struct {
	buffer []string
}

func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, string(p))
	return len(p), nil
}

// Clear the buffer.
func (hw *helpWriter) Clear() {
	hw.buffer = hw.buffer[:0]
}

// Help formats and prints the buffered flag defaults along with the list of
// available sub-modes and any additional help text.
func (hw *helpWriter) Help(output io.Writer, path string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	// the first entry in the buffer is the banner produced by the flag
	// package. replace it with one that names the mode path when there is one
	if len(hw.buffer) > 1 {
		if path != "" {
			output.Write([]byte(fmt.Sprintf("Usage of %s:\n", path)))
		} else {
			output.Write([]byte("Usage:\n"))
		}
		for i := 1; i < len(hw.buffer); i++ {
			output.Write([]byte(hw.buffer[i]))
		}
	} else if len(subModes) == 0 {
		output.Write([]byte("No help available\n"))
		return
	}

	if len(subModes) > 0 {
		output.Write([]byte(fmt.Sprintf("Available sub-modes: %s\n", strings.Join(subModes, " "))))
		output.Write([]byte(fmt.Sprintf("    default: %s\n", subModes[0])))
	}

	if additionalHelp != "" {
		output.Write([]byte(fmt.Sprintf("\n%s\n", additionalHelp)))
	}
}
