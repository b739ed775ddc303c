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

package romloader

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/patch2600/archivefs"
	"github.com/jetsetilly/patch2600/curated"
	"github.com/jetsetilly/patch2600/digest"
	"github.com/jetsetilly/patch2600/logger"
)

// Loader is used to specify a file (ROM or patch) to be read whole into
// memory.
type Loader struct {
	// filename of file to load. can also be an HTTP url
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will return
	// immediately if the data is already present
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename, with the
// directory and file extension removed.
func (ld Loader) ShortName() string {
	sn := path.Base(ld.Filename)
	return strings.TrimSuffix(sn, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the file data into memory. Loader filenames with a valid scheme will
// use that method to load the data. Currently supported schemes are HTTP and
// local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		// archivefs allows the filename to refer to a file inside a zip
		// archive
		r, _, err := archivefs.Open(ld.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		if c, ok := r.(io.Closer); ok {
			defer c.Close()
		}

		ld.Data, err = io.ReadAll(r)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash
	hash := digest.SHA1(ld.Data)

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("romloader: %v", "unexpected hash value")
	}

	ld.Hash = hash

	logger.Logf(logger.Allow, "romloader", "%s: %d bytes (sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}

// Save data to the named file. The counterpart of Load() for the output of a
// patch operation. Any existing file is replaced.
func Save(filename string, data []byte) error {
	err := os.WriteFile(filename, data, 0644)
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}
	logger.Logf(logger.Allow, "romloader", "%s: %d bytes written", filename, len(data))
	return nil
}
