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

// Package performance contains helper functions relating to performance.
//
// RunProfiler() runs a function under the profiling machinery of the
// runtime/pprof package. Patch operations over large files are single pass
// but the builder in particular benefits from the occasional check.
package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jetsetilly/patch2600/curated"
)

// Profile is used to specify the type of profile to be generated.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0x00
	ProfileCPU  Profile = 0x01
	ProfileMem  Profile = 0x02
	ProfileAll  Profile = ProfileCPU | ProfileMem
)

// ParseProfileString converts a command line specification of profile types
// to a Profile value. Accepts a comma separated combination of "cpu", "mem",
// "all" and "none".
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone

	for _, t := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(t)) {
		case "":
		case "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			fallthrough
		case "memory":
			p |= ProfileMem
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf("performance: unrecognised profile type (%s)", t)
		}
	}

	return p, nil
}

// RunProfiler runs the run() function, surrounded by whatever profiling
// machinery the profile argument asks for. Profile files are named after the
// tag argument.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", tag))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", tag))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		// garbage collect before the heap profile is taken, the live
		// allocations are the interesting part
		runtime.GC()

		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}
