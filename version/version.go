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

// Package version records the version of the VidExt project, gathered from
// the vcs information embedded at build time.
package version

import "runtime/debug"

// The name to use when referring to the application.
const ApplicationName = "VidExt"

// if number is empty then the project was not built from a release tag
var number string

// revision contains the vcs revision. if the source had been modified but not
// committed at build time the revision is suffixed with "+dirty"
var revision string

// version contains the version string reported to the user
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release version. If release is true then the revision
// information should be used sparingly.
func Version() (string, string, bool) {
	return version, revision, version == number && number != ""
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if number != "" {
		version = number
	} else if vcs {
		version = "unreleased"
	} else {
		// no version number and no vcs information. this can happen when
		// compiling/running with "go run ."
		version = "local"
	}

	if vcsRevision != "" {
		revision = vcsRevision
		if vcsModified {
			revision += "+dirty"
		}
	}
}
