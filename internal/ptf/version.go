/*
   Copyright Mycophonic.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package ptf

import "github.com/rs/zerolog"

// DetectVersion determines the Pro Tools major version that produced the
// session. It first tries to parse a block at 0x1F and read the version out
// of its content: an INFO_Version block (old sessions) carries the version
// as a u32 four bytes past the end of a length-prefixed string; an
// INFO_Path_of_Session block (new sessions) carries it 20 bytes into its
// content, offset by 2. A block that parses but carries any other content
// type yields ErrVersion.
//
// When that block can't be parsed at all, DetectVersion falls back to
// reading fixed raw byte offsets (0x40, 0x3D, 0x3A+2; the first whose raw
// byte is nonzero wins) that happen to hold the version in practice across
// the generations this package supports. This fallback is fragile by
// construction, not by accident: it's the only recourse left once the
// container itself won't parse.
func DetectVersion(r *Reader, log zerolog.Logger) (uint8, error) {
	block, err := ParseBlockAt(r, 0x1F, nil)
	if err == nil {
		switch block.ContentType {
		case ContentInfoVersion:
			r.Seek(block.Offset + 3)

			s, serr := r.ReadLengthPrefixedString()
			if serr != nil {
				return 0, serr
			}

			r.Seek(block.Offset + 3 + len(s) + 8)

			v, verr := r.ReadU32()
			if verr != nil {
				return 0, verr
			}

			return uint8(v), nil //nolint:gosec // Version numbers fit in a byte by construction.

		case ContentInfoPathOfSession:
			r.Seek(block.Offset + 20)

			v, verr := r.ReadU32()
			if verr != nil {
				return 0, verr
			}

			return uint8(2 + v), nil //nolint:gosec // Version numbers fit in a byte by construction.

		default:
			log.Warn().Uint16("content_type", block.ContentType).Msg("ptf: unrecognized version block content type")

			return 0, ErrVersion
		}
	}

	log.Warn().Err(err).Msg("ptf: could not parse version block, falling back to raw offsets")

	return detectVersionFallback(r.Bytes())
}

func detectVersionFallback(buf []byte) (uint8, error) {
	get := func(i int) byte {
		if i < 0 || i >= len(buf) {
			return 0
		}

		return buf[i]
	}

	version := get(0x40)
	if version == 0 {
		version = get(0x3D)
	}

	if version == 0 {
		if raw := get(0x3A); raw != 0 {
			version = raw + 2
		}
	}

	if version == 0 {
		return 0, ErrVersion
	}

	return version, nil
}
