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

// Marker is a named point in the session timeline.
type Marker struct {
	Name         string `json:"name"`
	Index        uint16 `json:"index"`
	Comment      string `json:"comment"`
	SampleOffset uint64 `json:"sample_offset"`
}

// ExtractMarkers walks MARKER_List_Full -> MARKER_List_Entry blocks into
// Markers. The comment string that trails each entry is not at a fixed
// offset, so its position is found by scanning forward for the next 0x01
// byte past the sample offset and assuming the comment starts five bytes
// later. That scan has no anchor besides "no other 0x01 byte appears
// first" — it is fragile by construction and preserved as such; log
// traces the scan distance each time it fires.
func ExtractMarkers(idx BlockIndex, r *Reader, log zerolog.Logger) ([]Marker, error) {
	var markers []Marker

	for _, entry := range GrandchildrenOf(idx.Markers, ContentMarkerListFull, ContentMarkerListEntry) {
		r.Seek(entry.Offset + 2)

		index, err := r.ReadU16()
		if err != nil {
			return nil, err
		}

		r.Skip(4)

		name, err := r.ReadLengthPrefixedString()
		if err != nil {
			return nil, err
		}

		sampleOffset, err := r.ReadU32()
		if err != nil {
			return nil, err
		}

		scanStart := r.Position()
		pos := scanStart

		for {
			b, berr := r.ReadU8()
			if berr != nil {
				return nil, berr
			}

			if b == 0x01 {
				pos += 5
				break
			}

			pos++
		}

		log.Trace().
			Uint16("marker_index", index).
			Int("scan_bytes", pos-5-scanStart).
			Msg("ptf: marker comment scan located 0x01")

		r.Seek(pos)

		comment, err := r.ReadLengthPrefixedString()
		if err != nil {
			return nil, err
		}

		markers = append(markers, Marker{
			Index:        index,
			Name:         name,
			SampleOffset: uint64(sampleOffset),
			Comment:      comment,
		})
	}

	return markers, nil
}
