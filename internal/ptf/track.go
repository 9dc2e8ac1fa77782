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

const maxChannelsPerTrack = 8

// Track is a named channel strip carrying the regions placed on it.
type Track struct {
	Name    string   `json:"name"`
	Index   uint16   `json:"index"`
	Regions []Region `json:"regions"`
}

// ExtractTracks identifies track channels from AUDIO_Track_Name_Number
// blocks, then places regions onto them by walking the region-to-track map
// for the v8+ container shape. Placement assumes the Nth per-track entry
// under the map (counting from 0) belongs to the track whose Index is N,
// not to any name match; an entry with no such track is discarded. That
// ordinal assumption is load bearing in the source format and not
// something this package second guesses.
//
// Placing a region onto a track also overwrites that region's StartPos
// with the placement's start sample, so a region referenced by more than
// one placement ends up carrying whichever placement was processed last.
// That is a property of the format, not a bug to route around here.
func ExtractTracks(idx BlockIndex, r *Reader, regions []Region) ([]Track, error) {
	var tracks []Track

	var channelMap [maxChannelsPerTrack]uint16

	for _, b := range grandchildrenByName(idx.Tracks, ContentAudioTrackNameNumber) {
		r.Seek(b.Offset + 2)

		name, err := r.ReadLengthPrefixedString()
		if err != nil {
			return nil, err
		}

		r.Skip(1)

		numChannels, err := r.ReadU32()
		if err != nil {
			return nil, err
		}

		for i := 0; i < int(numChannels) && i < maxChannelsPerTrack; i++ {
			ch, cerr := r.ReadU16()
			if cerr != nil {
				return nil, cerr
			}

			channelMap[i] = ch

			if !hasTrackIndex(tracks, ch) {
				tracks = append(tracks, Track{Index: ch, Name: name})
			}
		}
	}

	for _, block := range idx.RegionToTrack {
		if block.ContentType != ContentRegionTrackFullMapV8 {
			// The pre-v8 AUDIO_Region_Track_Full_Map shape carries no
			// per-region placement data worth decoding; see the design
			// notes for why it's left unresolved.
			continue
		}

		count := 0

		for _, a := range ChildrenOf(block, ContentRegionTrackNameEntryV8) {
			for _, b := range ChildrenOf(a, ContentRegionTrackEntryV8) {
				if fadeOffset := b.Offset + 46; fadeOffset < r.Len() && r.Bytes()[fadeOffset] == 0x01 {
					continue
				}

				for _, c := range ChildrenOf(b, ContentRegionTrackSubEntryV8) {
					r.Seek(c.Offset + 4)

					rawIndex, err := r.ReadU32()
					if err != nil {
						return nil, err
					}

					r.Skip(5)

					start, err := r.ReadU32()
					if err != nil {
						return nil, err
					}

					trackIndex := uint16(count) //nolint:gosec // Track counts stay well under 65536 in practice.

					ti := findTrackIndex(tracks, trackIndex)
					if ti < 0 {
						continue
					}

					ri := findRegionIndex(regions, uint16(rawIndex)) //nolint:gosec // Region indices stay well under 65536 in practice.
					if ri < 0 {
						continue
					}

					regions[ri].StartPos = uint64(start)

					placed := regions[ri]
					if placed.Wav != nil {
						w := *placed.Wav
						placed.Wav = &w
					}

					tracks[ti].Regions = append(tracks[ti].Regions, placed)
				}
			}

			count++
		}
	}

	return tracks, nil
}

func grandchildrenByName(blocks []*Block, contentType uint16) []*Block {
	var out []*Block

	for _, b := range blocks {
		out = append(out, ChildrenOf(b, contentType)...)
	}

	return out
}

func hasTrackIndex(tracks []Track, index uint16) bool {
	return findTrackIndex(tracks, index) >= 0
}

func findTrackIndex(tracks []Track, index uint16) int {
	for i := range tracks {
		if tracks[i].Index == index {
			return i
		}
	}

	return -1
}

func findRegionIndex(regions []Region, index uint16) int {
	for i := range regions {
		if regions[i].Index == index {
			return i
		}
	}

	return -1
}
