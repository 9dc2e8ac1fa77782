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

import "strings"

// Wav is a single audio file referenced by the session.
type Wav struct {
	FileName    string `json:"file_name"`
	Index       uint16 `json:"index"`
	PosAbsolute uint64 `json:"pos_absolute"`
	Len         uint64 `json:"len"`
}

// GrandchildrenOf returns, in document order, the children of blocks'
// children matching contentType whose parent (the direct child) matched
// via.
func GrandchildrenOf(blocks []*Block, via, contentType uint16) []*Block {
	var out []*Block

	for _, b := range blocks {
		for _, mid := range ChildrenOf(b, via) {
			out = append(out, ChildrenOf(mid, contentType)...)
		}
	}

	return out
}

// ExtractWavs walks every WAV_List_Full block's WAV_Names children to build
// the audio file table, then fills in each Wav's length from the matching
// WAV_Metadata/WAV_SampleRate_Size grandchild, in list order. version gates
// which container type strings are accepted, matching the filtering rules
// that changed at Pro Tools 10.
func ExtractWavs(idx BlockIndex, r *Reader, version uint8) ([]Wav, error) {
	var wavs []Wav

	for _, wavList := range idx.WavLists {
		r.Seek(wavList.Offset + 2)

		numWaves, err := r.ReadU32()
		if err != nil {
			return nil, err
		}

		for _, child := range ChildrenOf(wavList, ContentWAVNames) {
			r.Seek(child.Offset + 11)

			var n uint32

			for r.Position() < child.Offset+child.Size && n < numWaves {
				name, serr := r.ReadLengthPrefixedString()
				if serr != nil {
					return nil, serr
				}

				typeStart := r.Position()
				if typeStart+4 > r.Len() {
					return nil, ErrOutOfRange
				}

				wavType := string(r.Bytes()[typeStart : typeStart+4])
				r.Skip(9)

				if strings.Contains(name, ".grp") ||
					strings.Contains(name, "Audio Files") ||
					strings.Contains(name, "Fade Files") {
					continue
				}

				if version < 10 {
					if !containsAny(wavType, "WAVE", "EVAW", "AIFF", "FFIA") {
						continue
					}
				} else {
					if len(wavType) != 0 {
						if !containsAny(wavType, "WAVE", "EVAW", "AIFF", "FFIA") {
							continue
						}
					} else if !strings.Contains(name, ".wav") && !strings.Contains(name, ".aif") {
						continue
					}
				}

				wavs = append(wavs, Wav{Index: uint16(n), FileName: name}) //nolint:gosec // n is bounded by numWaves, a field width of 4 bytes in practice far below 65536.
				n++
			}
		}
	}

	sizeBlocks := GrandchildrenOf(idx.WavLists, ContentWAVMetadata, ContentWAVSampleRateSize)

	for i := range wavs {
		if i >= len(sizeBlocks) {
			break
		}

		r.Seek(sizeBlocks[i].Offset + 8)

		length, err := r.ReadU64()
		if err != nil {
			return nil, err
		}

		wavs[i].Len = length
	}

	return wavs, nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
