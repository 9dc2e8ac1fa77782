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

// Region is a named span of audio within a Wav. StartPos is set here in
// terms of the wav's own position and is overwritten later, once per
// placement, as regions are assigned to tracks.
type Region struct {
	Name         string `json:"name"`
	Index        uint16 `json:"index"`
	StartPos     uint64 `json:"start_pos"`
	SampleOffset uint64 `json:"sample_offset"`
	Len          uint64 `json:"len"`
	Wav          *Wav   `json:"wav"`
}

// ExtractRegions walks every AUDIO_Region_List_v5/v10 block's region-name
// children into Regions, resolving each region's raw wav index against
// wavs to recover the file name. Regions are numbered sequentially across
// all region-list blocks in the order encountered, independent of the raw
// index stored on the wire.
func ExtractRegions(idx BlockIndex, r *Reader, wavs []Wav) ([]Region, error) {
	var regions []Region

	regionIndex := 0

	for _, block := range idx.RegionToWav {
		for _, b := range ChildrenOf(block, ContentAudioRegionNameNumberV5, ContentAudioRegionNameNumberV10) {
			r.Seek(b.Offset + 11)

			region, err := parseRegionInfo(r, b.Offset+b.Size)
			if err != nil {
				return nil, err
			}

			for _, wav := range wavs {
				if region.Wav != nil && region.Wav.Index == wav.Index {
					region.Wav.FileName = wav.FileName
					break
				}
			}

			region.Index = uint16(regionIndex) //nolint:gosec // Region counts stay well under 65536 in practice.
			regions = append(regions, region)
			regionIndex++
		}
	}

	return regions, nil
}

// parseRegionInfo reads a region's name and three-point descriptor from the
// current cursor, then its raw wav index from indexPos.
func parseRegionInfo(r *Reader, indexPos int) (Region, error) {
	name, err := r.ReadLengthPrefixedString()
	if err != nil {
		return Region{}, err
	}

	sampleOffset, start, length, err := r.ParseThreePoint()
	if err != nil {
		return Region{}, err
	}

	r.Seek(indexPos)

	rawIndex, err := r.ReadU32()
	if err != nil {
		return Region{}, err
	}

	wav := &Wav{
		Index:       uint16(rawIndex), //nolint:gosec // Wav indices stay well under 65536 in practice.
		PosAbsolute: start,
		Len:         length,
	}

	return Region{
		Name:         name,
		StartPos:     start,
		SampleOffset: sampleOffset,
		Len:          length,
		Wav:          wav,
	}, nil
}
