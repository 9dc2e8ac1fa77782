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

// BlockIndex buckets top-level blocks by the role their content_type plays
// in the rest of the pipeline. Only top-level blocks are classified;
// everything beneath them is reached by walking Children from here.
type BlockIndex struct {
	Header        []*Block // INFO_SampleRate
	WavLists      []*Block // WAV_List_Full
	RegionToWav   []*Block // AUDIO_Region_List_v5, AUDIO_Region_List_v10
	Tracks        []*Block // AUDIO_Tracks
	RegionToTrack []*Block // AUDIO_Region_Track_Full_Map, AUDIO_Region_Track_Full_Map_v8
	Markers       []*Block // MARKER_List
}

// Classify buckets top-level blocks by content type.
func Classify(blocks []*Block) BlockIndex {
	var idx BlockIndex

	for _, b := range blocks {
		switch b.ContentType {
		case ContentInfoSampleRate:
			idx.Header = append(idx.Header, b)
		case ContentWAVListFull:
			idx.WavLists = append(idx.WavLists, b)
		case ContentAudioRegionListV5, ContentAudioRegionListV10:
			idx.RegionToWav = append(idx.RegionToWav, b)
		case ContentAudioTracks:
			idx.Tracks = append(idx.Tracks, b)
		case ContentAudioRegionTrackFullMap, ContentRegionTrackFullMapV8:
			idx.RegionToTrack = append(idx.RegionToTrack, b)
		case ContentMarkerList:
			idx.Markers = append(idx.Markers, b)
		}
	}

	return idx
}
