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

// Package ptf implements the PTF/PTX tagged-block container: decryption,
// the recursive block tree, version detection, and the semantic extractors
// that walk classified blocks into audio files, regions, tracks, and
// markers.
package ptf

// Content-type ("PTCD") tags identifying a block's semantic role. Values
// are reverse-engineered and must match the wire format exactly.
const (
	ContentInfoVersion             = 0x0003
	ContentInfoProductAndVersion   = 0x0030
	ContentWAVSampleRateSize       = 0x1001
	ContentWAVMetadata             = 0x1003
	ContentWAVListFull             = 0x1004
	ContentRegionNameNumber        = 0x1007
	ContentAudioRegionNameNumberV5 = 0x1008
	ContentAudioRegionListV5       = 0x100B
	ContentAudioRegionTrackEntry   = 0x100F
	ContentAudioRegionTrackMapEnts = 0x1011
	ContentAudioRegionTrackFullMap = 0x1012
	ContentAudioTrackNameNumber    = 0x1014
	ContentAudioTracks             = 0x1015
	ContentPluginEntry             = 0x1017
	ContentPluginFullList          = 0x1018
	ContentIOChannelEntry          = 0x1021
	ContentIOChannelList           = 0x1022
	ContentInfoSampleRate          = 0x1028
	ContentWAVNames                = 0x103A
	ContentRegionTrackSubEntryV8   = 0x104F
	ContentRegionTrackEntryV8      = 0x1050
	// ContentRegionTrackNameEntryV8 has no corresponding name in the
	// reverse-engineered tag table; it is matched by raw value only.
	ContentRegionTrackNameEntryV8  = 0x1052
	ContentRegionTrackFullMapV8    = 0x1054
	ContentMIDIRegionTrackEntry    = 0x1056
	ContentMIDIRegionTrackMapEnts  = 0x1057
	ContentMIDIRegionTrackFullMap  = 0x1058
	ContentMIDIEventsBlock         = 0x2000
	ContentMIDIRegionNameNumberV5  = 0x2001
	ContentMIDIRegionsMap          = 0x2002
	ContentInfoPathOfSession       = 0x2067
	ContentSnapsBlock              = 0x2511
	ContentMIDITrackFullList       = 0x2519
	ContentMIDITrackNameNumber     = 0x251A
	ContentCompoundRegionElement   = 0x2523
	ContentIORoute                 = 0x2602
	ContentIORoutingTable          = 0x2603
	ContentCompoundRegionGroup     = 0x2628
	ContentAudioRegionNameNumberV10 = 0x2629
	ContentAudioRegionListV10      = 0x262A
	ContentCompoundRegionFullMap   = 0x262C
	ContentMIDIRegionNameNumberV10 = 0x2633
	ContentMIDIRegionsMapV10       = 0x2634
	ContentMarkerList              = 0x271A
	ContentMarkerMetadata          = 0x2619
	ContentMarkerListFull          = 0x2030
	ContentMarkerListEntry         = 0x2077
)
