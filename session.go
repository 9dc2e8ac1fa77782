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

// Package ptsession decodes Pro Tools session files (.ptf, .ptx) into a
// plain Go value: sample rate, audio files, regions, tracks, and markers.
// It reverses the position-dependent XOR obfuscation Pro Tools applies to
// the file and walks the resulting tagged-block container, the same way
// across Pro Tools 5 through 12.
package ptsession

import (
	"fmt"
	"strings"

	"github.com/mycophonic/saprobe-ptsession/internal/ptf"
)

// Session is a fully decoded Pro Tools session.
type Session struct {
	Version           uint8    `json:"version"`
	SessionSampleRate uint64   `json:"session_sample_rate"`
	AudioFiles        []Wav    `json:"audio_files"`
	AudioRegions      []Region `json:"audio_regions"`
	AudioTracks       []Track  `json:"audio_tracks"`
	Markers           []Marker `json:"markers"`
}

// Wav is a single audio file referenced by the session.
type Wav struct {
	FileName    string `json:"file_name"`
	Index       uint16 `json:"index"`
	PosAbsolute uint64 `json:"pos_absolute"`
	Len         uint64 `json:"len"`
}

// Region is a named span of audio within a Wav.
type Region struct {
	Name         string `json:"name"`
	Index        uint16 `json:"index"`
	StartPos     uint64 `json:"start_pos"`
	SampleOffset uint64 `json:"sample_offset"`
	Len          uint64 `json:"len"`
	Wav          *Wav   `json:"wav,omitempty"`
}

// Track is a named channel strip carrying the regions placed on it.
type Track struct {
	Name    string   `json:"name"`
	Index   uint16   `json:"index"`
	Regions []Region `json:"regions"`
}

// Marker is a named point in the session timeline.
type Marker struct {
	Name         string `json:"name"`
	Index        uint16 `json:"index"`
	Comment      string `json:"comment"`
	SampleOffset uint64 `json:"sample_offset"`
}

// String renders the session in the same summary layout Pro Tools session
// readers have traditionally used: a header line, then a section per
// non-empty collection, wavs first, then regions, then tracks carrying at
// least one region.
func (s *Session) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pro Tools %d Session: Samplerate = %d\n", s.Version, s.SessionSampleRate)
	fmt.Fprintf(&b, "%d wavs, %d regions\n\n", len(s.AudioFiles), len(s.AudioRegions))

	if len(s.AudioFiles) > 0 {
		b.WriteString("Audio file (WAV#) @ offset, length:\n")

		for _, wav := range s.AudioFiles {
			fmt.Fprintf(&b, "`%s`, w(%d) @ %d, %d\n", wav.FileName, wav.Index, wav.PosAbsolute, wav.Len)
		}

		b.WriteString("\n")
	}

	if len(s.AudioRegions) > 0 {
		b.WriteString("Region (Region#) (WAV#) @ into-sample, length:\n")

		for _, r := range s.AudioRegions {
			var wavIndex uint16
			if r.Wav != nil {
				wavIndex = r.Wav.Index
			}

			fmt.Fprintf(&b, "`%s`, r(%d), w(%d), @ %d, %d\n", r.Name, r.Index, wavIndex, r.SampleOffset, r.Len)
		}

		b.WriteString("\n")
	}

	if len(s.AudioTracks) > 0 {
		b.WriteString("Track name (Track#) (Region#) @ Absolute:\n")

		for _, t := range s.AudioTracks {
			if len(t.Regions) == 0 {
				continue
			}

			fmt.Fprintf(&b, "`%s` t(%d)", t.Name, t.Index)

			for _, r := range t.Regions {
				fmt.Fprintf(&b, " r(%d) @ %d", r.Index, r.SampleOffset)
			}

			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	return b.String()
}

func fromPtfWav(w ptf.Wav) Wav {
	return Wav{FileName: w.FileName, Index: w.Index, PosAbsolute: w.PosAbsolute, Len: w.Len}
}

func fromPtfRegion(r ptf.Region) Region {
	out := Region{
		Name:         r.Name,
		Index:        r.Index,
		StartPos:     r.StartPos,
		SampleOffset: r.SampleOffset,
		Len:          r.Len,
	}

	if r.Wav != nil {
		w := fromPtfWav(*r.Wav)
		out.Wav = &w
	}

	return out
}

func fromPtfTrack(t ptf.Track) Track {
	out := Track{Name: t.Name, Index: t.Index, Regions: make([]Region, len(t.Regions))}

	for i, r := range t.Regions {
		out.Regions[i] = fromPtfRegion(r)
	}

	return out
}

func fromPtfMarker(m ptf.Marker) Marker {
	return Marker{Name: m.Name, Index: m.Index, Comment: m.Comment, SampleOffset: m.SampleOffset}
}
