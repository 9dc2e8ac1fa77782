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

package ptsession

import (
	"errors"
	"fmt"
	"os"

	"github.com/mycophonic/saprobe-ptsession/internal/ptf"
)

// Load reads and decodes a Pro Tools session file. cfg may be nil to use
// the default configuration (no logging).
func Load(path string, cfg *Config) (*Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return Decode(raw, cfg)
}

// Decode decodes an in-memory session file. It is the core of Load, split
// out so callers that already have the bytes (embedded assets, network
// fetches, tests) don't need a filesystem round trip.
func Decode(raw []byte, cfg *Config) (*Session, error) {
	log := cfg.logger()

	decrypted, err := ptf.Decrypt(raw, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	log.Debug().Msg("ptsession: bitcode check")

	if !ptf.CheckBitCode(decrypted) {
		return nil, ErrBitCode
	}

	log.Debug().Msg("ptsession: parsing endianness")

	bigEndian, ok := ptf.DetectEndianness(decrypted)
	if !ok {
		return nil, ErrEndianness
	}

	r := ptf.NewReader(decrypted, bigEndian)

	log.Debug().Msg("ptsession: parsing version")

	version, err := ptf.DetectVersion(r, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVersion, err)
	}

	log.Debug().Msg("ptsession: parsing blocks")

	blocks := ptf.ParseTopLevel(r)
	idx := ptf.Classify(blocks)

	log.Debug().Msg("ptsession: parsing header")

	sampleRate, err := ptf.ExtractSampleRate(idx, r)
	if err != nil {
		if errors.Is(err, ptf.ErrNoHeaderBlock) {
			return nil, ErrParse
		}

		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	log.Debug().Msg("ptsession: parsing audio files")

	wavs, err := ptf.ExtractWavs(idx, r, version)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	log.Debug().Msg("ptsession: parsing audio regions")

	regions, err := ptf.ExtractRegions(idx, r, wavs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	log.Debug().Msg("ptsession: parsing audio tracks")

	tracks, err := ptf.ExtractTracks(idx, r, regions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	log.Debug().Msg("ptsession: parsing markers")

	markers, err := ptf.ExtractMarkers(idx, r, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	session := &Session{
		Version:           version,
		SessionSampleRate: sampleRate,
		AudioFiles:        make([]Wav, len(wavs)),
		AudioRegions:      make([]Region, len(regions)),
		AudioTracks:       make([]Track, len(tracks)),
		Markers:           make([]Marker, len(markers)),
	}

	for i, w := range wavs {
		session.AudioFiles[i] = fromPtfWav(w)
	}

	for i, reg := range regions {
		session.AudioRegions[i] = fromPtfRegion(reg)
	}

	for i, t := range tracks {
		session.AudioTracks[i] = fromPtfTrack(t)
	}

	for i, m := range markers {
		session.Markers[i] = fromPtfMarker(m)
	}

	return session, nil
}
