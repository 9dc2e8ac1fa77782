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

package ptsession_test

import (
	"errors"
	"testing"

	ptsession "github.com/mycophonic/saprobe-ptsession"
	"github.com/mycophonic/saprobe-ptsession/internal/ptf"
)

// appendBlock appends a big-endian tagged block (z_mark, block_type, size,
// content_type) to buf. size is the content's byte length, matching the
// wire convention that content_type's own two bytes count as the first two
// bytes of content.
func appendBlock(buf []byte, blockType, contentType uint16, content []byte) []byte {
	size := uint32(len(content) + 2) //nolint:gosec // test fixture sizes are small.

	buf = append(buf, 0x5A, byte(blockType>>8), byte(blockType))
	buf = append(buf, byte(size>>24), byte(size>>16), byte(size>>8), byte(size))
	buf = append(buf, byte(contentType>>8), byte(contentType))

	return append(buf, content...)
}

func lengthPrefixed(s string) []byte {
	n := uint32(len(s)) //nolint:gosec // test fixture strings are short.
	out := []byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}

	return append(out, s...)
}

func putU32(buf []byte, at int, v uint32) {
	buf[at] = byte(v >> 24)
	buf[at+1] = byte(v >> 16)
	buf[at+2] = byte(v >> 8)
	buf[at+3] = byte(v)
}

// newUnencryptedFile builds a 0x14-byte control header whose xor_type/value
// pair resolves to a zero delta (an identity transform), so body can be
// written as plain bytes without reproducing the XOR table.
func newUnencryptedFile(body []byte) []byte {
	header := make([]byte, 0x14)
	header[0x00] = 0x03 // BitCode leader
	header[0x11] = 0x01 // big-endian
	header[0x12] = 0x01 // xor_type old
	header[0x13] = 0x00 // xor_value 0 -> delta 0

	return append(header, body...)
}

func TestDecodeMinimal(t *testing.T) {
	t.Parallel()

	// A single INFO_SampleRate block at 0x14. byte 0x1F (content index 2,
	// the sample rate's own leading byte) is 0, not a valid z_mark, so
	// version detection falls back to the raw offsets; byte 0x40 (content
	// index 0x23) carries the version.
	content := make([]byte, 40)
	putU32(content, 2, 48000)
	content[0x23] = 9

	body := appendBlock(nil, 0x01, ptf.ContentInfoSampleRate, content)

	raw := newUnencryptedFile(body)

	session, err := ptsession.Decode(raw, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if session.Version != 9 || session.SessionSampleRate != 48000 {
		t.Fatalf("unexpected session: %+v", session)
	}

	if len(session.AudioFiles) != 0 || len(session.AudioRegions) != 0 {
		t.Fatalf("expected no wavs/regions, got %+v", session)
	}

	want := "Pro Tools 9 Session: Samplerate = 48000\n0 wavs, 0 regions\n\n"
	if got := session.String(); got != want {
		t.Fatalf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestDecodeWithWavAndRegion(t *testing.T) {
	t.Parallel()

	headerContent := make([]byte, 40)
	putU32(headerContent, 2, 44100)
	headerContent[0x23] = 12

	headerBlock := appendBlock(nil, 0x01, ptf.ContentInfoSampleRate, headerContent)

	// One WAV_Names entry: "song.wav" with container type WAVE.
	entry := lengthPrefixed("song.wav")
	entry = append(entry, "WAVE"...)
	entry = append(entry, make([]byte, 5)...)

	namesContent := append(make([]byte, 9), entry...)
	namesBlock := appendBlock(nil, 0x10, ptf.ContentWAVNames, namesContent)

	wavListContent := make([]byte, 4)
	putU32(wavListContent, 0, 1)
	wavListContent = append(wavListContent, namesBlock...)

	wavListBlock := appendBlock(nil, 0x20, ptf.ContentWAVListFull, wavListContent)

	// One region referencing wav index 0. Three-point descriptor, 1-byte
	// widths throughout: skip(2), nibble-width bytes (start=1,len=1,
	// offset=1), then offset/length/start fields starting at base+5.
	name := lengthPrefixed("Verse")
	threePoint := []byte{
		0, 0, // skip
		0x10, 0x10, 0x10, // nibble widths: start_w, len_w, offset_w
		0x64, // offset = 100
		0x0A, // length = 10
		0x05, // start = 5
	}

	regionContent := append(make([]byte, 9), name...)
	regionContent = append(regionContent, threePoint...)

	regionBlock := appendBlock(nil, 0x30, ptf.ContentAudioRegionNameNumberV5, regionContent)
	regionBlock = append(regionBlock, 0, 0, 0, 0) // raw wav index = 0

	regionListBlock := appendBlock(nil, 0x31, ptf.ContentAudioRegionListV5, regionBlock)

	body := headerBlock
	body = append(body, wavListBlock...)
	body = append(body, regionListBlock...)

	raw := newUnencryptedFile(body)

	session, err := ptsession.Decode(raw, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(session.AudioFiles) != 1 || session.AudioFiles[0].FileName != "song.wav" {
		t.Fatalf("unexpected wavs: %+v", session.AudioFiles)
	}

	if len(session.AudioRegions) != 1 {
		t.Fatalf("unexpected regions: %+v", session.AudioRegions)
	}

	region := session.AudioRegions[0]
	if region.Name != "Verse" || region.Wav == nil || region.Wav.FileName != "song.wav" {
		t.Fatalf("region wav not resolved: %+v", region)
	}
}

func TestDecodeFileTooSmall(t *testing.T) {
	t.Parallel()

	_, err := ptsession.Decode(make([]byte, 5), nil)
	if !errors.Is(err, ptsession.ErrDecrypt) {
		t.Fatalf("expected ErrDecrypt, got %v", err)
	}
}

func TestDecodeBadXORType(t *testing.T) {
	t.Parallel()

	raw := make([]byte, 0x14)
	raw[0x12] = 0x02 // not a recognized xor_type

	_, err := ptsession.Decode(raw, nil)
	if !errors.Is(err, ptsession.ErrDecrypt) {
		t.Fatalf("expected ErrDecrypt, got %v", err)
	}
}

func TestDecodeBadEndianness(t *testing.T) {
	t.Parallel()

	header := make([]byte, 0x14)
	header[0x00] = 0x03
	header[0x11] = 0x02 // neither 0 nor 1
	header[0x12] = 0x01
	header[0x13] = 0x00

	_, err := ptsession.Decode(header, nil)
	if !errors.Is(err, ptsession.ErrEndianness) {
		t.Fatalf("expected ErrEndianness, got %v", err)
	}
}

func TestDecodeVersionExhausted(t *testing.T) {
	t.Parallel()

	raw := newUnencryptedFile(make([]byte, 0x40))

	_, err := ptsession.Decode(raw, nil)
	if !errors.Is(err, ptsession.ErrVersion) {
		t.Fatalf("expected ErrVersion, got %v", err)
	}
}

func TestDecodeMissingHeaderBlock(t *testing.T) {
	t.Parallel()

	// No valid z_mark anywhere, so no top-level blocks parse at all — the
	// header block ExtractSampleRate needs is simply absent.
	raw := newUnencryptedFile(make([]byte, 0x30))
	raw[0x40] = 5 // satisfies the raw-offset version fallback

	_, err := ptsession.Decode(raw, nil)
	if !errors.Is(err, ptsession.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
