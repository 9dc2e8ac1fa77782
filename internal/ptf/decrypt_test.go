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

package ptf_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mycophonic/saprobe-ptsession/internal/ptf"
)

// xorEncode applies the same position-dependent xor table the decryptor
// reverses, so tests can build a ciphertext from known plaintext.
func xorEncode(t *testing.T, plain []byte, xorType byte, delta int8) []byte {
	t.Helper()

	out := make([]byte, len(plain))
	copy(out, plain)

	var table [256]byte
	for i := range table {
		table[i] = byte((int16(i) * int16(delta)) & 0xFF)
	}

	for i := 0x14; i < len(plain); i++ {
		var k int
		if xorType == 0x01 {
			k = i & 0xFF
		} else {
			k = (i >> 12) & 0xFF
		}

		out[i] = plain[i] ^ table[k]
	}

	return out
}

func TestDecryptRoundTripOldXOR(t *testing.T) {
	t.Parallel()

	plain := make([]byte, 40)
	for i := range plain {
		plain[i] = byte(i * 3)
	}

	plain[0x11] = 0x01 // big-endian marker, unrelated to xor but kept realistic
	plain[0x12] = 0x01 // xor_type old
	plain[0x13] = byte((7 * 53) & 0xFF)

	cipher := xorEncode(t, plain, 0x01, 7)

	got, err := ptf.Decrypt(cipher, zerolog.Nop())
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(got, plain) {
		t.Fatalf("decrypted mismatch:\n got  %v\n want %v", got, plain)
	}
}

func TestDecryptRoundTripNewXOR(t *testing.T) {
	t.Parallel()

	plain := make([]byte, 4200)
	for i := range plain {
		plain[i] = byte(i * 7)
	}

	plain[0x12] = 0x05 // xor_type new
	plain[0x13] = byte((9 * 11) & 0xFF)

	cipher := xorEncode(t, plain, 0x05, -9)

	got, err := ptf.Decrypt(cipher, zerolog.Nop())
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(got, plain) {
		t.Fatalf("decrypted mismatch at first diff")
	}
}

func TestDecryptTooSmall(t *testing.T) {
	t.Parallel()

	_, err := ptf.Decrypt(make([]byte, 10), zerolog.Nop())
	if !errors.Is(err, ptf.ErrFileTooSmall) {
		t.Fatalf("expected ErrFileTooSmall, got %v", err)
	}
}

func TestDecryptUnknownXORType(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 20)
	buf[0x12] = 0x02

	_, err := ptf.Decrypt(buf, zerolog.Nop())
	if !errors.Is(err, ptf.ErrXORType) {
		t.Fatalf("expected ErrXORType, got %v", err)
	}
}

func TestCheckBitCode(t *testing.T) {
	t.Parallel()

	if !ptf.CheckBitCode([]byte{0x03, 0x00}) {
		t.Error("leader byte should be recognized")
	}

	if !ptf.CheckBitCode([]byte{0x00, 0x2F, 0x2B, 0x00}) {
		t.Error("embedded bitcode sequence should be recognized")
	}

	if ptf.CheckBitCode([]byte{0x00, 0x00}) {
		t.Error("should not find bitcode in unrelated bytes")
	}
}

func TestDetectEndianness(t *testing.T) {
	t.Parallel()

	cases := []struct {
		buf       []byte
		wantBig   bool
		wantOK    bool
	}{
		{buf: append(make([]byte, 0x11), 0x01), wantBig: true, wantOK: true},
		{buf: append(make([]byte, 0x11), 0x00), wantBig: false, wantOK: true},
		{buf: append(make([]byte, 0x11), 0x02), wantBig: false, wantOK: false},
		{buf: make([]byte, 0x05), wantBig: false, wantOK: false},
	}

	for i, c := range cases {
		big, ok := ptf.DetectEndianness(c.buf)
		if big != c.wantBig || ok != c.wantOK {
			t.Errorf("case %d: got (%v, %v), want (%v, %v)", i, big, ok, c.wantBig, c.wantOK)
		}
	}
}
