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

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog"
)

const (
	headerSize = 0x14

	xorTypeOld = 0x01 // Pro Tools 5-9
	xorTypeNew = 0x05 // Pro Tools 10-12

	oldMultiplier = 53
	newMultiplier = 11

	bitcodeLeader = 0x03
)

var bitcode = [2]byte{0x2F, 0x2B}

// Decrypt reverses the position-dependent XOR obfuscation applied to a raw
// session file, starting at byte 0x14. The first 0x14 bytes are copied
// verbatim. log is used for the delta-search trace only; pass
// zerolog.Nop() to silence it.
func Decrypt(raw []byte, log zerolog.Logger) ([]byte, error) {
	if len(raw) < headerSize {
		return nil, ErrFileTooSmall
	}

	out := make([]byte, len(raw))
	copy(out[:headerSize], raw[:headerSize])

	xorType := raw[0x12]
	xorValue := raw[0x13]

	delta, err := xorDelta(xorType, xorValue)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Uint8("xor_type", xorType).
		Uint8("xor_value", xorValue).
		Int8("xor_delta", delta).
		Msg("ptf: xor delta derived")

	var table [256]byte
	for k := range table {
		table[k] = byte((int16(k) * int16(delta)) & 0xFF)
	}

	for i := headerSize; i < len(raw); i++ {
		var k int
		if xorType == xorTypeOld {
			k = i & 0xFF
		} else {
			k = (i >> 12) & 0xFF
		}

		out[i] = raw[i] ^ table[k]
	}

	return out, nil
}

// xorDelta searches i in [0,255] for (i*multiplier)&0xFF == xorValue and
// returns the signed delta (positive for xorTypeOld, negated for
// xorTypeNew). Mirrors gen_xor_delta in decrypt.rs.
func xorDelta(xorType, xorValue byte) (int8, error) {
	var multiplier int
	var negative bool

	switch xorType {
	case xorTypeOld:
		multiplier = oldMultiplier
	case xorTypeNew:
		multiplier = newMultiplier
		negative = true
	default:
		return 0, fmt.Errorf("%w: %#x", ErrXORType, xorType)
	}

	for i := 0; i <= 0xFF; i++ {
		if byte((i*multiplier)&0xFF) == xorValue {
			if negative {
				return int8(-i), nil //nolint:gosec // i is bounded to [0,255] by the loop.
			}

			return int8(i), nil //nolint:gosec // i is bounded to [0,255] by the loop.
		}
	}

	return 0, fmt.Errorf("%w: no delta found for value %#x", ErrXORType, xorValue)
}

// CheckBitCode reports whether decrypted begins with the BitCode leader
// byte or contains the two-byte BitCode sequence anywhere.
func CheckBitCode(decrypted []byte) bool {
	if len(decrypted) > 0 && decrypted[0] == bitcodeLeader {
		return true
	}

	return bytes.Index(decrypted, bitcode[:]) >= 0
}

// DetectEndianness reads byte 0x11 of decrypted and reports big-endian
// (true) for 0x01, little-endian (false) for 0x00. ok is false for any
// other value.
func DetectEndianness(decrypted []byte) (bigEndian, ok bool) {
	if len(decrypted) <= 0x11 {
		return false, false
	}

	switch decrypted[0x11] {
	case 0x01:
		return true, true
	case 0x00:
		return false, true
	default:
		return false, false
	}
}
