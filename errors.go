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

import "errors"

// Public sentinel errors for consumer error matching.
var (
	// ErrDecrypt indicates the file could not be decrypted: it is smaller
	// than the unencrypted header, or its xor_type byte is unrecognized.
	ErrDecrypt = errors.New("decrypt failed")

	// ErrBitCode indicates the decrypted bytes don't carry a recognizable
	// Pro Tools BitCode marker; the input is probably not a session file.
	ErrBitCode = errors.New("bitcode not found")

	// ErrEndianness indicates the endianness byte at 0x11 was neither 0
	// nor 1.
	ErrEndianness = errors.New("invalid endianness byte")

	// ErrVersion indicates the Pro Tools version could not be determined
	// from the version block or any of its raw-offset fallbacks.
	ErrVersion = errors.New("version detection failed")

	// ErrParse indicates the block tree parsed but a required block
	// (currently, the sample rate header) was missing.
	ErrParse = errors.New("parse failed")

	// ErrIO indicates a read past the bounds of the decrypted buffer,
	// typically from a truncated or corrupted file.
	ErrIO = errors.New("io error")
)
