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

import "errors"

// Decryption and container parsing error sentinels. The root package wraps
// these into its own exported Err* sentinels so callers never import this
// package directly.
//
//revive:disable:exported
var (
	ErrFileTooSmall  = errors.New("ptf: file smaller than 0x14 bytes")
	ErrXORType       = errors.New("ptf: xor type not recognized")
	ErrVersion       = errors.New("ptf: could not determine session version")
	ErrNoHeaderBlock = errors.New("ptf: no INFO_SampleRate block found")
	ErrOutOfRange    = errors.New("ptf: read past buffer bounds")
	ErrInvalidBlock  = errors.New("ptf: invalid block header")
)
