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

// ExtractSampleRate reads the session sample rate from the first
// INFO_SampleRate block found at the top level.
func ExtractSampleRate(idx BlockIndex, r *Reader) (uint64, error) {
	if len(idx.Header) == 0 {
		return 0, ErrNoHeaderBlock
	}

	r.Seek(idx.Header[0].Offset + 4)

	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}

	return uint64(v), nil
}
