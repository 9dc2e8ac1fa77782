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

import "github.com/rs/zerolog"

// Config holds options for Load. The zero value is valid: Logger defaults
// to a no-op logger.
type Config struct {
	// Logger receives debug and warning traces from decryption, version
	// detection, and block parsing. Leave unset to disable logging.
	Logger zerolog.Logger
}

func (c *Config) logger() zerolog.Logger {
	if c == nil {
		return zerolog.Nop()
	}

	return c.Logger
}
