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

import "fmt"

const zMark = 0x5A

// Block is one node of the tagged-block container tree. Offset is the start
// of the block's content_type field, seven bytes past the block's own
// z_mark byte — not nine, even though the header reads a z_mark, a
// block_type, a size, and a content_type in sequence. The format treats
// content_type as the first two bytes of the content rather than as part of
// the fixed header, and every offset computed from a block (by this parser
// and by the extractors) is relative to that convention. Preserve it.
type Block struct {
	ZMark       byte
	BlockType   uint16
	Size        int
	ContentType uint16
	Offset      int
	Children    []*Block
}

// ParseBlockAt parses one block at an absolute position and recursively
// probes for children across its content: there is no child-count field, so
// every byte offset within the content is attempted as a block header, and
// whatever succeeds is accepted as a child. parent bounds how far children
// may extend; pass nil at the top level. On failure the reader's cursor is
// left where it was before the call.
func ParseBlockAt(r *Reader, pos int, parent *Block) (_ *Block, err error) {
	saved := r.Position()

	defer func() {
		if err != nil {
			r.Seek(saved)
		}
	}()

	max := r.Len()
	if parent != nil {
		max = parent.Size + parent.Offset
	}

	r.Seek(pos)

	mark, err := r.ReadU8()
	if err != nil {
		return nil, err
	}

	if mark != zMark {
		return nil, fmt.Errorf("%w: expected z_mark at %d", ErrInvalidBlock, pos)
	}

	blockType, err := r.ReadU16()
	if err != nil {
		return nil, err
	}

	size, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	contentType, err := r.ReadU16()
	if err != nil {
		return nil, err
	}

	block := &Block{
		ZMark:       mark,
		BlockType:   blockType,
		Size:        int(size),
		ContentType: contentType,
		Offset:      pos + 7,
	}

	if block.Size+block.Offset > max {
		return nil, fmt.Errorf("%w: block at %d exceeds parent bounds", ErrInvalidBlock, pos)
	}

	if blockType&0xFF00 != 0 {
		return nil, fmt.Errorf("%w: block type %#x at %d", ErrInvalidBlock, blockType, pos)
	}

	childJump := 0
	for i := 1; i < block.Size; {
		p := pos + i
		childJump = 0

		if child, cerr := ParseBlockAt(r, p, block); cerr == nil {
			childJump = child.Size + 7
			block.Children = append(block.Children, child)
		}

		if childJump > 0 {
			i += childJump
		} else {
			i++
		}
	}

	return block, nil
}

// ParseTopLevel walks the container from byte 0x14, the first byte after
// the unencrypted file header, collecting every top-level block it can
// parse. It stops at the first block it cannot parse and returns whatever
// it has already collected — a truncated or corrupt tail does not
// invalidate blocks already found.
func ParseTopLevel(r *Reader) []*Block {
	var blocks []*Block

	for i := headerSize; i < r.Len(); {
		block, err := ParseBlockAt(r, i, nil)
		if err != nil {
			break
		}

		blocks = append(blocks, block)

		if block.Size > 0 {
			i += block.Size + 7
		} else {
			i++
		}
	}

	return blocks
}

// ChildrenOf returns block's direct children whose content type matches any
// of wanted.
func ChildrenOf(block *Block, wanted ...uint16) []*Block {
	var out []*Block

	for _, c := range block.Children {
		for _, w := range wanted {
			if c.ContentType == w {
				out = append(out, c)
				break
			}
		}
	}

	return out
}
