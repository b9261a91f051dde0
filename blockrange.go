package sdat2img

import (
	"strconv"
	"strings"
)

// BlockRange is a half-open interval [Begin, End) of blocks in the output
// image. Always End > Begin.
type BlockRange struct {
	Begin uint64
	End   uint64
}

// Blocks returns the number of blocks covered by the range.
func (r BlockRange) Blocks() uint64 { return r.End - r.Begin }

// Bytes returns the length of the range in bytes.
func (r BlockRange) Bytes() uint64 { return r.Blocks() * BlockSize }

// OffsetBytes returns the byte offset of the range's first block in the
// image.
func (r BlockRange) OffsetBytes() int64 { return int64(r.Begin) * BlockSize }

// ParseRangeSet decodes the "N,b0,e0,b1,e1,..." encoding used on transfer
// list command lines. The leading count N declares how many values follow
// and must be even, every pair forming one half-open block range. The pairs
// are not required to be sorted or disjoint.
func ParseRangeSet(s string) ([]BlockRange, error) {
	tokens := strings.Split(s, ",")
	nums := make([]uint64, len(tokens))
	for i, t := range tokens {
		n, err := strconv.ParseUint(t, 10, 64)
		if err != nil {
			return nil, InvalidRangeToken{Token: t}
		}
		nums[i] = n
	}
	if uint64(len(nums)) != nums[0]+1 {
		return nil, RangeCountMismatch{Declared: nums[0], Actual: uint64(len(nums) - 1)}
	}
	nums = nums[1:]
	if len(nums)%2 != 0 {
		return nil, OddRangeCount{Count: len(nums)}
	}
	ranges := make([]BlockRange, 0, len(nums)/2)
	for i := 0; i < len(nums); i += 2 {
		if nums[i+1] <= nums[i] {
			return nil, InvalidRange{Begin: nums[i], End: nums[i+1]}
		}
		ranges = append(ranges, BlockRange{Begin: nums[i], End: nums[i+1]})
	}
	return ranges, nil
}
