package sdat2img

import "fmt"

// FormatError is returned for any transfer list grammar violation. It wraps
// the specific violation and records where in the file it happened. The
// version is 0 if the error occurred before the version header was read.
type FormatError struct {
	Version int
	Line    int
	Err     error
}

func (e FormatError) Error() string {
	return fmt.Sprintf("transfer list line %d: %s", e.Line, e.Err)
}

func (e FormatError) Unwrap() error { return e.Err }

// UnsupportedVersion means the first line declared a version this
// implementation doesn't know. Token holds the raw line if it wasn't
// numeric at all.
type UnsupportedVersion struct {
	Version int
	Token   string
}

func (e UnsupportedVersion) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("unsupported transfer list version %q", e.Token)
	}
	return fmt.Sprintf("unsupported transfer list version %d", e.Version)
}

// UnknownCommand is returned for a command word other than erase, new or zero
type UnknownCommand struct {
	Command string
}

func (e UnknownCommand) Error() string {
	return fmt.Sprintf("unknown command %q", e.Command)
}

// MalformedLine means a command line didn't split into exactly a command word
// and a rangeset
type MalformedLine struct {
	Text string
}

func (e MalformedLine) Error() string {
	return fmt.Sprintf("expected '<command> <rangeset>', got %q", e.Text)
}

// InvalidRangeToken means a rangeset element failed to parse as a
// non-negative integer
type InvalidRangeToken struct {
	Token string
}

func (e InvalidRangeToken) Error() string {
	return fmt.Sprintf("invalid rangeset value %q", e.Token)
}

// RangeCountMismatch means the leading count of a rangeset doesn't equal the
// number of values that follow it
type RangeCountMismatch struct {
	Declared uint64
	Actual   uint64
}

func (e RangeCountMismatch) Error() string {
	return fmt.Sprintf("rangeset declares %d values but carries %d", e.Declared, e.Actual)
}

// OddRangeCount means a rangeset holds an odd number of values and can't be
// split into (begin, end) pairs
type OddRangeCount struct {
	Count int
}

func (e OddRangeCount) Error() string {
	return fmt.Sprintf("rangeset length %d is not even", e.Count)
}

// InvalidRange means a rangeset pair doesn't describe a non-empty half-open
// interval
type InvalidRange struct {
	Begin uint64
	End   uint64
}

func (e InvalidRange) Error() string {
	return fmt.Sprintf("block range [%d,%d) is empty or reversed", e.Begin, e.End)
}

// NoOperations is returned when a transfer list holds no operations at all,
// leaving nothing to size the output image by
type NoOperations struct{}

func (e NoOperations) Error() string { return "transfer list contains no operations" }

// DataShortRead means the data stream ran out while whole blocks of a "new"
// operation were still owed. Wanted and Got count blocks of the failing range.
type DataShortRead struct {
	Range  BlockRange
	Wanted uint64
	Got    uint64
}

func (e DataShortRead) Error() string {
	return fmt.Sprintf("data stream exhausted copying range [%d,%d), got %d of %d blocks",
		e.Range.Begin, e.Range.End, e.Got, e.Wanted)
}
