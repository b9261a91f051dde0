package sdat2img

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// OpKind identifies a transfer list command.
type OpKind int

const (
	OpErase OpKind = iota
	OpNew
	OpZero
)

func (k OpKind) String() string {
	switch k {
	case OpErase:
		return "erase"
	case OpNew:
		return "new"
	case OpZero:
		return "zero"
	}
	return "unknown"
}

// OpKindFromString maps a command word from a transfer list line to its
// OpKind. Matching is exact, command words are lowercase in the format.
func OpKindFromString(s string) (OpKind, error) {
	switch s {
	case "erase":
		return OpErase, nil
	case "new":
		return OpNew, nil
	case "zero":
		return OpZero, nil
	}
	return 0, UnknownCommand{Command: s}
}

// Operation is a single command applied to one block range.
type Operation struct {
	Kind  OpKind
	Range BlockRange
}

// TransferList is the decoded content of a transfer list file. Operations
// are held grouped by kind. Only the relative order within the "new" group
// is significant, it determines how the sequential data stream is consumed.
type TransferList struct {
	// Version of the transfer list scheme, 1 through 4. The values map to
	// the Android release lines the format shipped with, see AndroidRelease.
	Version int

	// DeclaredBlocks is the producer's total new-block count from the second
	// header line. Informational only, the image size is derived from the
	// operations instead since producers have been known to miscompute it.
	DeclaredBlocks uint64

	// Raw stash hint headers present in version 2 and up, unparsed.
	BytesWrittenHint string
	StashHint        string

	eraseOps []BlockRange
	newOps   []BlockRange
	zeroOps  []BlockRange
}

// AndroidRelease maps a transfer list version to the Android release line
// that produces it.
func AndroidRelease(version int) string {
	switch version {
	case 1:
		return "Android 5.0"
	case 2:
		return "Android 5.1"
	case 3:
		return "Android 6.x"
	case 4:
		return "Android 7.0+"
	}
	return "unknown"
}

// TransferListFromReader parses a transfer list from r and returns a
// populated TransferList. Any grammar violation aborts the whole decode with
// a FormatError identifying the offending line.
func TransferListFromReader(r io.Reader) (TransferList, error) {
	var list TransferList
	s := bufio.NewScanner(r)
	line := 0
	next := func() (string, bool) {
		if !s.Scan() {
			return "", false
		}
		line++
		return s.Text(), true
	}

	// First line is the version
	text, ok := next()
	if !ok {
		if err := s.Err(); err != nil {
			return list, errors.Wrap(err, "reading transfer list")
		}
		return list, FormatError{Line: 1, Err: UnsupportedVersion{Token: "<EOF>"}}
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return list, FormatError{Line: line, Err: UnsupportedVersion{Token: text}}
	}
	if v < MinVersion || v > MaxVersion {
		return list, FormatError{Version: v, Line: line, Err: UnsupportedVersion{Version: v}}
	}
	list.Version = v
	Log.WithFields(logrus.Fields{"version": v, "release": AndroidRelease(v)}).Info("transfer list version detected")

	// Second line is the producer's total block count. Record it for display
	// but derive the real total from the operations below.
	if text, ok = next(); ok {
		if n, err := strconv.ParseUint(text, 10, 64); err == nil {
			list.DeclaredBlocks = n
		}
	}

	// Versions 2 and up carry two more header lines, a max-bytes-written
	// hint and a stash size. Neither matters for reconstruction.
	if v >= 2 {
		list.BytesWrittenHint, _ = next()
		list.StashHint, _ = next()
	}

	// Remaining lines are "<command> <rangeset>". Running out of lines here
	// is the normal end of the file.
	for {
		text, ok = next()
		if !ok {
			break
		}
		fields := strings.Split(text, " ")
		if len(fields) != 2 {
			return list, FormatError{Version: v, Line: line, Err: MalformedLine{Text: text}}
		}
		kind, err := OpKindFromString(fields[0])
		if err != nil {
			return list, FormatError{Version: v, Line: line, Err: err}
		}
		ranges, err := ParseRangeSet(fields[1])
		if err != nil {
			return list, FormatError{Version: v, Line: line, Err: err}
		}
		switch kind {
		case OpErase:
			list.eraseOps = append(list.eraseOps, ranges...)
		case OpNew:
			list.newOps = append(list.newOps, ranges...)
		case OpZero:
			list.zeroOps = append(list.zeroOps, ranges...)
		}
	}
	if err := s.Err(); err != nil {
		return list, errors.Wrap(err, "reading transfer list")
	}
	return list, nil
}

// Operations returns every operation grouped by kind, erase first, then new,
// then zero. Within each group the ranges appear in file order.
func (l *TransferList) Operations() []Operation {
	ops := make([]Operation, 0, l.Ops())
	for _, r := range l.eraseOps {
		ops = append(ops, Operation{Kind: OpErase, Range: r})
	}
	for _, r := range l.newOps {
		ops = append(ops, Operation{Kind: OpNew, Range: r})
	}
	for _, r := range l.zeroOps {
		ops = append(ops, Operation{Kind: OpZero, Range: r})
	}
	return ops
}

// Ops returns the total number of operations of all kinds.
func (l *TransferList) Ops() int {
	return len(l.eraseOps) + len(l.newOps) + len(l.zeroOps)
}

// MaxBlock returns the highest block index referenced by any operation of
// any kind. Erased and zeroed regions count toward the image size even when
// no data is ever written there.
func (l *TransferList) MaxBlock() uint64 {
	var max uint64
	for _, group := range [][]BlockRange{l.eraseOps, l.newOps, l.zeroOps} {
		for _, r := range group {
			if r.End > max {
				max = r.End
			}
		}
	}
	return max
}

// Length returns the size in bytes of the image the list describes.
func (l *TransferList) Length() int64 {
	return int64(l.MaxBlock()) * BlockSize
}

// NewBlocks returns the number of payload blocks the list consumes from the
// data stream.
func (l *TransferList) NewBlocks() uint64 {
	var n uint64
	for _, r := range l.newOps {
		n += r.Blocks()
	}
	return n
}
