package sdat2img

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// ImageWriter is the destination an image is assembled into. Payload lands
// at arbitrary block offsets so the sink must support random-access writes,
// and the final Truncate is what establishes the image size. *os.File
// implements it.
type ImageWriter interface {
	io.WriterAt
	Truncate(size int64) error
}

// AssembleImage replays the operations of a decoded transfer list, copying
// the payload for every "new" range from data into out. The data stream is
// read strictly sequentially, one block at a time, while the output is
// written at each range's own block offset, so ranges may arrive in any
// order. erase and zero operations consume nothing and write nothing. The
// output is truncated (or extended) to the final image size last, leaving
// regions never covered by a "new" range all zeros.
//
// A short read on the last block of the stream is zero-padded to a full
// block. A stream that runs out with whole blocks still owed fails with
// DataShortRead. pb can be nil to disable progress reporting.
//
// Any error aborts the run and the output must be considered invalid.
func AssembleImage(ctx context.Context, list TransferList, data io.Reader, out ImageWriter, pb ProgressBar) (*AssembleStats, error) {
	ops := list.Operations()
	if len(ops) == 0 {
		return nil, NoOperations{}
	}

	// Setup and start the progressbar if any
	if pb != nil {
		pb.SetTotal(int(list.NewBlocks()))
		pb.Start()
		defer pb.Finish()
	}

	stats := &AssembleStats{ImageSize: list.Length()}
	buf := make([]byte, BlockSize)
	for _, op := range ops {
		// See if we're meant to stop
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}
		if op.Kind != OpNew {
			Log.WithFields(logrus.Fields{"op": op.Kind.String(), "blocks": op.Range.Blocks()}).Debug("skipping command")
			stats.OpsSkipped++
			continue
		}
		Log.WithFields(logrus.Fields{"blocks": op.Range.Blocks(), "block": op.Range.Begin}).Info("copying blocks")
		offset := op.Range.OffsetBytes()
		for i := uint64(0); i < op.Range.Blocks(); i++ {
			n, err := io.ReadFull(data, buf)
			switch err {
			case nil:
			case io.ErrUnexpectedEOF:
				// Partial final block, pad it out with zeros
				for j := n; j < BlockSize; j++ {
					buf[j] = 0
				}
				stats.BlocksPadded++
			case io.EOF:
				return stats, DataShortRead{Range: op.Range, Wanted: op.Range.Blocks(), Got: i}
			default:
				return stats, err
			}
			if _, err := out.WriteAt(buf, offset); err != nil {
				return stats, err
			}
			offset += BlockSize
			stats.BlocksWritten++
			stats.BytesCopied += uint64(n)
			if pb != nil {
				pb.Add(1)
			}
		}
	}

	// Size the image by the highest referenced block, truncating any
	// over-allocation or padding a sparse tail that was never written
	if err := out.Truncate(list.Length()); err != nil {
		return stats, err
	}
	return stats, nil
}
