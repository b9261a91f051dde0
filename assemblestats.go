package sdat2img

// AssembleStats contains statistics about an image assembly, such as how
// many payload blocks were copied and how many commands carried no data.
type AssembleStats struct {
	BlocksWritten uint64 `json:"blocks-written"`
	BytesCopied   uint64 `json:"bytes-copied"`
	BlocksPadded  uint64 `json:"blocks-padded"`
	OpsSkipped    int    `json:"ops-skipped"`
	ImageSize     int64  `json:"image-size"`
}
