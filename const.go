package sdat2img

const (
	// BlockSize is the fixed block size of the transfer list format. All
	// ranges and offsets are expressed in multiples of it.
	BlockSize = 4096

	// Supported transfer list versions
	MinVersion = 1
	MaxVersion = 4
)
