/*
Package sdat2img rebuilds raw filesystem images from Android block-based OTA
payloads, a transfer list (system.transfer.list) paired with a block data
stream (system.new.dat).

The transfer list is a small line-oriented text format describing erase, new
and zero operations over ranges of 4096-byte blocks. Only "new" operations
carry payload, which is consumed strictly sequentially from the data stream
and written at each range's block offset in the output image.

See cmd/sdat2img for the command-line tool.
*/
package sdat2img
