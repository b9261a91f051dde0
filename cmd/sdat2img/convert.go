package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/folbricht/tempfile"
	"github.com/sdatutils/sdat2img"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const defaultOutput = "system.img"

type convertOptions struct {
	force      bool
	printStats bool
}

func newConvertCommand(ctx context.Context) *cobra.Command {
	var opt convertOptions

	cmd := &cobra.Command{
		Use:   "convert <transfer_list> <new_dat> [<output>]",
		Short: "Rebuild a filesystem image from a transfer list and its data stream",
		Long: `Reads a block update transfer list and replays its "new" commands against
the block data stream, producing the raw filesystem image the pair describes.
Compressed data streams are decompressed transparently based on their file
extension (.br, .gz, .zst). The image is written through a tempfile next to
the output and renamed into place on success, a failed run leaves no partial
image behind.

If you are lazy, the two inputs can instead be a directory and a file prefix,
in which case <prefix>.transfer.list and <prefix>.new.dat (falling back to
<prefix>.new.dat.br) are picked up from the directory and the output defaults
to <prefix>.img.`,
		Example: `  sdat2img convert system.transfer.list system.new.dat system.img
  sdat2img convert system.transfer.list system.new.dat.br
  sdat2img convert extracted/ system`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(ctx, opt, args)
		},
		SilenceUsage: true,
	}
	flags := cmd.Flags()
	flags.BoolVarP(&opt.force, "force", "f", false, "overwrite the output image without asking")
	flags.BoolVar(&opt.printStats, "print-stats", false, "print statistics")
	return cmd
}

func runConvert(ctx context.Context, opt convertOptions, args []string) error {
	listFile, datFile, imgFile := inferFiles(args)
	if listFile == imgFile || datFile == imgFile {
		return errors.New("input and output filenames match")
	}

	// Refuse to clobber an existing image unless forced or confirmed
	if _, err := os.Stat(imgFile); err == nil {
		if !opt.force && !confirmOverwrite(imgFile) {
			return fmt.Errorf("output file %s exists, not overwriting", imgFile)
		}
	}

	// Decoding the transfer list and opening the data stream are
	// independent, do both at once
	var (
		list sdat2img.TransferList
		datf *os.File
		data io.ReadCloser
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := os.Open(listFile)
		if err != nil {
			return err
		}
		defer f.Close()
		list, err = sdat2img.TransferListFromReader(f)
		return err
	})
	g.Go(func() error {
		var err error
		datf, err = os.Open(datFile)
		if err != nil {
			return err
		}
		// The stream is only ever read once front to back, let the kernel know
		if err := sdat2img.AdviseSequential(datf.Fd()); err != nil {
			sdat2img.Log.WithError(err).Warn("failed to set read-ahead advice")
		}
		data, err = sdat2img.NewDataReader(datf, datFile)
		return err
	})
	if err := g.Wait(); err != nil {
		if datf != nil {
			datf.Close()
		}
		return err
	}
	defer datf.Close()
	defer data.Close()

	stats, err := writeImage(ctx, imgFile, list, data)
	if err != nil {
		return err
	}
	if opt.printStats {
		return printJSON(stdout, stats)
	}
	return nil
}

// writeImage assembles the image into a tempfile next to the output and
// renames it into place once complete.
func writeImage(ctx context.Context, name string, list sdat2img.TransferList, data io.Reader) (*sdat2img.AssembleStats, error) {
	tmp, err := tempfile.NewMode(filepath.Dir(name), "."+filepath.Base(name), 0644)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	stats, err := sdat2img.AssembleImage(ctx, list, data, tmp, NewProgressBar("Assembling "))
	if err != nil {
		return stats, err
	}
	if err = tmp.Close(); err != nil {
		return stats, err
	}
	return stats, os.Rename(tmp.Name(), name)
}

// inferFiles maps the positional arguments to the three file paths. Either
// the files are given explicitly, or the first argument is a directory and
// the second a common file prefix to look up inside it.
func inferFiles(args []string) (listFile, datFile, imgFile string) {
	if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
		dir, prefix := args[0], args[1]
		listFile = filepath.Join(dir, prefix+".transfer.list")
		datFile = filepath.Join(dir, prefix+".new.dat")
		if _, err := os.Stat(datFile); err != nil {
			datFile = filepath.Join(dir, prefix+".new.dat.br")
		}
		imgFile = filepath.Join(dir, prefix+".img")
	} else {
		listFile = args[0]
		datFile = args[1]
		imgFile = defaultOutput
	}
	if len(args) == 3 {
		imgFile = args[2]
	}
	return listFile, datFile, imgFile
}

// confirmOverwrite asks whether the existing file name may be replaced.
func confirmOverwrite(name string) bool {
	fmt.Fprintf(stderr, "Output file %s exists. Overwrite? (y/N): ", name)
	answer, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
