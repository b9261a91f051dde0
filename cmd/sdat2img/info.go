package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sdatutils/sdat2img"
	"github.com/spf13/cobra"
)

type infoOptions struct {
	printFormat string
}

func newInfoCommand(ctx context.Context) *cobra.Command {
	var opt infoOptions

	cmd := &cobra.Command{
		Use:   "info <transfer_list>",
		Short: "Show information about a transfer list",
		Long: `Decodes the provided transfer list and displays its version, the number of
operations and blocks per command kind, and the size of the image it
describes. The declared block count from the file header is shown as well,
it can differ from the derived total when the producer miscomputed it.`,
		Example: `  sdat2img info --format=plain system.transfer.list`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(ctx, opt, args)
		},
		SilenceUsage: true,
	}
	flags := cmd.Flags()
	flags.StringVarP(&opt.printFormat, "format", "f", "json", "output format, plain or json")
	return cmd
}

func runInfo(ctx context.Context, opt infoOptions, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	list, err := sdat2img.TransferListFromReader(f)
	if err != nil {
		return err
	}

	var results struct {
		Version        int    `json:"version"`
		Release        string `json:"release"`
		Operations     int    `json:"operations"`
		EraseBlocks    uint64 `json:"erase-blocks"`
		NewBlocks      uint64 `json:"new-blocks"`
		ZeroBlocks     uint64 `json:"zero-blocks"`
		DeclaredBlocks uint64 `json:"declared-blocks"`
		MaxBlock       uint64 `json:"max-block"`
		ImageSize      int64  `json:"image-size"`
	}
	results.Version = list.Version
	results.Release = sdat2img.AndroidRelease(list.Version)
	results.Operations = list.Ops()
	for _, op := range list.Operations() {
		switch op.Kind {
		case sdat2img.OpErase:
			results.EraseBlocks += op.Range.Blocks()
		case sdat2img.OpNew:
			results.NewBlocks += op.Range.Blocks()
		case sdat2img.OpZero:
			results.ZeroBlocks += op.Range.Blocks()
		}
	}
	results.DeclaredBlocks = list.DeclaredBlocks
	results.MaxBlock = list.MaxBlock()
	results.ImageSize = list.Length()

	switch opt.printFormat {
	case "json":
		return printJSON(stdout, results)
	case "plain":
		fmt.Fprintln(stdout, "Version:", results.Version)
		fmt.Fprintln(stdout, "Release:", results.Release)
		fmt.Fprintln(stdout, "Operations:", results.Operations)
		fmt.Fprintln(stdout, "Erase blocks:", results.EraseBlocks)
		fmt.Fprintln(stdout, "New blocks:", results.NewBlocks)
		fmt.Fprintln(stdout, "Zero blocks:", results.ZeroBlocks)
		fmt.Fprintln(stdout, "Declared blocks:", results.DeclaredBlocks)
		fmt.Fprintln(stdout, "Max block:", results.MaxBlock)
		fmt.Fprintln(stdout, "Image size:", results.ImageSize)
	default:
		return fmt.Errorf("unsupported output format '%s'", opt.printFormat)
	}
	return nil
}
