package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rhythmkit/osr/internal/codec/zstdcodec"
	"github.com/rhythmkit/osr/internal/store/diskstore"
)

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export the frame stream as zstd-compressed JSONL",
	Long: `Decode a replay file and write its input frames as one JSON object
per line, compressed with zstd.

Each line carries the frame's time delta, cursor position and raw key
bits. The output is suitable for bulk analysis pipelines.

Examples:
  osr export play.osr --output frames.jsonl.zst`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "frames.jsonl.zst", "output file path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := diskstore.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	replay, err := newCodec().Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	out, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", exportOutput, err)
	}
	defer out.Close()

	w, err := zstdcodec.New().Writer(out)
	if err != nil {
		return fmt.Errorf("creating compressor: %w", err)
	}

	var elapsed int64
	for _, f := range replay.Frames {
		elapsed += f.Delta
		line := fmt.Sprintf(`{"t":%d,"delta":%d,"x":%g,"y":%g,"keys":%d}`+"\n",
			elapsed, f.Delta, f.X, f.Y, uint32(f.Keys))
		if _, err := w.Write([]byte(line)); err != nil {
			w.Close()
			return fmt.Errorf("writing frame: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finishing compression: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", exportOutput, err)
	}

	fmt.Printf("Exported %d frames to %s\n", len(replay.Frames), exportOutput)
	return nil
}
