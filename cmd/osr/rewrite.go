package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rhythmkit/osr/internal/store/diskstore"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [IN] [OUT]",
	Short: "Decode a replay and re-encode it",
	Long: `Decode a replay file and write it back out through the encoder.

The rewritten file carries the same logical content; the compressed frame
block may differ byte-for-byte from the input. With a single argument the
input file is rewritten in place.

Examples:
  # Rewrite into a new file
  osr rewrite play.osr play.clean.osr

  # Rewrite in place
  osr rewrite play.osr`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRewrite,
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	in := args[0]
	out := in
	if len(args) == 2 {
		out = args[1]
	}

	data, err := diskstore.ReadFile(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	codec := newCodec()
	replay, err := codec.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", in, err)
	}

	encoded, err := codec.Encode(replay)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Printf("Wrote %s (%d bytes, %d frames)\n", out, len(encoded), len(replay.Frames))
	return nil
}
