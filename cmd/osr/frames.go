package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhythmkit/osr/internal/store/diskstore"
)

var framesCmd = &cobra.Command{
	Use:   "frames [FILE]",
	Short: "Dump the input frames of a replay",
	Long: `Decode a replay file and print its input frames, one per line:
time delta, cursor position and pressed buttons.

Examples:
  # First 20 frames
  osr frames play.osr --limit 20

  # Frames with the hard-rock vertical mirror applied
  osr frames play.osr --mirror`,
	Args: cobra.ExactArgs(1),
	RunE: runFrames,
}

var (
	framesLimit  int
	framesMirror bool
)

func init() {
	framesCmd.Flags().IntVar(&framesLimit, "limit", 0, "print at most N frames (0 = all)")
	framesCmd.Flags().BoolVar(&framesMirror, "mirror", false, "apply the hard-rock vertical mirror")
	rootCmd.AddCommand(framesCmd)
}

func runFrames(cmd *cobra.Command, args []string) error {
	data, err := diskstore.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	replay, err := newCodec().Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	frames := replay.Frames
	if framesMirror {
		frames = replay.MirrorHardRock()
	}

	n := len(frames)
	if framesLimit > 0 && framesLimit < n {
		n = framesLimit
	}

	var elapsed int64
	for i := 0; i < n; i++ {
		f := frames[i]
		elapsed += f.Delta
		fmt.Printf("%8dms  +%-5d  x=%-8g y=%-8g %s\n", elapsed, f.Delta, f.X, f.Y, f.Keys)
	}
	if n < len(frames) {
		fmt.Printf("... %d more frames\n", len(frames)-n)
	}
	return nil
}
