package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhythmkit/osr"
	"github.com/rhythmkit/osr/internal/store/diskstore"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [FILE]",
	Short: "Print a summary of a replay file",
	Long: `Decode a replay file and print its header fields: mode, player,
score, hit counts, modifiers and frame count.

Examples:
  # Human-readable summary
  osr inspect play.osr

  # Machine-readable output
  osr inspect play.osr --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

var inspectJSON bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := diskstore.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	replay, err := newCodec().Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	if inspectJSON {
		printReplayJSON(replay)
	} else {
		printReplayText(replay)
	}
	return nil
}

func printReplayText(r *osr.Replay) {
	fmt.Printf("Mode:      %s\n", r.Mode)
	fmt.Printf("Version:   %d\n", r.GameVersion)
	fmt.Printf("Player:    %s\n", r.Player())
	fmt.Printf("Map hash:  %s\n", strOrDash(r.MapHash))
	fmt.Printf("Score:     %d\n", r.TotalScore)
	fmt.Printf("Max combo: %d (FC: %t)\n", r.MaxCombo, r.FullCombo)
	fmt.Printf("Hits:      %d/%d/%d (%d geki, %d katu, %d miss)\n",
		r.Count300, r.Count100, r.Count50, r.CountGeki, r.CountKatu, r.CountMiss)
	fmt.Printf("Mods:      %s\n", r.Mods)
	fmt.Printf("Played at: %s\n", r.PlayedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Frames:    %d\n", len(r.Frames))
	if r.Seed != nil {
		fmt.Printf("Seed:      %d\n", *r.Seed)
	}
	fmt.Printf("Score ID:  %d\n", r.OnlineScoreID)
}

func printReplayJSON(r *osr.Replay) {
	fmt.Printf(`{"mode":%q,"game_version":%d,"player":%q`, r.Mode.String(), r.GameVersion, r.Player())
	if r.MapHash != nil {
		fmt.Printf(`,"map_hash":%q`, *r.MapHash)
	}
	fmt.Printf(`,"total_score":%d,"max_combo":%d,"full_combo":%t`, r.TotalScore, r.MaxCombo, r.FullCombo)
	fmt.Printf(`,"count_300":%d,"count_100":%d,"count_50":%d`, r.Count300, r.Count100, r.Count50)
	fmt.Printf(`,"count_geki":%d,"count_katu":%d,"count_miss":%d`, r.CountGeki, r.CountKatu, r.CountMiss)
	fmt.Printf(`,"mods":%q,"mods_raw":%d`, r.Mods.String(), uint32(r.Mods))
	fmt.Printf(`,"played_at":%q`, r.PlayedAt.Format("2006-01-02T15:04:05Z07:00"))
	fmt.Printf(`,"frames":%d`, len(r.Frames))
	if r.Seed != nil {
		fmt.Printf(`,"seed":%d`, *r.Seed)
	}
	fmt.Printf(`,"online_score_id":%d`, r.OnlineScoreID)
	fmt.Println("}")
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
