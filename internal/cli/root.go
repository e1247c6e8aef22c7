package cli

import (
	"encoding/json"
	"io"

	"github.com/Conceptual-Machines/eharmony-api/internal/harmony"
	"github.com/Conceptual-Machines/eharmony-api/internal/knowledge"
	"github.com/Conceptual-Machines/eharmony-api/internal/services"
	"github.com/spf13/cobra"
)

const defaultKey = "C"

func Execute() error {
	return NewRoot().Execute()
}

// NewRoot builds the eharmony command tree. Every command prints indented JSON.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "eharmony",
		Short:        "Harmonic analysis of chord progressions",
		SilenceUsage: true,
	}
	root.AddCommand(
		AnalyzeCmd(),
		ChordCmd(),
		CheckCmd(),
		ReharmonizeCmd(),
		ImproviseCmd(),
	)
	return root
}

func AnalyzeCmd() *cobra.Command {
	var key, analysisContext string
	cmd := &cobra.Command{
		Use:   "analyze CHORD...",
		Short: "Analyze a progression with pedagogy and difficulty",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := harmony.ParsePitchClass(key)
			if err != nil {
				return err
			}
			kb, err := knowledge.Load()
			if err != nil {
				return err
			}
			report, err := services.NewHarmonyService(kb, nil).AnalyzeProgression(cmd.Context(), args, pc, analysisContext)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", defaultKey, "Tonal center")
	cmd.Flags().StringVar(&analysisContext, "context", services.ContextTonal, "Analysis context (tonal or modal)")
	return cmd
}

func ChordCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "chord CHORD",
		Short: "Show notes, voicing, function and scales for one chord",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := harmony.ParsePitchClass(key)
			if err != nil {
				return err
			}
			kb, err := knowledge.Load()
			if err != nil {
				return err
			}
			detail, err := services.NewHarmonyService(kb, nil).ChordDetail(cmd.Context(), args[0], pc)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), detail)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", defaultKey, "Tonal center")
	return cmd
}

func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check CHORD...",
		Short: "Check root motion between consecutive chords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := harmony.CheckVoiceLeading(args)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}
}

func ReharmonizeCmd() *cobra.Command {
	var key, style string
	cmd := &cobra.Command{
		Use:   "reharmonize CHORD...",
		Short: "Suggest substitutions and alternative progressions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := harmony.ParsePitchClass(key)
			if err != nil {
				return err
			}
			kb, err := knowledge.Load()
			if err != nil {
				return err
			}
			report, err := services.NewReharmonizationService(kb, nil).Suggest(cmd.Context(), args, pc, style)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", defaultKey, "Tonal center")
	cmd.Flags().StringVar(&style, "style", services.DefaultStyle, "Reharmonization style")
	return cmd
}

func ImproviseCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "improvise CHORD...",
		Short: "Build a chord-scale and target-note guide for improvising",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := harmony.ParsePitchClass(key)
			if err != nil {
				return err
			}
			kb, err := knowledge.Load()
			if err != nil {
				return err
			}
			guide, err := services.NewImprovisationService(kb, nil).Guide(cmd.Context(), args, pc)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), guide)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", defaultKey, "Tonal center")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
