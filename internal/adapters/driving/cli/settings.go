package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage engine settings",
	Long: `View and tune the engine's thresholds and weights. Changes are
validated before saving; an invalid combination (for example weights
that do not sum to 1) is rejected.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set one setting",
	Long: `Set one engine setting by key. Keys:

  cosine_threshold         minimum cosine similarity to report a match
  self_overlap_threshold   minimum n-gram overlap for internal repetition
  phrase_words             n-gram length for shared-phrase detection
  phrase_max_edits         word edits allowed in a near-exact phrase
  cosine_weight            best-cosine share of the plagiarism score
  phrase_weight            phrase-overlap share of the plagiarism score
  uniform_tolerance        token band around the mean for uniform_length
  min_sentences            low-confidence sentence floor
  min_tokens               low-confidence token floor
  max_rewrites             cap on rewrite suggestions
  weights.uniformity       AI sub-score weights (must sum to 1)
  weights.burstiness
  weights.vocab_richness
  weights.transition_density
  weights.filler_density`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	s, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Plagiarism]")
	cmd.Printf("  cosine_threshold: %g\n", s.CosineThreshold)
	cmd.Printf("  self_overlap_threshold: %g\n", s.SelfOverlapThreshold)
	cmd.Printf("  phrase_words: %d\n", s.PhraseWords)
	cmd.Printf("  phrase_max_edits: %d\n", s.PhraseMaxEdits)
	cmd.Printf("  cosine_weight: %g\n", s.CosineWeight)
	cmd.Printf("  phrase_weight: %g\n", s.PhraseWeight)
	cmd.Println()

	cmd.Println("[Classification]")
	cmd.Printf("  uniform_tolerance: %d\n", s.UniformTolerance)
	cmd.Printf("  min_sentences: %d\n", s.MinSentences)
	cmd.Printf("  min_tokens: %d\n", s.MinTokens)
	cmd.Printf("  max_rewrites: %d\n", s.MaxRewrites)
	cmd.Println()

	cmd.Println("[AI Weights]")
	cmd.Printf("  uniformity: %g\n", s.Weights.Uniformity)
	cmd.Printf("  burstiness: %g\n", s.Weights.Burstiness)
	cmd.Printf("  vocab_richness: %g\n", s.Weights.VocabRichness)
	cmd.Printf("  transition_density: %g\n", s.Weights.TransitionDensity)
	cmd.Printf("  filler_density: %g\n", s.Weights.FillerDensity)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, raw := args[0], args[1]

	s, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := applySetting(s, key, raw); err != nil {
		return err
	}
	if err := settingsService.Save(s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}

func applySetting(s *domain.EngineSettings, key, raw string) error {
	floatField := func(dst *float64) error {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s expects a number, got %q", key, raw)
		}
		*dst = v
		return nil
	}
	intField := func(dst *int) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s expects an integer, got %q", key, raw)
		}
		*dst = v
		return nil
	}

	switch key {
	case "cosine_threshold":
		return floatField(&s.CosineThreshold)
	case "self_overlap_threshold":
		return floatField(&s.SelfOverlapThreshold)
	case "phrase_words":
		return intField(&s.PhraseWords)
	case "phrase_max_edits":
		return intField(&s.PhraseMaxEdits)
	case "cosine_weight":
		return floatField(&s.CosineWeight)
	case "phrase_weight":
		return floatField(&s.PhraseWeight)
	case "uniform_tolerance":
		return intField(&s.UniformTolerance)
	case "min_sentences":
		return intField(&s.MinSentences)
	case "min_tokens":
		return intField(&s.MinTokens)
	case "max_rewrites":
		return intField(&s.MaxRewrites)
	case "weights.uniformity":
		return floatField(&s.Weights.Uniformity)
	case "weights.burstiness":
		return floatField(&s.Weights.Burstiness)
	case "weights.vocab_richness":
		return floatField(&s.Weights.VocabRichness)
	case "weights.transition_density":
		return floatField(&s.Weights.TransitionDensity)
	case "weights.filler_density":
		return floatField(&s.Weights.FillerDensity)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
}
