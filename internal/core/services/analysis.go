package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inklight-labs/inklight-cli/internal/classifier"
	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driven"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driving"
	"github.com/inklight-labs/inklight-cli/internal/detectors/ai"
	"github.com/inklight-labs/inklight-cli/internal/detectors/plagiarism"
	"github.com/inklight-labs/inklight-cli/internal/features"
	"github.com/inklight-labs/inklight-cli/internal/logger"
	"github.com/inklight-labs/inklight-cli/internal/suggest"
	"github.com/inklight-labs/inklight-cli/internal/textseg"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs the full writing-integrity pipeline: segment,
// extract features, score plagiarism and AI likelihood, classify
// sentences and generate suggestions.
type AnalysisService struct {
	corpusStore  driven.CorpusStore
	historyStore driven.HistoryStore
	settings     domain.EngineSettings

	extractor    *features.Extractor
	plagDetector *plagiarism.Detector
	aiDetector   *ai.Detector
	classifier   *classifier.Classifier
	generator    *suggest.Generator

	cache *snapshotCache
}

// NewAnalysisService creates an analysis service. Settings and lexicon
// are validated here so a misconfigured deployment fails before any
// document is processed. The corpusStore parameter is optional (can be
// nil for corpus-free analysis).
func NewAnalysisService(
	corpusStore driven.CorpusStore,
	settings domain.EngineSettings,
	lexicon domain.Lexicon,
) (*AnalysisService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}
	if err := lexicon.Validate(); err != nil {
		return nil, fmt.Errorf("validate lexicon: %w", err)
	}

	return &AnalysisService{
		corpusStore:  corpusStore,
		settings:     settings,
		extractor:    features.New(lexicon),
		plagDetector: plagiarism.NewDetector(settings),
		aiDetector:   ai.NewDetector(settings),
		classifier:   classifier.New(settings),
		generator:    suggest.New(settings),
		cache:        &snapshotCache{},
	}, nil
}

// SetHistoryStore enables persistence of analysis runs.
func (s *AnalysisService) SetHistoryStore(store driven.HistoryStore) {
	s.historyStore = store
}

// InvalidateCorpus drops the cached corpus snapshot. The next analysis
// rebuilds it from the store. In-flight analyses keep the snapshot
// they already pinned.
func (s *AnalysisService) InvalidateCorpus() {
	s.cache.invalidate()
}

// Analyze runs the pipeline over text. Degenerate input yields a
// low-confidence result, never an error.
func (s *AnalysisService) Analyze(ctx context.Context, text string, opts driving.AnalyzeOptions) (*domain.AnalysisResult, error) {
	logger.Section("Analysis")

	sentences := textseg.Segment(text)
	logger.Debug("Segmented %d sentences from %d bytes", len(sentences), len(text))

	docFeatures, sentFeatures := s.extractor.Extract(sentences)

	snap, err := s.snapshot(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &domain.AnalysisResult{
		PlagiarismMatches: []domain.SimilarityMatch{},
		Sentences:         []domain.SentenceVerdict{},
		Exercises:         []domain.ExerciseRecommendation{},
	}
	if snap != nil {
		result.CorpusVersion = snap.Version()
	}

	result.LowConfidence = len(sentences) < s.settings.MinSentences ||
		int(docFeatures[domain.FeatTokenTotal]) < s.settings.MinTokens
	if result.LowConfidence {
		logger.Info("Input below confidence thresholds (%d sentences, %d tokens)",
			len(sentences), int(docFeatures[domain.FeatTokenTotal]))
	}
	if len(sentences) == 0 {
		// Report the configured weights even with nothing to score, so
		// the breakdown still explains how a score would be composed.
		w := s.settings.Weights
		result.AIBreakdown = domain.AIBreakdown{
			Uniformity:        domain.ScoreComponent{Weight: w.Uniformity},
			Burstiness:        domain.ScoreComponent{Weight: w.Burstiness},
			VocabRichness:     domain.ScoreComponent{Weight: w.VocabRichness},
			TransitionDensity: domain.ScoreComponent{Weight: w.TransitionDensity},
			FillerDensity:     domain.ScoreComponent{Weight: w.FillerDensity},
		}
		result.AIBand = domain.BandForScore(0)
		return result, nil
	}

	logger.Debug("Scoring plagiarism against corpus snapshot")
	score, matches := s.plagDetector.Detect(sentences, snap)
	result.PlagiarismScore = score
	if matches != nil {
		result.PlagiarismMatches = matches
	}

	logger.Debug("Scoring AI likelihood")
	aiScore, breakdown := s.aiDetector.Detect(docFeatures, sentFeatures)
	result.AIScore = aiScore
	result.AIBreakdown = breakdown
	result.AIBand = domain.BandForScore(aiScore)

	logger.Debug("Classifying sentences")
	result.Sentences = s.classifier.ClassifyAll(sentences, sentFeatures, docFeatures)

	logger.Debug("Generating suggestions")
	result.Rewrites = s.generator.Rewrites(sentences, result.Sentences)
	result.Exercises = s.generator.Exercises(result.Sentences)

	logger.Info("Analysis complete: plagiarism=%.2f ai=%.2f band=%s",
		result.PlagiarismScore, result.AIScore, result.AIBand)

	if opts.Save && s.historyStore != nil {
		if err := s.persist(ctx, text, opts.Title, result); err != nil {
			logger.Warn("Failed to persist analysis: %v", err)
		}
	}
	return result, nil
}

// snapshot resolves the corpus snapshot for one call. An explicit
// per-call corpus bypasses the cache entirely.
func (s *AnalysisService) snapshot(ctx context.Context, opts driving.AnalyzeOptions) (*plagiarism.Snapshot, error) {
	if opts.Corpus != nil {
		return plagiarism.BuildSnapshot(validEntries(opts.Corpus), 0, s.settings.PhraseWords), nil
	}
	if snap := s.cache.get(); snap != nil {
		return snap, nil
	}
	if s.corpusStore == nil {
		return nil, nil
	}

	entries, err := s.corpusStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return s.cache.publish(validEntries(entries), s.settings.PhraseWords), nil
}

// validEntries drops malformed corpus entries instead of failing the
// analysis. Each skip is logged so bad data is visible.
func validEntries(entries []domain.CorpusEntry) []domain.CorpusEntry {
	out := make([]domain.CorpusEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" || strings.TrimSpace(e.Text) == "" {
			logger.Warn("Skipping corpus entry %q: %v", e.ID, domain.ErrCorpusEntry)
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *AnalysisService) persist(ctx context.Context, text, title string, result *domain.AnalysisResult) error {
	if title == "" {
		title = "Untitled"
	}
	rec := &domain.AnalysisRecord{
		ID:        uuid.New().String(),
		Title:     title,
		Text:      text,
		Result:    *result,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.historyStore.SaveAnalysis(ctx, rec); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	logger.Debug("Saved analysis %s (%q)", rec.ID, rec.Title)
	return nil
}
