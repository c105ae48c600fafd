package cli

import (
	"github.com/inklight-labs/inklight-cli/internal/adapters/driven/corpusio"
	"github.com/inklight-labs/inklight-cli/internal/adapters/driven/storage/memory"
	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/services"
)

// stubSettingsService keeps settings in memory for command tests.
type stubSettingsService struct {
	settings domain.EngineSettings
}

func (s *stubSettingsService) Get() (*domain.EngineSettings, error) {
	cp := s.settings
	return &cp, nil
}

func (s *stubSettingsService) Save(settings *domain.EngineSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.settings = *settings
	return nil
}

// setupTestServices wires real services over in-memory stores and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldAnalysis := analysisService
	oldCorpus := corpusService
	oldHistory := historyService
	oldSettings := settingsService

	corpusStore := memory.NewCorpusStore()
	historyStore := memory.NewHistoryStore()

	analysis, err := services.NewAnalysisService(
		corpusStore, domain.DefaultEngineSettings(), domain.DefaultLexicon())
	if err != nil {
		panic(err)
	}
	analysis.SetHistoryStore(historyStore)

	corpus := services.NewCorpusService(corpusStore, corpusio.NewLoader())
	corpus.SetAnalysisService(analysis)

	analysisService = analysis
	corpusService = corpus
	historyService = services.NewHistoryService(historyStore)
	settingsService = &stubSettingsService{settings: domain.DefaultEngineSettings()}

	return func() {
		analysisService = oldAnalysis
		corpusService = oldCorpus
		historyService = oldHistory
		settingsService = oldSettings
	}
}
