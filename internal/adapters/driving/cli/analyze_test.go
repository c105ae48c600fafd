package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSubmission(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

const sampleText = "I think tidal power is underrated. We keep ignoring it. Why is that? " +
	"The moon does half the work for free, and engineers love a predictable schedule."

func TestAnalyzeCmd_Use(t *testing.T) {
	assert.Equal(t, "analyze [file]", analyzeCmd.Use)
}

func TestAnalyzeCmd_HasFlags(t *testing.T) {
	require.NotNil(t, analyzeCmd.Flags().Lookup("json"))
	require.NotNil(t, analyzeCmd.Flags().Lookup("save"))
	require.NotNil(t, analyzeCmd.Flags().Lookup("title"))
}

func TestAnalyzeCmd_ExecutesWithFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"analyze", writeSubmission(t, sampleText)})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Analysis Report")
	assert.Contains(t, buf.String(), "AI Score Breakdown")
}

func TestAnalyzeCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"analyze", "--json", writeSubmission(t, sampleText)})
	defer func() {
		rootCmd.SetArgs(nil)
		analyzeJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"ai_score"`)
	assert.Contains(t, buf.String(), `"plagiarism_score"`)
	assert.Contains(t, buf.String(), `"ai_breakdown"`)
}

func TestAnalyzeCmd_SaveRecordsHistory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"analyze", "--save", "--title", "tidal draft", writeSubmission(t, sampleText)})
	defer func() {
		rootCmd.SetArgs(nil)
		analyzeSave = false
		analyzeTitle = ""
	}()

	require.NoError(t, rootCmd.Execute())

	buf.Reset()
	rootCmd.SetArgs([]string{"history"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "tidal draft")
}

func TestAnalyzeCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"analyze", filepath.Join(t.TempDir(), "absent.txt")})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	assert.Error(t, rootCmd.Execute())
}

func TestAnalyzeCmd_ServiceNotConfigured(t *testing.T) {
	oldService := analysisService
	analysisService = nil
	defer func() {
		analysisService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"analyze", writeSubmission(t, "text")})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
