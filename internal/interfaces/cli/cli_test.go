package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Intelligence/pkg/types/intake"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTriageCommandJSON(t *testing.T) {
	out, err := runCommand(t,
		"triage",
		"--title", "Urgent asylum case, fled persecution",
		"--description", "immediate danger, life threatening",
		"--country", "Kenya",
	)
	require.NoError(t, err)

	var result intake.TriageResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, intake.CategoryAsylum, result.CaseType)
	assert.Equal(t, intake.UrgencyCritical, result.Urgency)
	assert.Equal(t, "Kenya", result.Jurisdiction)
}

func TestTriageCommandTable(t *testing.T) {
	out, err := runCommand(t,
		"triage", "-o", "table",
		"--title", "Eviction notice received",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "CASE TYPE")
	assert.Contains(t, out, "URGENCY")
}

func TestTriageCommandEmptyInput(t *testing.T) {
	_, err := runCommand(t, "triage")
	require.Error(t, err)
}

func TestMatchCommandRequiresCaseID(t *testing.T) {
	_, err := runCommand(t, "match")
	require.Error(t, err)
}

func TestMatchCommandJSON(t *testing.T) {
	out, err := runCommand(t, "match", "--case-id", "case-123", "--urgency", "high")
	require.NoError(t, err)

	var matches []intake.CandidateMatch
	require.NoError(t, json.Unmarshal([]byte(out), &matches))
	assert.GreaterOrEqual(t, len(matches), 3)
	assert.LessOrEqual(t, len(matches), 5)
}

func TestMatchCommandDeterministic(t *testing.T) {
	first, err := runCommand(t, "match", "--case-id", "case-42")
	require.NoError(t, err)
	second, err := runCommand(t, "match", "--case-id", "case-42")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMatchCommandTable(t *testing.T) {
	out, err := runCommand(t, "match", "--case-id", "case-123", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "LAWYER")
	assert.Contains(t, out, "lawyer_")
}

func TestAnalyzeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.txt")
	content := "John Smith filed a complaint with the Ministry of Justice on 2024-01-15."
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := runCommand(t, "analyze", "--file", path, "--doc-id", "doc-1")
	require.NoError(t, err)

	var result intake.ExtractionResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "doc-1", result.DocumentID)
	assert.Contains(t, result.ExtractedEntities.Persons, "John Smith")
}

func TestAnalyzeCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "analyze", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	out, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "legalaid")
}
