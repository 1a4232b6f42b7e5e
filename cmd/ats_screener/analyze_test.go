package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-screener/internal/types"
)

const analyzeResumeText = `John Smith
john.smith@example.com | 555-123-4567

Experience
Senior Engineer, Acme Corp, 2019 to 2024
- Developed data pipelines in python serving analytics teams
- Reduced sql query latency by 40 percent across postgresql clusters

Education
B.S. Computer Science, State University

Skills
python, sql, postgresql, airflow`

const analyzeJDText = `We are looking for a senior software engineer with strong
experience in python and sql. The role requires 3+ years experience building
data pipelines and working with postgresql databases.`

const analyzeStructureJSON = `{
  "elements": [
    {"type": "heading", "content": "John Smith", "font_size": 16.0, "page": 1},
    {"type": "text", "content": "john.smith@example.com | 555-123-4567", "page": 1},
    {"type": "heading", "content": "Experience", "font_size": 13.0, "page": 1},
    {"type": "bullet", "content": "Developed data pipelines in python serving analytics teams", "page": 1},
    {"type": "bullet", "content": "Reduced sql query latency by 40 percent", "page": 1},
    {"type": "heading", "content": "Education", "font_size": 13.0, "page": 1},
    {"type": "bullet", "content": "B.S. Computer Science, State University", "page": 1},
    {"type": "heading", "content": "Skills", "font_size": 13.0, "page": 1},
    {"type": "text", "content": "python, sql, postgresql, airflow", "page": 1}
  ]
}`

// analyzeFixtures writes resume, structure, and JD files into a temp dir.
func analyzeFixtures(t *testing.T) (resume, structure, jd string) {
	t.Helper()
	dir := t.TempDir()
	resume = filepath.Join(dir, "resume.txt")
	structure = filepath.Join(dir, "structure.json")
	jd = filepath.Join(dir, "jd.txt")
	require.NoError(t, os.WriteFile(resume, []byte(analyzeResumeText), 0644))
	require.NoError(t, os.WriteFile(structure, []byte(analyzeStructureJSON), 0644))
	require.NoError(t, os.WriteFile(jd, []byte(analyzeJDText), 0644))
	return resume, structure, jd
}

func TestRunAnalyze_MissingResume(t *testing.T) {
	t.Setenv("ATS_CONFIG", "")
	setFlags(t, analyzeCmd, map[string]string{})

	err := runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--resume is required")
}

func TestRunAnalyze_MutuallyExclusiveJD(t *testing.T) {
	t.Setenv("ATS_CONFIG", "")
	resume, _, jd := analyzeFixtures(t)
	setFlags(t, analyzeCmd, map[string]string{
		"resume": resume,
		"jd":     jd,
		"jd-url": "https://example.com/job",
	})

	err := runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestRunAnalyze_FullTextReport(t *testing.T) {
	t.Setenv("ATS_CONFIG", "")
	resume, structure, jd := analyzeFixtures(t)
	out := filepath.Join(t.TempDir(), "report.txt")
	setFlags(t, analyzeCmd, map[string]string{
		"resume":    resume,
		"structure": structure,
		"jd":        jd,
		"out":       out,
	})

	require.NoError(t, runAnalyze(analyzeCmd, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	report := string(data)

	assert.Contains(t, report, "Run ")
	assert.Contains(t, report, "ATS SCORE")
	assert.Contains(t, report, "SCORE BREAKDOWN")
	assert.Contains(t, report, "STRUCTURE ADVICE")
}

func TestRunAnalyze_JSONReport(t *testing.T) {
	t.Setenv("ATS_CONFIG", "")
	resume, structure, jd := analyzeFixtures(t)
	out := filepath.Join(t.TempDir(), "report.json")
	setFlags(t, analyzeCmd, map[string]string{
		"resume":    resume,
		"structure": structure,
		"jd":        jd,
		"out":       out,
		"json":      "true",
	})

	require.NoError(t, runAnalyze(analyzeCmd, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Greater(t, report.ATSScore, 0)
	require.NotNil(t, report.Breakdown)
	assert.NotEmpty(t, report.Advice)
}

func TestRunAnalyze_NoJobDescription(t *testing.T) {
	t.Setenv("ATS_CONFIG", "")
	resume, structure, _ := analyzeFixtures(t)
	out := filepath.Join(t.TempDir(), "report.txt")
	setFlags(t, analyzeCmd, map[string]string{
		"resume":    resume,
		"structure": structure,
		"out":       out,
	})

	require.NoError(t, runAnalyze(analyzeCmd, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	report := string(data)

	assert.NotContains(t, report, "ATS SCORE")
	assert.Contains(t, report, "STRUCTURE ADVICE")
}

func TestRunAnalyze_InvalidJobDescription(t *testing.T) {
	t.Setenv("ATS_CONFIG", "")
	resume, _, _ := analyzeFixtures(t)
	jd := filepath.Join(t.TempDir(), "short.txt")
	require.NoError(t, os.WriteFile(jd, []byte("too short"), 0644))
	setFlags(t, analyzeCmd, map[string]string{
		"resume": resume,
		"jd":     jd,
	})

	err := runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short or invalid")
}

func TestRunAnalyze_ConfigFile(t *testing.T) {
	t.Setenv("ATS_CONFIG", "")
	resume, structure, jd := analyzeFixtures(t)
	out := filepath.Join(t.TempDir(), "report.json")

	cfgContent, err := json.Marshal(map[string]any{
		"resume":    resume,
		"structure": structure,
		"job":       jd,
		"output":    out,
		"format":    "json",
	})
	require.NoError(t, err)
	cfgPath := writeTempFile(t, "config.json", string(cfgContent))
	setFlags(t, analyzeCmd, map[string]string{"config": cfgPath})

	require.NoError(t, runAnalyze(analyzeCmd, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Greater(t, report.ATSScore, 0)
}

func TestRunAnalyze_FlagOverridesConfig(t *testing.T) {
	t.Setenv("ATS_CONFIG", "")
	resume, structure, jd := analyzeFixtures(t)
	out := filepath.Join(t.TempDir(), "report.txt")

	cfgContent, err := json.Marshal(map[string]any{
		"resume":    resume,
		"structure": structure,
		"job":       jd,
		"output":    out,
		"format":    "json",
	})
	require.NoError(t, err)
	cfgPath := writeTempFile(t, "config.json", string(cfgContent))

	// --json=false was set explicitly, so it beats the config file's format
	setFlags(t, analyzeCmd, map[string]string{
		"config": cfgPath,
		"json":   "false",
	})

	require.NoError(t, runAnalyze(analyzeCmd, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ATS SCORE")
}

func TestRunAnalyze_ConfigFromEnv(t *testing.T) {
	resume, structure, _ := analyzeFixtures(t)
	out := filepath.Join(t.TempDir(), "report.txt")

	cfgContent, err := json.Marshal(map[string]any{
		"resume":    resume,
		"structure": structure,
		"output":    out,
	})
	require.NoError(t, err)
	cfgPath := writeTempFile(t, "config.json", string(cfgContent))
	t.Setenv("ATS_CONFIG", cfgPath)
	setFlags(t, analyzeCmd, map[string]string{})

	require.NoError(t, runAnalyze(analyzeCmd, nil))

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestRunAnalyze_LLMWithoutAPIKey(t *testing.T) {
	t.Setenv("ATS_CONFIG", "")
	t.Setenv("GEMINI_API_KEY", "")
	resume, _, _ := analyzeFixtures(t)
	setFlags(t, analyzeCmd, map[string]string{
		"resume": resume,
		"llm":    "true",
	})

	err := runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestAnalyzeCommand_Binary(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resume, structure, jd := analyzeFixtures(t)
	out := filepath.Join(t.TempDir(), "report.txt")

	cmd := exec.Command(binaryPath, "analyze",
		"--resume", resume,
		"--structure", structure,
		"--jd", jd,
		"--out", out)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed: %s", string(output))
	_, statErr := os.Stat(out)
	assert.NoError(t, statErr)
}

func TestAnalyzeCommand_BinaryMissingResume(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--resume is required")
}
