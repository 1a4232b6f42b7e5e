package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScore_MissingJD(t *testing.T) {
	resume, _, _ := analyzeFixtures(t)
	setFlags(t, scoreCmd, map[string]string{"resume": resume})

	err := runScore(scoreCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --jd or --jd-url must be provided")
}

func TestRunScore_MutuallyExclusiveJD(t *testing.T) {
	resume, _, jd := analyzeFixtures(t)
	setFlags(t, scoreCmd, map[string]string{
		"resume": resume,
		"jd":     jd,
		"jd-url": "https://example.com/job",
	})

	err := runScore(scoreCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestRunScore_Success(t *testing.T) {
	resume, structure, jd := analyzeFixtures(t)
	setFlags(t, scoreCmd, map[string]string{
		"resume":    resume,
		"structure": structure,
		"jd":        jd,
	})

	assert.NoError(t, runScore(scoreCmd, nil))
}

func TestRunScore_JSONOutput(t *testing.T) {
	resume, structure, jd := analyzeFixtures(t)
	setFlags(t, scoreCmd, map[string]string{
		"resume":    resume,
		"structure": structure,
		"jd":        jd,
		"json":      "true",
	})

	assert.NoError(t, runScore(scoreCmd, nil))
}

func TestRunScore_InvalidJD(t *testing.T) {
	resume, _, _ := analyzeFixtures(t)
	jd := filepath.Join(t.TempDir(), "short.txt")
	require.NoError(t, os.WriteFile(jd, []byte("too short"), 0644))
	setFlags(t, scoreCmd, map[string]string{
		"resume": resume,
		"jd":     jd,
	})

	err := runScore(scoreCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to profile job description")
}
