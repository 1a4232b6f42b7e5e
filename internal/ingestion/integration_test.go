package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEnd_TextFile(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "input.txt")
	testContent := "# Senior Software Engineer\n\n## Requirements\n- Go experience\n- Distributed systems"
	err := os.WriteFile(testFile, []byte(testContent), 0644)
	require.NoError(t, err)

	cleanedText, metadata, err := IngestJobText(testFile)
	require.NoError(t, err)

	assert.Contains(t, cleanedText, "Senior Software Engineer")
	assert.Contains(t, cleanedText, "Requirements")
	assert.NotNil(t, metadata)
	assert.NotEmpty(t, metadata.Timestamp)
	assert.NotEmpty(t, metadata.Hash)
}

func TestEndToEnd_URL_MockServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(sampleJobHTML))
	}))
	defer server.Close()

	cleanedText, metadata, err := IngestJobHTML(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Contains(t, cleanedText, "Senior Software Engineer")
	assert.Contains(t, cleanedText, "Requirements")
	assert.NotContains(t, cleanedText, "Navigation")
	assert.NotContains(t, cleanedText, "Footer")
	assert.NotNil(t, metadata)
	assert.Equal(t, server.URL, metadata.URL)
}

func TestJobSourceFormats(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		expected []string
		notIn    []string
	}{
		{
			name:     "Markdown format",
			filename: "job.txt",
			content: "# Senior Software Engineer\n\n## About the Role\n" +
				"We build data pipelines.\n\n## Requirements\n- Go\n- Kubernetes",
			expected: []string{"Senior Software Engineer", "About the Role", "Requirements"},
		},
		{
			name:     "Plain text format",
			filename: "job.txt",
			content: "Senior Software Engineer\n\nAbout the Role\n" +
				"We build data pipelines.\n\nRequirements\nGo, Kubernetes",
			expected: []string{"Senior Software Engineer", "About the Role", "Requirements"},
		},
		{
			name:     "HTML format",
			filename: "job.html",
			content:  sampleJobHTML,
			expected: []string{"Senior Software Engineer", "About the Role", "Requirements"},
			notIn:    []string{"Navigation", "Footer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			err := os.WriteFile(path, []byte(tt.content), 0644)
			require.NoError(t, err)

			var cleanedText string
			if filepath.Ext(path) == ".html" {
				cleanedText, _, err = IngestJobHTML(context.Background(), path, nil)
			} else {
				cleanedText, _, err = IngestJobText(path)
			}
			require.NoError(t, err)

			for _, expected := range tt.expected {
				assert.Contains(t, cleanedText, expected)
			}
			for _, notIn := range tt.notIn {
				assert.NotContains(t, cleanedText, notIn)
			}
		})
	}
}
