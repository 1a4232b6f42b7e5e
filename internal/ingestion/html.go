package ingestion

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/ats-screener/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when fetching a job posting URL fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when HTML content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// HTMLOptions configures HTML and URL ingestion.
type HTMLOptions struct {
	// UseBrowser renders the page with a headless browser when plain HTTP
	// extraction comes back below fetch.MinContentLength.
	UseBrowser bool
	// Timeout bounds each network request; zero means fetch.DefaultTimeout.
	Timeout time.Duration
	// Logger receives debug output about the extraction steps; nil disables it.
	Logger *zap.Logger
}

func (o *HTMLOptions) logger() *zap.Logger {
	if o == nil || o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// IngestJobHTML extracts job description text from an HTML source and cleans
// it. src may be an http(s) URL or a path to a local HTML file. URL sources
// get platform-specific content selectors and, when enabled, a headless
// browser fallback for script-rendered pages.
func IngestJobHTML(ctx context.Context, src string, opts *HTMLOptions) (string, *Metadata, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return ingestFromURL(ctx, src, opts)
	}
	return ingestFromHTMLFile(src)
}

func ingestFromHTMLFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := fetch.ExtractMainText(string(content), fetch.JobPostingSelectors())
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(cleaned, ""), nil
}

func ingestFromURL(ctx context.Context, urlStr string, opts *HTMLOptions) (string, *Metadata, error) {
	log := opts.logger()

	platform := fetch.DetectPlatform(urlStr)
	log.Debug("fetching job posting",
		zap.String("url", urlStr),
		zap.String("platform", string(platform)))

	fetchOpts := fetch.DefaultOptions()
	if opts != nil && opts.Timeout > 0 {
		fetchOpts.Timeout = opts.Timeout
	}

	result, err := fetch.URL(ctx, urlStr, fetchOpts)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	log.Debug("fetched HTML", zap.Int("bytes", len(result.HTML)))

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	text, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	log.Debug("extracted text", zap.Int("chars", len(text)))

	if opts != nil && opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		log.Debug("content below threshold, rendering with browser",
			zap.Int("chars", len(text)),
			zap.Int("min", fetch.MinContentLength))

		browserHTML, browserErr := fetch.WithBrowser(ctx, urlStr, fetchOpts.Timeout, log)
		switch {
		case browserErr != nil:
			// Keep the plain HTTP content when the browser path fails.
			log.Warn("browser rendering failed", zap.Error(browserErr))
		default:
			rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...)
			if extractErr != nil {
				log.Warn("browser content extraction failed", zap.Error(extractErr))
			} else {
				text = rendered
				log.Debug("browser extracted text", zap.Int("chars", len(text)))
			}
		}
	}

	cleaned := CleanText(text)
	meta := NewMetadata(cleaned, urlStr)
	meta.Platform = string(platform)
	return cleaned, meta, nil
}
