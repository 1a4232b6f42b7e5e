package profile

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-screener/internal/skills"
	"github.com/jonathan/ats-screener/internal/types"
)

const sampleJD = "Senior Backend Role\nRequirements: 5+ years of experience with Python, Docker, and PostgreSQL deployments."

func TestBuild_ProfilesJobDescription(t *testing.T) {
	p, err := Build(context.Background(), sampleJD, skills.NewExtractor(nil, nil))
	require.NoError(t, err)

	assert.Equal(t, sampleJD, p.RawText)
	assert.Equal(t, "senior backend role requirements: 5+ years of experience with python, docker, and postgresql deployments.", p.Text)
	assert.Equal(t, 5, p.RequiredYears)
	assert.True(t, p.Skills.Contains("python"))
	assert.True(t, p.Skills.Contains("docker"))
	assert.True(t, p.Skills.Contains("postgresql"))
}

func TestBuild_RejectsShortText(t *testing.T) {
	_, err := Build(context.Background(), "too short", skills.NewExtractor(nil, nil))
	require.Error(t, err)

	var invalid *InvalidTextError
	assert.ErrorAs(t, err, &invalid)
}

func TestBuild_NoExperienceRequirement(t *testing.T) {
	raw := "We are hiring engineers who love Go, Kubernetes, and distributed systems at any level."
	p, err := Build(context.Background(), raw, skills.NewExtractor(nil, nil))
	require.NoError(t, err)
	assert.Zero(t, p.RequiredYears)
}

func TestCache_GetOrBuildReusesProfile(t *testing.T) {
	cache := NewCache(skills.NewExtractor(nil, nil))

	first, err := cache.GetOrBuild(context.Background(), sampleJD)
	require.NoError(t, err)
	second, err := cache.GetOrBuild(context.Background(), sampleJD)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_DistinctDescriptionsProfiledSeparately(t *testing.T) {
	cache := NewCache(skills.NewExtractor(nil, nil))

	_, err := cache.GetOrBuild(context.Background(), sampleJD)
	require.NoError(t, err)
	_, err = cache.GetOrBuild(context.Background(), "Frontend role needing React, TypeScript, and CSS with 3 years of experience in product teams.")
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Len())
}

func TestCache_BuildFailureNotCached(t *testing.T) {
	cache := NewCache(skills.NewExtractor(nil, nil))

	_, err := cache.GetOrBuild(context.Background(), "nope")
	require.Error(t, err)
	_, err = cache.GetOrBuild(context.Background(), "nope")
	require.Error(t, err)

	assert.Zero(t, cache.Len())
}

func TestCache_ConcurrentCallersShareOneProfile(t *testing.T) {
	cache := NewCache(skills.NewExtractor(nil, nil))

	var mu sync.Mutex
	var wg sync.WaitGroup
	seen := make(map[*types.JobProfile]struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := cache.GetOrBuild(context.Background(), sampleJD)
			assert.NoError(t, err)
			mu.Lock()
			seen[p] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 1)
	assert.Equal(t, 1, cache.Len())
}
