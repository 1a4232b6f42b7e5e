package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsActionVerb(t *testing.T) {
	assert.True(t, ContainsActionVerb("Managed a team of five"))
	assert.True(t, ContainsActionVerb("the rollout was coordinated across regions"))
	assert.False(t, ContainsActionVerb("responsible for the roadmap"))
	assert.False(t, ContainsActionVerb(""))
}

func TestStartsWithActionVerb_SkipsListMarkers(t *testing.T) {
	assert.True(t, StartsWithActionVerb("- Led migration of the billing stack"))
	assert.True(t, StartsWithActionVerb("• Developed internal tooling"))
}

func TestStartsWithActionVerb_FirstTokenOnly(t *testing.T) {
	assert.True(t, StartsWithActionVerb("Increased revenue by 40%"))
	assert.False(t, StartsWithActionVerb("Team led by me"))
	assert.False(t, StartsWithActionVerb("Responsible for launching the product"))
	assert.False(t, StartsWithActionVerb(""))
}

func TestStartsWithActionVerb_CaseInsensitive(t *testing.T) {
	assert.True(t, StartsWithActionVerb("SPEARHEADED the replatforming effort"))
}
