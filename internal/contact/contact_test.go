package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasEmail(t *testing.T) {
	assert.True(t, HasEmail("Reach me at jane.doe+jobs@example.co.uk anytime"))
	assert.True(t, HasEmail("JOHN_DOE@COMPANY.IO"))
	assert.False(t, HasEmail("no at sign here"))
	assert.False(t, HasEmail("half@way"))
}

func TestHasPhone(t *testing.T) {
	assert.True(t, HasPhone("Call (555) 123-4567"))
	assert.True(t, HasPhone("+1 555.123.4567"))
	assert.True(t, HasPhone("5551234567"))
	assert.False(t, HasPhone("ext. 123"))
}

func TestHasProfileLink(t *testing.T) {
	assert.True(t, HasProfileLink("see linkedin.com/in/jane-doe"))
	assert.True(t, HasProfileLink("https://GitHub.com/janedoe"))
	assert.False(t, HasProfileLink("linkedin.com/company/acme"))
	assert.False(t, HasProfileLink("gitlab.com/janedoe"))
}

func TestIsNameLike(t *testing.T) {
	assert.True(t, IsNameLike("Jane Doe"))
	assert.True(t, IsNameLike("Jane"))
	assert.True(t, IsNameLike("Juan Pablo De La Cruz"))
	assert.False(t, IsNameLike("jane doe"))
	assert.False(t, IsNameLike("Jane de Doe"))
	assert.False(t, IsNameLike(""))
	assert.False(t, IsNameLike("One Two Three Four Five Six"))
	assert.False(t, IsNameLike("123 Main Street"))
}
