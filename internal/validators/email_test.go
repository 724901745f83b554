package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Only the format-failure paths are covered here; the positive path depends
// on live DNS.
func TestIsEmailDomainValid_Malformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("no-at-sign"))
	assert.False(t, IsEmailDomainValid("trailing@"))
	assert.False(t, IsEmailDomainValid(""))
}
