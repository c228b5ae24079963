package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemberSpec(t *testing.T) {
	rec, err := parseMemberSpec("alice:30:40:20")
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.AssigneeID)
	assert.Equal(t, 30.0, rec.AllocatedHours)
	assert.Equal(t, 40.0, rec.TotalCapacityHours)
	assert.Equal(t, 20.0, rec.BurnoutRiskScore)
}

func TestParseMemberSpec_BurnoutOptional(t *testing.T) {
	rec, err := parseMemberSpec("bob:32:40")
	require.NoError(t, err)
	assert.Equal(t, 0.0, rec.BurnoutRiskScore)
}

func TestParseMemberSpec_Invalid(t *testing.T) {
	for _, spec := range []string{"", "alice", "alice:30", "alice:x:40", "alice:30:y", "alice:30:40:z", "a:1:2:3:4"} {
		_, err := parseMemberSpec(spec)
		assert.Error(t, err, spec)
	}
}
