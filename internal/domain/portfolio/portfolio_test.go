package portfolio

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSnapshot_Shape(t *testing.T) {
	snap := DefaultSnapshot()

	require.NotNil(t, snap.Profile)
	assert.NotEmpty(t, snap.Profile.Name)
	assert.Len(t, snap.Education, 2)
	assert.Len(t, snap.Internships, 2)
	assert.Len(t, snap.Projects, 3)
	assert.Len(t, snap.OngoingProjects, 1)
	assert.Len(t, snap.Certifications, 2)
	assert.Empty(t, snap.Contacts)

	for _, i := range snap.Internships {
		assert.NotEmpty(t, i.Images, "default internships must carry images")
	}
	for _, p := range snap.Projects {
		assert.False(t, p.Ongoing)
	}
	for _, p := range snap.OngoingProjects {
		assert.True(t, p.Ongoing)
	}
}

func TestDefaultSnapshot_FreshIDsPerCall(t *testing.T) {
	a := DefaultSnapshot()
	b := DefaultSnapshot()
	assert.NotEqual(t, a.Education[0].ID, b.Education[0].ID)
	assert.NotEqual(t, uuid.Nil, a.Education[0].ID)
}

func TestSnapshot_Clone_Independent(t *testing.T) {
	orig := DefaultSnapshot()
	clone := orig.Clone()

	clone.Profile.Name = "changed"
	clone.Education[0].School = "changed"
	clone.Internships[0].Images[0] = "changed"
	clone.Projects[0].Technologies[0] = "changed"

	assert.NotEqual(t, "changed", orig.Profile.Name)
	assert.NotEqual(t, "changed", orig.Education[0].School)
	assert.NotEqual(t, "changed", orig.Internships[0].Images[0])
	assert.NotEqual(t, "changed", orig.Projects[0].Technologies[0])
}

func TestSnapshot_Clone_Nil(t *testing.T) {
	var snap *Snapshot
	assert.Nil(t, snap.Clone())
}
