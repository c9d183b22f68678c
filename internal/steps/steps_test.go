package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPlan(t *testing.T) {
	start := ForPlan("START")
	pro := ForPlan("PRO")
	scale := ForPlan("SCALE")

	assert.Len(t, start, 8)
	assert.Len(t, pro, 9)
	assert.Len(t, scale, 15)

	// Шаги более дорогих тарифов включают шаги дешёвых.
	for i, s := range start {
		assert.Equal(t, s.ID, pro[i].ID)
		assert.Equal(t, s.ID, scale[i].ID)
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("step_9")
	require.True(t, ok)
	assert.Equal(t, "Mockup de loja física", s.Title)
	assert.False(t, s.AvailableOn("START"))
	assert.True(t, s.AvailableOn("PRO"))

	_, ok = Lookup("step_99")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	all[0].ID = "mutated"

	again := All()
	assert.Equal(t, "step_1", again[0].ID)
}

func TestTransitionPolicies(t *testing.T) {
	assert.NoError(t, AllowAll("completed", "pending"))
	assert.NoError(t, ForbidRegression("pending", "completed"))
	assert.NoError(t, ForbidRegression("completed", "completed"))
	assert.Error(t, ForbidRegression("completed", "pending"))
	assert.Error(t, ForbidRegression("completed", "in_progress"))
}
