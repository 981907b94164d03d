package luckydraw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/luckydraw-go/pkg/luckydraw/models"
)

func TestEligibilityResolver_FirstNonEmptyWins(t *testing.T) {
	res := NewEligibilityResolver()
	res.Add(EligibilityRow{Group: "G1", Family: "", District: "East"})
	res.Add(EligibilityRow{Group: "G1", Family: "Tan", District: ""})
	res.Add(EligibilityRow{Group: "G1", Family: "Lee", District: "West"})

	g := res.Groups()["G1"]
	require.NotNil(t, g)
	assert.Equal(t, "Tan", g.Family)
	assert.Equal(t, "East", g.District)
}

func TestEligibilityResolver_AgentsAppendedWithoutDedup(t *testing.T) {
	res := NewEligibilityResolver()
	res.Add(EligibilityRow{Group: "G1", AgentCode: "A1", AgentName: "Mary", AgencyCode: "X1", District: "East"})
	res.Add(EligibilityRow{Group: "G1", AgentName: "", AgencyCode: "X9"})
	res.Add(EligibilityRow{Group: "G1", AgentCode: "A2", AgentName: "Mary", AgencyCode: "X2"})

	agents := res.Groups()["G1"].Agents
	require.Len(t, agents, 2)
	assert.Equal(t, models.AgentRecord{Agent: "A1", AgentName: "Mary", AgencyCode: "X1", District: "East"}, agents[0])
	assert.Equal(t, models.AgentRecord{Agent: "A2", AgentName: "Mary", AgencyCode: "X2"}, agents[1])
}

func TestEligibilityResolver_SkipsRowsWithoutGroup(t *testing.T) {
	res := NewEligibilityResolver()
	assert.False(t, res.Add(EligibilityRow{Family: "Tan", AgentName: "Mary"}))
	assert.True(t, res.Add(EligibilityRow{Group: "G2"}))
	assert.True(t, res.Add(EligibilityRow{Group: "G1"}))

	assert.Len(t, res.Groups(), 2)
	assert.Equal(t, []string{"G2", "G1"}, res.GroupOrder())
	assert.Equal(t, 1, res.skipped)
}

func TestResolveEligibility_ReadsRosterSheet(t *testing.T) {
	src := newMemSource().
		add("Generation", ticketHeader).
		add("Eligible Agents",
			rosterHeader,
			[]string{" G1 ", "", "A1", " Mary ", "X1", "East"},
			[]string{"G1", "Tan", "A2", "John", "X2", ""},
			[]string{"", "Ghost", "A3", "Nobody", "X3", "North"},
			[]string{"G2"},
		)

	var stats models.ExtractStats
	groups, err := ResolveEligibility(src, testRosterCols, &stats, nil)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	g1 := groups["G1"]
	assert.Equal(t, "Tan", g1.Family)
	assert.Equal(t, "East", g1.District)
	require.Len(t, g1.Agents, 2)
	assert.Equal(t, "Mary", g1.Agents[0].AgentName)
	assert.Equal(t, "A1", g1.Agents[0].Agent)
	assert.Equal(t, "", g1.Agents[1].District)

	g2 := groups["G2"]
	assert.Empty(t, g2.Family)
	assert.Empty(t, g2.Agents)

	assert.Equal(t, 4, stats.EligibilityRows)
	assert.Equal(t, 1, stats.EligibilitySkipped)
	assert.Equal(t, 2, stats.EligibilityGroups)
}

func TestResolveEligibility_WithoutAgentCodeColumn(t *testing.T) {
	src := newMemSource().add("eligible agent list",
		[]string{"Group No.", "Family", "Agent name", "Agency code", "District"},
		[]string{"G1", "Tan", "Mary", "X1", "East"},
	)
	cols := testRosterCols
	cols.AgentCode = ""

	groups, err := ResolveEligibility(src, cols, nil, nil)
	require.NoError(t, err)
	require.Len(t, groups["G1"].Agents, 1)
	assert.Equal(t, models.AgentRecord{AgentName: "Mary", AgencyCode: "X1", District: "East"}, groups["G1"].Agents[0])
}

func TestResolveEligibility_NoRosterSheet(t *testing.T) {
	src := newMemSource().add("Generation", ticketHeader)

	groups, err := ResolveEligibility(src, testRosterCols, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestResolveEligibility_MissingColumn(t *testing.T) {
	src := newMemSource().add("Eligible Agent",
		[]string{"Group No.", "Family", "Agent name", "Agency code", "District"},
		[]string{"G1", "Tan", "Mary", "X1", "East"},
	)

	groups, err := ResolveEligibility(src, testRosterCols, nil, nil)
	assert.Nil(t, groups)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrColumnNotFound))

	var colErr *ColumnNotFoundError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "Agent", colErr.Column)
}
