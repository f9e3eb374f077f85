package enums

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRejectsUnknownValues(t *testing.T) {
	if _, err := ParseUserRole("superadmin"); err == nil {
		t.Fatal("expected unknown role to be rejected")
	}
	if _, err := ParseContactStatus("churned"); err == nil {
		t.Fatal("expected unknown contact status to be rejected")
	}
	if _, err := ParseInteractionType("fax"); err == nil {
		t.Fatal("expected unknown interaction type to be rejected")
	}
	if _, err := ParseTaskPriority("asap"); err == nil {
		t.Fatal("expected unknown priority to be rejected")
	}
	if _, err := ParseTaskStatus("paused"); err == nil {
		t.Fatal("expected unknown task status to be rejected")
	}
	if _, err := ParseDealStage("won"); err == nil {
		t.Fatal("expected unknown deal stage to be rejected")
	}
}

func TestParseRoundTrips(t *testing.T) {
	role, err := ParseUserRole("admin")
	require.NoError(t, err)
	assert.Equal(t, UserRoleAdmin, role)

	stage, err := ParseDealStage("closed_won")
	require.NoError(t, err)
	assert.Equal(t, DealStageClosedWon, stage)
	assert.True(t, stage.IsValid())
}

func TestJSONDecodingRejectsUnknownEnum(t *testing.T) {
	var payload struct {
		Status ContactStatus `json:"status"`
	}
	err := json.Unmarshal([]byte(`{"status":"vip"}`), &payload)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`{"status":"prospect"}`), &payload)
	require.NoError(t, err)
	assert.Equal(t, ContactStatusProspect, payload.Status)
}

func TestAllDealStagesIsStable(t *testing.T) {
	stages := AllDealStages()
	require.Len(t, stages, 6)
	assert.Equal(t, DealStageProspecting, stages[0])
	assert.Equal(t, DealStageClosedLost, stages[5])

	stages[0] = DealStage("mutated")
	assert.Equal(t, DealStageProspecting, AllDealStages()[0])
}
