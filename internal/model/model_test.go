package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Shivanand-hulikatti/mergington-activities/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogMarshalKeepsOrder(t *testing.T) {
	c := model.Catalog{
		{Name: "Zeta Club", Description: "z", Schedule: "Mon", MaxParticipants: 3, Participants: []string{"a@x.com"}},
		{Name: "Alpha Club", Description: "a", Schedule: "Tue", MaxParticipants: 1},
	}

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	s := string(raw)
	assert.Less(t, strings.Index(s, `"Zeta Club"`), strings.Index(s, `"Alpha Club"`))

	var decoded map[string]struct {
		Description     string   `json:"description"`
		Schedule        string   `json:"schedule"`
		MaxParticipants int      `json:"max_participants"`
		Participants    []string `json:"participants"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "z", decoded["Zeta Club"].Description)
	assert.Equal(t, 3, decoded["Zeta Club"].MaxParticipants)
	assert.Equal(t, []string{"a@x.com"}, decoded["Zeta Club"].Participants)
	assert.NotNil(t, decoded["Alpha Club"].Participants)
	assert.Contains(t, s, `"participants":[]`)
	assert.NotContains(t, s, `"Name"`)
}

func TestEmptyCatalog(t *testing.T) {
	raw, err := json.Marshal(model.Catalog{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestRemoveParticipantKeepsOrder(t *testing.T) {
	a := model.Activity{Participants: []string{"a", "b", "c"}}

	assert.True(t, a.RemoveParticipant("b"))
	assert.Equal(t, []string{"a", "c"}, a.Participants)
	assert.False(t, a.RemoveParticipant("b"))
	assert.False(t, a.HasParticipant("b"))
}

func TestClone(t *testing.T) {
	a := model.Activity{Name: "x", Participants: []string{"a"}}
	c := a.Clone()
	c.Participants[0] = "z"
	c.AddParticipant("y")

	assert.Equal(t, []string{"a"}, a.Participants)
}
