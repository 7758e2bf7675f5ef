package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invitePayload(club string) map[string]interface{} {
	return map[string]interface{}{
		"club":        club,
		"department":  "Computer Science",
		"staffId":     "cs1",
		"staffName":   "Dr. John Smith",
		"role":        "Coordinator",
		"description": handlerDescription,
	}
}

func TestInviteSubmit(t *testing.T) {
	router := buildEventRouter()

	resp := postJSON(router, "/invites", invitePayload("Robotics Club"))
	require.Equal(t, http.StatusCreated, resp.Code)

	var envelope struct {
		Data struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.ID)
	assert.Equal(t, "pending", envelope.Data.Status)
}

func TestInviteSubmitValidation(t *testing.T) {
	router := buildEventRouter()

	payload := invitePayload("Robotics Club")
	payload["staffId"] = ""
	resp := postJSON(router, "/invites", payload)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Staff member selection is required")
}

func TestInviteListByCategory(t *testing.T) {
	router := buildEventRouter()

	resp := postJSON(router, "/invites", invitePayload("Robotics Club"))
	require.Equal(t, http.StatusCreated, resp.Code)

	// New invites land in the pending category.
	req, _ := http.NewRequest(http.MethodGet, "/invites?category=pending", nil)
	resp = performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Robotics Club")

	req, _ = http.NewRequest(http.MethodGet, "/invites?category=approved", nil)
	resp = performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, resp.Body.String(), "Robotics Club")
}

func TestInviteListRejectsUnknownCategory(t *testing.T) {
	router := buildEventRouter()

	req, _ := http.NewRequest(http.MethodGet, "/invites?category=archived", nil)
	resp := performRequest(router, req)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "category must be pending or approved")
}

func TestInviteListRequiresClubWithoutCategory(t *testing.T) {
	router := buildEventRouter()

	req, _ := http.NewRequest(http.MethodGet, "/invites", nil)
	resp := performRequest(router, req)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}
