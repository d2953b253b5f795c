package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfileNoUsers(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/profile", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "No users found.", decodeBody(t, w)["error"])
}

func TestProfileReturnsNewestUser(t *testing.T) {
	r := setupRouter(t)

	w := register(t, r, "First", "first@b.com", "GST1", "pw")
	require.Equal(t, http.StatusCreated, w.Code)
	w = register(t, r, "Second", "second@b.com", "GST2", "pw")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/profile", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var profile ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	require.Equal(t, "Second", profile.Name)
	require.Equal(t, "second@b.com", profile.Email)
	require.Equal(t, "GST2", profile.GSTIN)
}

func TestProfileCacheInvalidatedByRegistration(t *testing.T) {
	r := setupRouter(t)

	w := register(t, r, "First", "first@b.com", "GST1", "pw")
	require.Equal(t, http.StatusCreated, w.Code)

	// Prime the profile cache
	w = doJSON(t, r, http.MethodGet, "/profile", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	// A newer registration replaces the cached profile
	w = register(t, r, "Second", "second@b.com", "GST2", "pw")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/profile", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var profile ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	require.Equal(t, "second@b.com", profile.Email)
}
