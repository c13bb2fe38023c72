package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalStringAndNumber(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{`"abc-1"`, "abc-1"},
		{`42`, "42"},
		{` 7 `, "7"},
		{`null`, ""},
	}
	for _, tt := range tests {
		var id ID
		require.NoError(t, json.Unmarshal([]byte(tt.in), &id), tt.in)
		assert.Equal(t, tt.want, id, tt.in)
	}

	var id ID
	require.Error(t, json.Unmarshal([]byte(`{}`), &id))
	require.Error(t, json.Unmarshal([]byte(`true`), &id))
}

func TestID_Marshal(t *testing.T) {
	b, err := json.Marshal(ID("12"))
	require.NoError(t, err)
	assert.Equal(t, `12`, string(b))

	b, err = json.Marshal(ID("p-12"))
	require.NoError(t, err)
	assert.Equal(t, `"p-12"`, string(b))
}

func TestProjectAndFileDecode(t *testing.T) {
	var projects []Project
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": 1, "name": "Q1", "description": "sales", "created_at": "2024-01-01T00:00:00Z", "file_count": 2},
		{"id": "x9", "name": "Q2", "description": ""}
	]`), &projects))

	want := []Project{
		{ID: "1", Name: "Q1", Description: "sales", CreatedAt: "2024-01-01T00:00:00Z", FileCount: 2},
		{ID: "x9", Name: "Q2"},
	}
	if diff := cmp.Diff(want, projects); diff != "" {
		t.Fatalf("projects mismatch (-want +got):\n%s", diff)
	}

	var f FileRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id": 5, "project_id": 1, "filename": "a.csv", "status": "failed", "error": "bad header"}`), &f))
	assert.Equal(t, ID("5"), f.ID)
	assert.Equal(t, ID("1"), f.ProjectID)
	assert.True(t, f.Status.Done())
	assert.False(t, FileStatusProcessing.Done())
}

func TestLoginRequest_RememberMeOmittedUnlessSet(t *testing.T) {
	b, err := json.Marshal(LoginRequest{Email: "a@b.c", Password: "p"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.c","password":"p"}`, string(b))

	yes := true
	b, err = json.Marshal(LoginRequest{Email: "a@b.c", Password: "p", RememberMe: &yes})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.c","password":"p","remember_me":true}`, string(b))
}

func TestDashboardStats_Unlimited(t *testing.T) {
	assert.True(t, DashboardStats{UploadsLimit: -1}.UnlimitedUploads())
	assert.False(t, DashboardStats{UploadsLimit: 10}.UnlimitedUploads())
}
