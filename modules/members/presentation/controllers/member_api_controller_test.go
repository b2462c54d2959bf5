package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sendikahq/sendika/modules/members/domain/aggregates/member"
	"github.com/sendikahq/sendika/modules/members/importing"
)

func newMemberRouter(t *testing.T, repo *stubMemberRepo) http.Handler {
	t.Helper()
	members, _ := newTestServices(repo, importing.DefaultLimits())
	return testRouter(t, NewMemberAPIController(members))
}

func seedMember(id string) member.Member {
	return member.Member{
		ID:         id,
		FirstName:  "Ayşe",
		LastName:   "Yılmaz",
		NationalID: "12345678901",
		Phone:      "05551234567",
		Gender:     member.GenderFemale,
		Source:     member.SourceManual,
		Status:     member.StatusPending,
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMemberAPIController_List(t *testing.T) {
	router := newMemberRouter(t, &stubMemberRepo{members: []member.Member{seedMember("m-1"), seedMember("m-2")}})

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/members?limit=10", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Items []map[string]any `json:"items"`
		Total int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, int64(2), payload.Total)
	require.Len(t, payload.Items, 2)
	require.Equal(t, "m-1", payload.Items[0]["id"])
}

func TestMemberAPIController_Get(t *testing.T) {
	router := newMemberRouter(t, &stubMemberRepo{members: []member.Member{seedMember("m-1")}})

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/members/m-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "m-1", body["id"])
	require.Equal(t, "12345678901", body["nationalId"])
}

func TestMemberAPIController_GetNotFound(t *testing.T) {
	router := newMemberRouter(t, &stubMemberRepo{})

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/members/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "MEMBER_NOT_FOUND")
}

func TestMemberAPIController_CreateInvalidBody(t *testing.T) {
	router := newMemberRouter(t, &stubMemberRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/members", strings.NewReader("{not json"))
	rec := doRequest(router, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_BODY")
}

func TestMemberAPIController_CreateValidationFailed(t *testing.T) {
	router := newMemberRouter(t, &stubMemberRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/members", strings.NewReader(`{"firstName":"Ayşe","nationalId":"123"}`))
	rec := doRequest(router, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var payload struct {
		Code   string            `json:"code"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "MEMBER_VALIDATION_FAILED", payload.Code)
	require.Contains(t, payload.Fields, "lastName")
	require.Contains(t, payload.Fields, "nationalId")
}
