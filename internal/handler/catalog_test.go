package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hooplytics/playtype-stats-service/internal/model"
)

func TestCatalogHandler_ListPlayers(t *testing.T) {
	teamID := int64(1)
	cat := &stubCatalogService{players: []model.Player{
		{PlayerID: 1, FirstName: "Jane", LastName: "Doe", FullName: "Jane Doe", TeamID: &teamID},
		{PlayerID: 2, FullName: "Solo"},
	}}
	r := newRouter(nil, cat)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/players", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 players, got %d", len(got))
	}
	if got[0]["firstName"] != "Jane" || got[0]["teamID"].(float64) != 1 {
		t.Fatalf("unexpected first player: %v", got[0])
	}
	// Unresolved team reference serializes as null, not 0.
	if got[1]["teamID"] != nil {
		t.Fatalf("expected null teamID, got %v", got[1]["teamID"])
	}
}

func TestCatalogHandler_ListTeams(t *testing.T) {
	cat := &stubCatalogService{teams: []model.Team{{TeamID: 1, Name: "Thunder"}}}
	r := newRouter(nil, cat)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 || got[0]["name"] != "Thunder" || got[0]["teamID"].(float64) != 1 {
		t.Fatalf("unexpected teams body: %v", got)
	}
}

func TestCatalogHandler_ListGames(t *testing.T) {
	home, away := int64(1), int64(2)
	cat := &stubCatalogService{games: []model.Game{{
		GameID: 3, Date: "2024-11-02",
		HomeTeamID: &home, AwayTeamID: &away,
		HomeScore: 101, AwayScore: 99,
		HomeRebounds: 40, AwayRebounds: 38,
		HomeAssists: 25, AwayAssists: 22,
	}}}
	r := newRouter(nil, cat)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/games", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	g := got[0]
	if g["gameID"].(float64) != 3 || g["date"] != "2024-11-02" {
		t.Fatalf("unexpected game identity: %v", g)
	}
	if g["homeScore"].(float64) != 101 || g["awayAssists"].(float64) != 22 {
		t.Fatalf("unexpected game stats: %v", g)
	}
}

func TestCatalogHandler_EmptyListsSerializeAsArrays(t *testing.T) {
	r := newRouter(nil, &stubCatalogService{})
	for _, path := range []string{"/api/v1/players", "/api/v1/teams", "/api/v1/games"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		if body := w.Body.String(); body != "[]" {
			t.Fatalf("%s: expected [], got %s", path, body)
		}
	}
}

func TestCatalogHandler_StorageFailureIs500(t *testing.T) {
	r := newRouter(nil, &stubCatalogService{err: errors.New("boom")})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
