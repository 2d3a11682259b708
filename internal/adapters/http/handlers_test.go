package httpadapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tabula.dev/sudoku/internal/checker"
	"tabula.dev/sudoku/internal/domain"
	"tabula.dev/sudoku/internal/hint"
	"tabula.dev/sudoku/internal/infrastructure/storage"
	"tabula.dev/sudoku/internal/solver"
	"tabula.dev/sudoku/internal/usecase"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	uc := usecase.NewService(
		solver.NewBacktracking(),
		checker.New(),
		hint.NewSingles(),
		storage.NewFS(t.TempDir()),
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string, out any) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode
}

func boardJSON(t *testing.T, s string) string {
	t.Helper()
	b, err := domain.FromString(s)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := json.Marshal(map[string]any{"board": b.Values})
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

const classic = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestSolveEndpoint(t *testing.T) {
	srv := newTestServer(t)
	var resp solveResp
	code := postJSON(t, srv.URL+"/api/solve", boardJSON(t, classic), &resp)
	if code != http.StatusOK {
		t.Fatalf("status %d: %s", code, resp.Error)
	}
	if resp.Board[0][2] != 4 {
		t.Fatalf("cell (0,2) = %d, want 4", resp.Board[0][2])
	}
}

func TestSolveEndpointNoSolution(t *testing.T) {
	// 1..8 across the top row with a 9 blocking the open corner.
	b := &domain.Board{}
	for c := 0; c < 8; c++ {
		b.Values[0][c] = domain.Cell(c + 1)
	}
	b.Values[1][8] = 9
	raw, _ := json.Marshal(map[string]any{"board": b.Values})

	srv := newTestServer(t)
	var resp solveResp
	code := postJSON(t, srv.URL+"/api/solve", string(raw), &resp)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", code)
	}
	if resp.Error == "" {
		t.Fatal("missing error message")
	}
}

func TestCheckEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp checkResp
	code := postJSON(t, srv.URL+"/api/check", boardJSON(t, classic), &resp)
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if !resp.OK || resp.Complete {
		t.Fatalf("classic board: ok=%v complete=%v", resp.OK, resp.Complete)
	}

	bad := "55" + strings.Repeat(".", 79)
	code = postJSON(t, srv.URL+"/api/check", boardJSON(t, bad), &resp)
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if resp.OK || len(resp.Conflicts) != 2 {
		t.Fatalf("duplicate board: ok=%v conflicts=%v", resp.OK, resp.Conflicts)
	}
}

func TestHintEndpoint(t *testing.T) {
	srv := newTestServer(t)
	oneShort := "534678912672195348198342567859761423426853791713924856961537284287419635345286.79"
	var resp hintResp
	code := postJSON(t, srv.URL+"/api/hint", boardJSON(t, oneShort), &resp)
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if !resp.Found || resp.Hint.Value != 1 {
		t.Fatalf("hint = %+v", resp)
	}
}

func TestSaveLoadEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var sr saveResp
	code := postJSON(t, srv.URL+"/api/save", `{"name":"mine","board":{"board":[[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0]]}}`, &sr)
	if code != http.StatusOK || sr.ID == "" {
		t.Fatalf("save: status %d, resp %+v", code, sr)
	}

	var lr loadResp
	code = postJSON(t, srv.URL+"/api/load", `{"id":"`+sr.ID+`"}`, &lr)
	if code != http.StatusOK || lr.Puzzle == nil || lr.Puzzle.Name != "mine" {
		t.Fatalf("load: status %d, resp %+v", code, lr)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/solve")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", resp.StatusCode)
	}
}
