package http

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/juris-sim/jurisim/internal/catalog"
	"github.com/juris-sim/jurisim/internal/grading"
)

const testCSV = `case_id,case_title,case_description,side,principle,article,weight,keywords
1,Plano de saúde,Negativa de cobertura,defesa,Right to health,Const. Art. 196,3,direito a saude;saude
1,Plano de saúde,Negativa de cobertura,acusacao,Legality,Const. Art. 5,2,legalidade
`

func testStore(t *testing.T) catalog.Store {
	t.Helper()
	entries, _, err := catalog.LoadCSV(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("load test catalog: %v", err)
	}
	return catalog.NewMemoryStore(entries)
}

func TestEvaluateHandler(t *testing.T) {
	store := testStore(t)
	h := EvaluateHandler(store, grading.NewEvaluator())

	body := `{"case_id":"1","side":"defesa","text":"Defendo o direito à saúde"}`
	req := httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var res grading.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Score != 3 || len(res.Matched) != 1 || len(res.Counterarguments) != 1 {
		t.Fatalf("result = %+v", res)
	}
}

func TestEvaluateHandlerExtraRows(t *testing.T) {
	store := testStore(t)
	h := EvaluateHandler(store, grading.NewEvaluator())

	body := `{"case_id":"camara_9","side":"defesa","text":"pela dignidade da pessoa humana",
		"extra_rows":[{"case_id":"camara_9","side":"Defesa","principle":"Dignity",
		"article":"CF art 1 III","weight":2,"keywords":"dignidade da pessoa humana"}]}`
	req := httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var res grading.Result
	_ = json.Unmarshal(rec.Body.Bytes(), &res)
	if res.Score != 2 || len(res.Matched) != 1 {
		t.Fatalf("result = %+v", res)
	}

	// transient rows must not leak into the store
	entries, _ := store.Entries(req.Context())
	if len(entries) != 2 {
		t.Fatalf("store grew to %d entries", len(entries))
	}
}

func TestEvaluateHandlerRejectsNegativeExtraWeight(t *testing.T) {
	h := EvaluateHandler(testStore(t), grading.NewEvaluator())
	body := `{"case_id":"1","side":"defesa","text":"x",
		"extra_rows":[{"case_id":"1","side":"defesa","principle":"P","weight":-1}]}`
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(body)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestEvaluateHandlerValidation(t *testing.T) {
	h := EvaluateHandler(testStore(t), grading.NewEvaluator())
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(`{"side":"defesa"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAutoMapHandler(t *testing.T) {
	h := AutoMapHandler(testStore(t))
	body := `{"case_id":"camara_42","description":"Este projeto trata do direito à saúde pública"}`
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/cases/automap", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Suggestions []catalog.Entry `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Suggestions) != 1 || out.Suggestions[0].CaseID != "camara_42" {
		t.Fatalf("suggestions = %+v", out.Suggestions)
	}
}

func TestReportHandler(t *testing.T) {
	h := ReportHandler(testStore(t), grading.NewEvaluator())
	body := `{"case_id":"1","side":"defesa","text":"Defendo o direito à saúde"}`
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "relatorio_1_defesa_") {
		t.Fatalf("content disposition = %q", cd)
	}
	rows, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if len(rows) != 2 { // header + one matched row, nothing recommended
		t.Fatalf("csv rows = %d: %v", len(rows), rows)
	}
	if rows[1][4] != "matched" || rows[1][2] != "Plano de saúde" {
		t.Fatalf("csv row = %v", rows[1])
	}
}

func TestListCasesHandler(t *testing.T) {
	h := ListCasesHandler(testStore(t))
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/cases", nil))

	var cases []catalog.Case
	if err := json.Unmarshal(rec.Body.Bytes(), &cases); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cases) != 1 || cases[0].CaseID != "1" {
		t.Fatalf("cases = %+v", cases)
	}
}

func TestCasePrinciplesHandler(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/cases/{caseID}/principles", CasePrinciplesHandler(testStore(t)))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cases/1/principles", nil))
	var entries []catalog.Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %+v", entries)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cases/99/principles", nil))
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("unknown case body = %q, want []", body)
	}
}

func TestUploadCatalogHandler(t *testing.T) {
	store := testStore(t)
	h := UploadCatalogHandler(store)

	newCSV := "case_id,case_title,case_description,side,principle,article,weight,keywords\n" +
		"7,Novo,Desc,defesa,P,Art,1,kw\n"
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/catalog", strings.NewReader(newCSV)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	entries, _ := store.Entries(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	if len(entries) != 1 || entries[0].CaseID != "7" {
		t.Fatalf("store after upload = %+v", entries)
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/catalog", strings.NewReader("case_id\n1\n")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing columns: status = %d, want 400", rec.Code)
	}
}
