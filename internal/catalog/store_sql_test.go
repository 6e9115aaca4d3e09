package catalog

import (
	"context"
	"reflect"
	"testing"

	"github.com/juris-sim/jurisim/internal/db"
)

func newTestSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })
	return NewSQLStore(dbh, "sqlite")
}

func TestSQLStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestSQLStore(t)

	seed := []Entry{
		newEntry(rawEntry{CaseID: "1", CaseTitle: "Um", Side: "Defesa", Principle: "Direito à saúde",
			Article: "CF art. 196", Weight: 3, Keywords: "saude;direito a saude"}),
		newEntry(rawEntry{CaseID: "1", CaseTitle: "Um", Side: "acusacao", Principle: "Legalidade", Weight: 2}),
		newEntry(rawEntry{CaseID: "2", CaseTitle: "Dois", Side: "defesa", Principle: "Inocência", Weight: 1}),
	}
	if err := st.ReplaceAll(ctx, seed); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	all, err := st.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d entries, want 3", len(all))
	}
	if all[0].Side != "defesa" || all[0].Weight != 3 {
		t.Fatalf("first entry = %+v", all[0])
	}
	// keyword set is re-derived on scan
	want := []string{"saude", "direito a saude", "cf art 196"}
	if !reflect.DeepEqual(all[0].KeywordSet, want) {
		t.Fatalf("keyword set = %v, want %v", all[0].KeywordSet, want)
	}

	one, err := st.EntriesForCase(ctx, "1")
	if err != nil || len(one) != 2 {
		t.Fatalf("EntriesForCase: %v, %d rows", err, len(one))
	}
	if one[0].Principle != "Direito à saúde" || one[1].Principle != "Legalidade" {
		t.Fatalf("case rows out of order: %+v", one)
	}

	cases, err := st.Cases(ctx)
	if err != nil || len(cases) != 2 {
		t.Fatalf("Cases: %v, %+v", err, cases)
	}

	if err := st.ReplaceAll(ctx, seed[:1]); err != nil {
		t.Fatalf("ReplaceAll again: %v", err)
	}
	all, _ = st.Entries(ctx)
	if len(all) != 1 {
		t.Fatalf("after ReplaceAll: %d rows, want 1", len(all))
	}
}
