package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/juris-sim/jurisim/internal/camara"
)

// GET /proposals?q=saude&ano=2023&itens=30&pagina=1
func SearchProposalsHandler(client *camara.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		opts := camara.SearchOpts{
			Query: q.Get("q"),
			Year:  q.Get("ano"),
		}
		if v, err := strconv.Atoi(q.Get("itens")); err == nil {
			opts.PageSize = v
		}
		if v, err := strconv.Atoi(q.Get("pagina")); err == nil {
			opts.Page = v
		}

		items, attempts, err := client.Search(r.Context(), opts)
		if err != nil {
			http.Error(w, "camara search: "+err.Error(), http.StatusBadGateway)
			return
		}
		cases := make([]any, 0, len(items))
		for _, p := range items {
			cases = append(cases, map[string]any{
				"proposal": p,
				"case":     camara.ProposalToCase(p),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": cases,
			"debug": attempts,
		})
	}
}
