// Package camara queries the Câmara dos Deputados open-data API for
// legislative proposals, so students can argue about cases that have no
// local catalog rows yet.
package camara

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/juris-sim/jurisim/internal/catalog"
	"github.com/juris-sim/jurisim/internal/grading"
)

const DefaultBaseURL = "https://dadosabertos.camara.leg.br/api/v2"

// Proposal is the normalized view of one proposição.
type Proposal struct {
	ID          string `json:"id"`
	SiglaNumero string `json:"sigla_numero"` // e.g. "PL 1234/2023"
	Ano         string `json:"ano"`
	Ementa      string `json:"ementa"`
	URLIntegra  string `json:"url_integra"`
}

// Attempt records one API call for caller-side debugging.
type Attempt struct {
	Label  string `json:"label"`
	URL    string `json:"url"`
	Status int    `json:"status,omitempty"`
	OK     bool   `json:"ok"`
	Err    string `json:"error,omitempty"`
}

// SearchOpts narrows a proposal search. Zero values mean "no filter".
type SearchOpts struct {
	Query    string
	Year     string
	PageSize int
	Page     int
}

type Client struct {
	base      string
	http      *http.Client
	userAgent string
}

func NewClient(base string) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		base:      strings.TrimSuffix(base, "/"),
		http:      &http.Client{Timeout: 25 * time.Second},
		userAgent: "jurisim/1.0",
	}
}

// Search runs up to three strategies against /proposicoes: full-text busca,
// busca constrained by year, and finally a local filter over up to three
// plain pages, matching the normalized query against each ementa. The first
// strategy returning data wins. The attempt log is always returned, also on
// error, so callers can surface what the API did.
func (c *Client) Search(ctx context.Context, opts SearchOpts) ([]Proposal, []Attempt, error) {
	if opts.PageSize <= 0 {
		opts.PageSize = 50
	}
	if opts.Page <= 0 {
		opts.Page = 1
	}
	var log []Attempt

	base := url.Values{}
	base.Set("itens", strconv.Itoa(opts.PageSize))
	base.Set("pagina", strconv.Itoa(opts.Page))
	if opts.Year != "" {
		base.Set("ano", opts.Year)
	}

	if opts.Query != "" {
		params := cloneValues(base)
		params.Set("busca", opts.Query)
		if items, ok := c.call(ctx, params, "busca", &log); ok && len(items) > 0 {
			return items, log, nil
		}
		if opts.Year != "" {
			if items, ok := c.call(ctx, params, "busca+ano", &log); ok && len(items) > 0 {
				return items, log, nil
			}
		}
	}

	// fallback: pull text-less pages and filter locally by ementa
	var collected []Proposal
	for p := opts.Page; p < opts.Page+3; p++ {
		params := cloneValues(base)
		params.Set("pagina", strconv.Itoa(p))
		if items, ok := c.call(ctx, params, fmt.Sprintf("fallback_p%d", p), &log); ok {
			collected = append(collected, items...)
		}
		if err := ctx.Err(); err != nil {
			return nil, log, err
		}
	}
	if opts.Query != "" {
		qNorm := grading.Normalize(opts.Query)
		filtered := collected[:0]
		for _, it := range collected {
			if strings.Contains(grading.Normalize(it.Ementa), qNorm) {
				filtered = append(filtered, it)
			}
		}
		collected = filtered
	}
	return collected, log, nil
}

func (c *Client) call(ctx context.Context, params url.Values, label string, log *[]Attempt) ([]Proposal, bool) {
	u := c.base + "/proposicoes?" + params.Encode()
	att := Attempt{Label: label, URL: u}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		att.Err = err.Error()
		*log = append(*log, att)
		return nil, false
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		att.Err = err.Error()
		*log = append(*log, att)
		return nil, false
	}
	defer resp.Body.Close()
	att.Status = resp.StatusCode
	att.OK = resp.StatusCode >= 200 && resp.StatusCode < 300

	var body struct {
		Dados []struct {
			ID             json.Number `json:"id"`
			SiglaTipo      string      `json:"siglaTipo"`
			Numero         json.Number `json:"numero"`
			Ano            json.Number `json:"ano"`
			Ementa         string      `json:"ementa"`
			URLInteiroTeor string      `json:"urlInteiroTeor"`
			URI            string      `json:"uri"`
		} `json:"dados"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		att.Err = "decode: " + err.Error()
		*log = append(*log, att)
		return nil, false
	}
	*log = append(*log, att)
	if !att.OK {
		return nil, false
	}

	out := make([]Proposal, 0, len(body.Dados))
	for _, d := range body.Dados {
		integra := d.URLInteiroTeor
		if integra == "" {
			integra = d.URI
		}
		sigla := strings.TrimSpace(fmt.Sprintf("%s %s/%s",
			strings.TrimSpace(d.SiglaTipo), d.Numero.String(), d.Ano.String()))
		out = append(out, Proposal{
			ID:          d.ID.String(),
			SiglaNumero: sigla,
			Ano:         d.Ano.String(),
			Ementa:      d.Ementa,
			URLIntegra:  integra,
		})
	}
	return out, true
}

func cloneValues(v url.Values) url.Values {
	out := url.Values{}
	for k, vs := range v {
		for _, s := range vs {
			out.Add(k, s)
		}
	}
	return out
}

// ProposalToCase turns a proposal into an ad hoc case with a synthetic id.
// Such cases have no catalog rows; catalog.AutoMap can seed them.
func ProposalToCase(p Proposal) catalog.Case {
	title := p.SiglaNumero
	if title == "" {
		title = "Proposição " + p.ID
	}
	return catalog.Case{
		CaseID:          "camara_" + p.ID,
		CaseTitle:       title,
		CaseDescription: p.Ementa,
		SourceURL:       p.URLIntegra,
	}
}
