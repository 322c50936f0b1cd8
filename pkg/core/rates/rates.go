// Package rates maintains the market interest rates behind the funding
// profiles: a static baseline plus an HTML table fetcher for refreshing them
// from a published rate sheet.
package rates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"acquisition_calc/pkg/core/deal"
	"acquisition_calc/pkg/core/funding"
)

// Market is one snapshot of financing rates, all decimal fractions.
type Market struct {
	Prime        float64   `json:"prime"`
	SBALoan      float64   `json:"sba_loan"`
	SellerNote   float64   `json:"seller_note"`
	HomeEquity   float64   `json:"home_equity"`
	PersonalLoan float64   `json:"personal_loan"`
	AsOf         time.Time `json:"as_of"`
	Source       string    `json:"source"`
}

// Defaults is the June 2025 baseline the model ships with. SBA 7(a) prices at
// prime plus spread; the personal loan rate assumes a secured line.
func Defaults() Market {
	return Market{
		Prime:        0.075,
		SBALoan:      0.115,
		SellerNote:   0.08,
		HomeEquity:   0.08,
		PersonalLoan: 0.028,
		Source:       "static",
	}
}

// Apply pushes the snapshot into a scenario's pricing inputs: the deal-side
// rates on the assumptions, and per-source rate overrides for the debt kinds
// the snapshot covers. Sources absent from the set are left alone.
func (m Market) Apply(a *deal.Assumptions, sources funding.SourceSet) {
	if a != nil {
		a.SBAInterestRate = m.SBALoan
		a.SellerInterestRate = m.SellerNote
	}
	for kind, rate := range map[funding.Kind]float64{
		funding.KindSBALoan:      m.SBALoan,
		funding.KindSellerNote:   m.SellerNote,
		funding.KindHomeEquity:   m.HomeEquity,
		funding.KindPersonalLoan: m.PersonalLoan,
	} {
		src, ok := sources[kind]
		if !ok {
			continue
		}
		src.Rate = rate
		sources[kind] = src
	}
}

// ParseTable extracts rate rows from an HTML rate sheet. Expects two-column
// table rows, product name then rate; extra columns are ignored. Returns the
// normalized name to rate mapping.
func ParseTable(html string) (map[string]float64, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("rate sheet not parseable: %w", err)
	}

	found := make(map[string]float64)
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		name := strings.ToLower(strings.TrimSpace(cells.Eq(0).Text()))
		rate, ok := parsePercent(cells.Eq(1).Text())
		if !ok || name == "" {
			return
		}
		found[name] = rate
	})
	if len(found) == 0 {
		return nil, fmt.Errorf("no rate rows found in sheet")
	}
	return found, nil
}

// Fetch pulls a rate sheet and overlays whatever it recognizes onto the
// static baseline. Unrecognized or missing products keep their defaults, so a
// partial sheet never zeroes a rate.
func Fetch(ctx context.Context, url string) (Market, error) {
	m := Defaults()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return m, fmt.Errorf("rate sheet request: %w", err)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return m, fmt.Errorf("rate sheet fetch: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return m, fmt.Errorf("rate sheet fetch: status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return m, fmt.Errorf("rate sheet read: %w", err)
	}

	found, err := ParseTable(string(body))
	if err != nil {
		return m, err
	}

	m = overlay(m, found)
	m.AsOf = time.Now().UTC()
	m.Source = url
	return m, nil
}

func overlay(m Market, found map[string]float64) Market {
	for name, rate := range found {
		switch {
		case strings.Contains(name, "prime"):
			m.Prime = rate
		case strings.Contains(name, "sba"):
			m.SBALoan = rate
		case strings.Contains(name, "seller"):
			m.SellerNote = rate
		case strings.Contains(name, "home equity"), strings.Contains(name, "heloc"):
			m.HomeEquity = rate
		case strings.Contains(name, "personal"):
			m.PersonalLoan = rate
		}
	}
	return m
}

// parsePercent reads "11.50%" or "11.5" style cells into a decimal fraction.
func parsePercent(text string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%"))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v / 100, true
}
