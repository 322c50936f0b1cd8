// Package commentary turns a computed scenario into analyst-style narrative
// via the configured LLM provider.
package commentary

import (
	"context"
	"fmt"
	"strings"

	"acquisition_calc/pkg/core/agent"
	"acquisition_calc/pkg/core/scenario"
	"acquisition_calc/pkg/core/utils"
)

// Role is the agent-config key commentary requests resolve against.
const Role = "commentary"

const systemPrompt = `You are a buy-side advisor for SBA-financed small business acquisitions.
Write concise markdown commentary on the deal scenario you are given: a short verdict,
the two or three numbers that drive it, and the main risk. Do not restate every metric.
No preamble, no closing pleasantries.`

// Commentary is the generated narrative in both transport formats.
type Commentary struct {
	ScenarioID string `json:"scenario_id"`
	Markdown   string `json:"markdown"`
	HTML       string `json:"html"`
	Provider   string `json:"provider"`
}

// Generator binds the agent manager to commentary generation.
type Generator struct {
	Manager *agent.Manager
}

func NewGenerator(mgr *agent.Manager) *Generator {
	return &Generator{Manager: mgr}
}

// Generate produces commentary for one scenario result.
func (g *Generator) Generate(ctx context.Context, r scenario.Result) (Commentary, error) {
	raw, err := g.Manager.ExecutePrompt(ctx, Role, BuildPrompt(r), systemPrompt, nil)
	if err != nil {
		return Commentary{}, fmt.Errorf("commentary generation: %w", err)
	}

	markdown := utils.CleanMarkdown(raw)
	html, err := utils.RenderHTML(markdown)
	if err != nil {
		return Commentary{}, err
	}

	return Commentary{
		ScenarioID: r.ID,
		Markdown:   markdown,
		HTML:       html,
		Provider:   g.Manager.ActiveProvider(),
	}, nil
}

// BuildPrompt flattens the scenario into the figures the model needs. Rates
// go out as percent; the model reads numbers the way a person does.
func BuildPrompt(r scenario.Result) string {
	var b strings.Builder
	m := r.Metrics

	fmt.Fprintf(&b, "Target revenue: $%.0f\n", r.TargetRevenue)
	fmt.Fprintf(&b, "Purchase price: $%.0f (%.2fx EBITDA of $%.0f)\n", r.Structure.PurchasePrice, safeMultiple(r), r.Structure.EBITDA)
	fmt.Fprintf(&b, "Cash required at close: $%.0f (shortfall $%.0f)\n", r.Structure.DownPaymentNeeded, r.Allocation.Shortfall)
	fmt.Fprintf(&b, "Your ownership: %.1f%%\n", r.Ownership.YourOwnership*100)
	fmt.Fprintf(&b, "Year-1 personal cash flow: $%.0f\n", r.CashFlow.PersonalNetCashFlow)

	fmt.Fprintf(&b, "DSCR: %.2f (%s)\n", m.DSCR.Value, m.DSCR.Label)
	fmt.Fprintf(&b, "Cash-on-cash: %.1f%% (%s)\n", m.CashOnCash.Value, m.CashOnCash.Label)
	fmt.Fprintf(&b, "Risk score: %d/10\n", m.RiskScore)
	fmt.Fprintf(&b, "MOIC: %.2fx, payback %.1f years", m.MOIC, m.Payback.Years)
	if !m.Payback.WithinHorizon {
		b.WriteString(" (beyond horizon)")
	}
	b.WriteString("\n")
	if m.IRR.Converged {
		fmt.Fprintf(&b, "IRR: %.1f%%\n", m.IRR.Rate*100)
	}
	fmt.Fprintf(&b, "WACC: %.1f%%, EVA: $%.0f\n", m.WACC*100, m.EVA)
	fmt.Fprintf(&b, "Stressed minimum ROI: %.1f%%\n", m.Stress.MinROI)

	if len(r.Warnings) > 0 {
		b.WriteString("Warnings:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}

func safeMultiple(r scenario.Result) float64 {
	if r.Structure.EBITDA == 0 {
		return 0
	}
	return r.Structure.PurchasePrice / r.Structure.EBITDA
}
