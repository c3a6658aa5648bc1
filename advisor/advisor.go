// Package advisor generates LLM-backed recommendations for stress test
// results.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	xfin "github.com/DhruvParmar10/XFIN"
)

const model = "gemini-2.5-pro"

// Advisor turns a stress analysis into a written recommendation report
// through a chat model.
type Advisor struct {
	client *genai.Client
	chat   *genai.Chat
}

// New creates an advisor and opens its chat session.
func New(ctx context.Context, client *genai.Client) (*Advisor, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
		You are a SEBI-aware financial analyst writing for Indian retail
		investors. You receive the result of a portfolio stress test and
		write a practical recommendations report.

		Be specific with numbers from the data you are given. Never invent
		holdings or prices. Always close with criteria for when to consult
		a registered investment advisor.
	`}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return nil, fmt.Errorf("starting advisor chat: %w", err)
	}
	return &Advisor{client: client, chat: chat}, nil
}

// Recommendations asks the model for a recommendations report on the given
// stress result. The response is markdown.
func (a *Advisor) Recommendations(ctx context.Context, sa xfin.ScenarioAnalysis) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: buildPrompt(sa)})
	if err != nil {
		return "", fmt.Errorf("asking advisor: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from advisor")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}

// buildPrompt lays out the stress result for the model.
func buildPrompt(sa xfin.ScenarioAnalysis) string {
	p := sa.Portfolio
	impact := sa.Impact
	rupeeImpact := p.TotalValue * impact.TotalImpact
	if rupeeImpact < 0 {
		rupeeImpact = -rupeeImpact
	}

	var comp []string
	for cat, w := range p.Composition {
		comp = append(comp, fmt.Sprintf("%s: %.1f%%", displayCategory(cat), w*100))
	}

	return fmt.Sprintf(`STRESS TESTING ANALYSIS REQUEST

SCENARIO: %s
SCENARIO DESCRIPTION: %s

PORTFOLIO DETAILS:
- Total Portfolio Value: ₹%.0f
- Value Calculation Method: %s
- Number of Holdings: %d
- Portfolio Composition: %s
- Concentration Risk: %.2f

STRESS TEST RESULTS:
- Portfolio Impact: %.1f%%
- Rupee Impact: ₹%.0f
- Risk Level: %s
- Expected Recovery Time: %.0f months
- VaR (95%%): %.1f%%

Please provide a comprehensive stress testing analysis report that includes:

1. IMMEDIATE RISK ASSESSMENT: Explain what this stress scenario means for this specific portfolio
2. FINANCIAL IMPACT ANALYSIS: Break down the potential losses and what they mean in real terms
3. IMMEDIATE ACTION ITEMS: Provide 3-5 specific, actionable steps the investor should take right now
4. PORTFOLIO REBALANCING SUGGESTIONS: Based on the current allocation, suggest specific changes
5. NEXT STEPS: Create a 30-day action plan with weekly milestones
6. WHEN TO SEEK HELP: Clear criteria for when to consult a financial advisor

Format the response in markdown with clear headers and bullet points. Be
specific with numbers and actionable advice. Consider this is for Indian
market investors.`,
		sa.Scenario.Name, sa.Scenario.Description,
		p.TotalValue, p.ValueSource, p.NumAssets, strings.Join(comp, ", "), p.ConcentrationRisk,
		impact.ImpactPercent, rupeeImpact, impact.RiskLevel, impact.RecoveryMonths, impact.VaR95*100)
}

func displayCategory(cat xfin.AssetCategory) string {
	words := strings.Split(string(cat), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Fallback is the static advice used when no model is reachable.
func Fallback(sa xfin.ScenarioAnalysis) string {
	return fmt.Sprintf(`## Basic Guidelines

- Portfolio Impact: %.1f%%
- Risk Level: %s
- Value Calculation: %s
- Consider diversifying your portfolio across different sectors
- Maintain an emergency fund of 6-12 months of expenses
- Review your risk tolerance and investment timeline
- Consider consulting with a SEBI registered investment advisor

For personalized advice, please contact a financial professional.
`, sa.Impact.ImpactPercent, sa.Impact.RiskLevel, sa.Portfolio.ValueSource)
}
