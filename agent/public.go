package agent

import (
	"context"

	finance "github.com/MuradHasanov07/Financial-App"
	"github.com/MuradHasanov07/Financial-App/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his spending habits, his budget and the
			performance of his portfolio of assets.

			Devise a plan of questions to ask to each expert and come up with the best response
			to the user's request. Check the user's actual figures before giving advice.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates an expert grounded by web search for market questions.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		very well aware of financial products, exchange rates, crypto and stock markets,
		and the latest news about them.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market analyst. You can search and find anything related to
			financial markets, companies, crypto currencies and exchange rates. You leverage
			Google Search to ground your assertions in solid truth, and you know how to
			relate the latest news to the user's request.
				`}}},
		},
	}
}

// NewAccountant creates the expert in charge of reading the user's own records.
func NewAccountant(transactions *finance.TransactionStore, assets *finance.AssetStore) *Expert {
	lib := []Function{
		balanceFunc(transactions),
		portfolioFunc(assets),
		budgetFunc(transactions),
	}

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He has read access to the user's own ledger
		and portfolio. He can report the user's balance, monthly spending, budget status
		and the holdings with their profit figures.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's personal finance records.
				You know how to use the Tools to extract relevant information about the
				user's balance, spending, budget and portfolio.
				You are part of a team of experts; yours is everything recorded by the user.
				Pardon their approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// respond builds a FunctionResponse from a report or an error.
func respond(id, name, output string, err error) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
	if err != nil {
		resp.Response["error"] = err.Error()
		return resp
	}
	resp.Response["output"] = output
	return resp
}

func balanceFunc(store *finance.TransactionStore) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Balance",
			Description: `Balance reports the user's all-time income, expense and net balance,
			followed by the income and expense of the last months.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "Markdown tables with the overall balance and the monthly breakdown.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			output := renderer.Balance(store.Balance()) + "\n" + renderer.MonthlyBalances(store.MonthlyBalances(6))
			return respond(id, "Balance", output, nil)
		},
	}
}

func portfolioFunc(store *finance.AssetStore) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Portfolio",
			Description: `Portfolio reports the user's holdings with their quantity,
			current value, profit figures, and the portfolio totals.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of all the user's holdings and their totals.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			output := renderer.Portfolio(store.Assets(),
				store.TotalPortfolioValue(),
				store.TotalInvestment(),
				store.TotalProfitLoss(),
				store.TotalProfitLossPercent())
			return respond(id, "Portfolio", output, nil)
		},
	}
}

func budgetFunc(store *finance.TransactionStore) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Budget",
			Description: `Budget reports the user's monthly spending limit and how much of it
			was used this month.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table with the limit, spent amount and remaining budget.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			settings := finance.LoadBudgetSettings(store.Storage())
			return respond(id, "Budget", renderer.BudgetStatus(settings.Status(store)), nil)
		},
	}
}
