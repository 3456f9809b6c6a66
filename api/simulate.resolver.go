package api

import (
	"context"
	"fmt"
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/calculator"
	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"
	"github.com/rbeaulieu03/portfolio-simulator/internal/simulation"

	"github.com/gin-gonic/gin"
)

type simulateRequest struct {
	Ticker                string  `json:"ticker"`
	Strategy              string  `json:"strategy"`
	StartDate             string  `json:"startDate"`
	EndDate               string  `json:"endDate"`
	TotalCapital          float64 `json:"totalCapital"`
	ContributionFrequency string  `json:"contributionFrequency"`
}

type trajectoryPointJson struct {
	Date               string  `json:"date"`
	TotalSharesHeld    float64 `json:"totalSharesHeld"`
	MarketValue        float64 `json:"marketValue"`
	CumulativeInvested float64 `json:"cumulativeInvested"`
}

type cashFlowJson struct {
	Date           string  `json:"date"`
	AmountInvested float64 `json:"amountInvested"`
	SharesAcquired float64 `json:"sharesAcquired"`
}

type simulateResponse struct {
	Ticker     string                `json:"ticker"`
	Strategy   string                `json:"strategy"`
	Trajectory []trajectoryPointJson `json:"trajectory"`
	CashFlows  []cashFlowJson        `json:"cashFlows"`
	Metrics    calculator.Metrics    `json:"metrics"`
	Notes      []domain.Note         `json:"notes"`
}

func (m ApiHandler) simulate(c *gin.Context) {
	ctx := context.Background()

	var requestBody simulateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	kind, err := simulation.NewStrategyKind(requestBody.Strategy)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	config, err := configFromRequest(requestBody, *kind)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	series, seriesNotes, err := m.PriceService.GetPriceSeries(ctx, requestBody.Ticker, config.StartDate, config.EndDate)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	result, err := simulation.Simulate(series, *config)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	metrics, err := calculator.CalculateMetrics(result.Trajectory)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to calculate metrics: %w", err), c)
		return
	}

	c.JSON(200, simulateResponse{
		Ticker:     requestBody.Ticker,
		Strategy:   string(*kind),
		Trajectory: trajectoryToJson(result.Trajectory),
		CashFlows:  cashFlowsToJson(result.CashFlows),
		Metrics:    *metrics,
		Notes:      append(seriesNotes, result.Notes...),
	})
}

func configFromRequest(requestBody simulateRequest, kind simulation.StrategyKind) (*simulation.StrategyConfig, error) {
	startDate, err := time.Parse(time.DateOnly, requestBody.StartDate)
	if err != nil {
		return nil, fmt.Errorf("could not parse start date: %w", err)
	}
	endDate, err := time.Parse(time.DateOnly, requestBody.EndDate)
	if err != nil {
		return nil, fmt.Errorf("could not parse end date: %w", err)
	}

	config := simulation.StrategyConfig{
		Kind:         kind,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalCapital: requestBody.TotalCapital,
	}

	if kind == simulation.StrategyKind_DCA {
		frequency, err := simulation.NewFrequency(requestBody.ContributionFrequency)
		if err != nil {
			return nil, err
		}
		config.ContributionFrequency = *frequency
	}

	return &config, nil
}

func trajectoryToJson(trajectory domain.Trajectory) []trajectoryPointJson {
	out := make([]trajectoryPointJson, 0, len(trajectory))
	for _, p := range trajectory {
		out = append(out, trajectoryPointJson{
			Date:               p.Date.Format(time.DateOnly),
			TotalSharesHeld:    p.TotalSharesHeld,
			MarketValue:        p.MarketValue,
			CumulativeInvested: p.CumulativeInvested,
		})
	}
	return out
}

func cashFlowsToJson(cashFlows []domain.CashFlowEvent) []cashFlowJson {
	out := make([]cashFlowJson, 0, len(cashFlows))
	for _, cf := range cashFlows {
		out = append(out, cashFlowJson{
			Date:           cf.Date.Format(time.DateOnly),
			AmountInvested: cf.AmountInvested,
			SharesAcquired: cf.SharesAcquired,
		})
	}
	return out
}
