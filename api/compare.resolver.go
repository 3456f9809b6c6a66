package api

import (
	"context"
	"fmt"
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/calculator"
	"github.com/rbeaulieu03/portfolio-simulator/internal/db/models/postgres/public/model"
	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"
	"github.com/rbeaulieu03/portfolio-simulator/internal/logger"
	"github.com/rbeaulieu03/portfolio-simulator/internal/report"
	"github.com/rbeaulieu03/portfolio-simulator/internal/simulation"

	"github.com/gin-gonic/gin"
)

type compareRequest struct {
	Ticker                string  `json:"ticker"`
	StartDate             string  `json:"startDate"`
	EndDate               string  `json:"endDate"`
	TotalCapital          float64 `json:"totalCapital"`
	ContributionFrequency string  `json:"contributionFrequency"`
}

type strategyLegJson struct {
	Trajectory []trajectoryPointJson `json:"trajectory"`
	CashFlows  []cashFlowJson        `json:"cashFlows"`
	Metrics    calculator.Metrics    `json:"metrics"`
	Notes      []domain.Note         `json:"notes"`
}

type differencePointJson struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type compareResponse struct {
	Ticker     string                `json:"ticker"`
	LumpSum    strategyLegJson       `json:"lumpSum"`
	Dca        strategyLegJson       `json:"dca"`
	Difference []differencePointJson `json:"difference"`
}

// compare runs lump sum and DCA over the same window and pairs the
// results. Both legs simulate against the same series, so the date
// indexes always line up unless something upstream broke.
func (m ApiHandler) compare(c *gin.Context) {
	ctx := context.Background()

	var requestBody compareRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	lumpSumConfig, err := configFromRequest(simulateRequest{
		Ticker:       requestBody.Ticker,
		StartDate:    requestBody.StartDate,
		EndDate:      requestBody.EndDate,
		TotalCapital: requestBody.TotalCapital,
	}, simulation.StrategyKind_LumpSum)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	dcaConfig, err := configFromRequest(simulateRequest{
		Ticker:                requestBody.Ticker,
		StartDate:             requestBody.StartDate,
		EndDate:               requestBody.EndDate,
		TotalCapital:          requestBody.TotalCapital,
		ContributionFrequency: requestBody.ContributionFrequency,
	}, simulation.StrategyKind_DCA)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	series, seriesNotes, err := m.PriceService.GetPriceSeries(ctx, requestBody.Ticker, lumpSumConfig.StartDate, lumpSumConfig.EndDate)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	lumpSumLeg, err := runLeg(series, *lumpSumConfig)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	dcaLeg, err := runLeg(series, *dcaConfig)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	comparison, err := report.New(*lumpSumLeg, *dcaLeg)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	m.saveRequestHistory(requestBody, comparison)

	difference := make([]differencePointJson, 0, len(comparison.Difference))
	for _, d := range comparison.Difference {
		difference = append(difference, differencePointJson{
			Date:  d.Date.Format(time.DateOnly),
			Value: d.Value,
		})
	}

	c.JSON(200, compareResponse{
		Ticker:     requestBody.Ticker,
		LumpSum:    legToJson(comparison.LumpSum, seriesNotes),
		Dca:        legToJson(comparison.Dca, seriesNotes),
		Difference: difference,
	})
}

func runLeg(series *domain.PriceSeries, config simulation.StrategyConfig) (*report.StrategyLeg, error) {
	result, err := simulation.Simulate(series, config)
	if err != nil {
		return nil, err
	}
	metrics, err := calculator.CalculateMetrics(result.Trajectory)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate metrics for %s: %w", config.Kind, err)
	}
	return &report.StrategyLeg{
		Result:  *result,
		Metrics: *metrics,
	}, nil
}

func legToJson(leg report.StrategyLeg, seriesNotes []domain.Note) strategyLegJson {
	return strategyLegJson{
		Trajectory: trajectoryToJson(leg.Result.Trajectory),
		CashFlows:  cashFlowsToJson(leg.Result.CashFlows),
		Metrics:    leg.Metrics,
		Notes:      append(seriesNotes, leg.Result.Notes...),
	}
}

// request history is best effort - a failed insert should never fail
// the comparison itself
func (m ApiHandler) saveRequestHistory(requestBody compareRequest, comparison *report.ComparisonReport) {
	startDate, _ := time.Parse(time.DateOnly, requestBody.StartDate)
	endDate, _ := time.Parse(time.DateOnly, requestBody.EndDate)

	lumpSumFinal := comparison.LumpSum.Metrics.FinalValue
	dcaFinal := comparison.Dca.Metrics.FinalValue
	lumpSumReturn := comparison.LumpSum.Metrics.TotalReturnPct
	dcaReturn := comparison.Dca.Metrics.TotalReturnPct

	_, err := m.SimulationRequestRepository.Add(m.Db, model.SimulationRequest{
		Symbol:                requestBody.Ticker,
		StartDate:             startDate,
		EndDate:               endDate,
		TotalCapital:          requestBody.TotalCapital,
		ContributionFrequency: requestBody.ContributionFrequency,
		LumpSumFinalValue:     &lumpSumFinal,
		DcaFinalValue:         &dcaFinal,
		LumpSumReturnPct:      &lumpSumReturn,
		DcaReturnPct:          &dcaReturn,
	})
	if err != nil {
		logger.Error(fmt.Errorf("failed to save simulation request history: %w", err))
	}
}
