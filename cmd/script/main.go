package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/cmd"
	"github.com/rbeaulieu03/portfolio-simulator/internal/calculator"
	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"
	"github.com/rbeaulieu03/portfolio-simulator/internal/report"
	"github.com/rbeaulieu03/portfolio-simulator/internal/simulation"
	"github.com/rbeaulieu03/portfolio-simulator/internal/util"

	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "simulator",
	Short: "lump sum vs DCA simulation tools",
}

var ingestCmd = &cobra.Command{
	Use:   "ingest [ticker]",
	Short: "fetch and store adjusted price history for a ticker",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		return handler.PriceService.Ingest(context.Background(), args[0], nil)
	},
}

var (
	compareTicker    string
	compareCsv       string
	compareStart     string
	compareEnd       string
	compareCapital   float64
	compareFrequency string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "run a lump sum vs DCA comparison and print the report",
	RunE: func(c *cobra.Command, args []string) error {
		startDate, err := time.Parse(time.DateOnly, compareStart)
		if err != nil {
			return fmt.Errorf("could not parse start date: %w", err)
		}
		endDate, err := time.Parse(time.DateOnly, compareEnd)
		if err != nil {
			return fmt.Errorf("could not parse end date: %w", err)
		}
		frequency, err := simulation.NewFrequency(compareFrequency)
		if err != nil {
			return err
		}

		var series *domain.PriceSeries
		if compareCsv != "" {
			series, err = seriesFromCsv(compareCsv, compareTicker)
		} else {
			series, err = seriesFromDb(compareTicker, startDate, endDate)
		}
		if err != nil {
			return err
		}

		lumpSumLeg, err := runLeg(series, simulation.StrategyConfig{
			Kind:         simulation.StrategyKind_LumpSum,
			StartDate:    startDate,
			EndDate:      endDate,
			TotalCapital: compareCapital,
		})
		if err != nil {
			return err
		}
		dcaLeg, err := runLeg(series, simulation.StrategyConfig{
			Kind:                  simulation.StrategyKind_DCA,
			StartDate:             startDate,
			EndDate:               endDate,
			TotalCapital:          compareCapital,
			ContributionFrequency: *frequency,
		})
		if err != nil {
			return err
		}

		comparison, err := report.New(*lumpSumLeg, *dcaLeg)
		if err != nil {
			return err
		}

		util.Pprint(comparison)
		return nil
	},
}

func runLeg(series *domain.PriceSeries, config simulation.StrategyConfig) (*report.StrategyLeg, error) {
	result, err := simulation.Simulate(series, config)
	if err != nil {
		return nil, err
	}
	metrics, err := calculator.CalculateMetrics(result.Trajectory)
	if err != nil {
		return nil, err
	}
	return &report.StrategyLeg{
		Result:  *result,
		Metrics: *metrics,
	}, nil
}

type priceRow struct {
	Date   string  `csv:"date"`
	Symbol string  `csv:"symbol"`
	Price  float64 `csv:"price"`
}

func seriesFromCsv(path, ticker string) (*domain.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open csv: %w", err)
	}
	defer f.Close()

	rows := []priceRow{}
	err = gocsv.UnmarshalFile(f, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not parse csv: %w", err)
	}

	points := []domain.PricePoint{}
	for _, row := range rows {
		if row.Symbol != "" && row.Symbol != ticker {
			continue
		}
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("could not parse csv date %s: %w", row.Date, err)
		}
		points = append(points, domain.PricePoint{
			Date:  date,
			Price: row.Price,
		})
	}

	return domain.NewPriceSeries(ticker, points)
}

func seriesFromDb(ticker string, start, end time.Time) (*domain.PriceSeries, error) {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		return nil, err
	}
	defer cmd.CloseDependencies(handler)

	series, _, err := handler.PriceService.GetPriceSeries(context.Background(), ticker, start, end)
	return series, err
}

func main() {
	compareCmd.Flags().StringVar(&compareTicker, "ticker", "SPY", "instrument symbol")
	compareCmd.Flags().StringVar(&compareCsv, "csv", "", "read prices from a csv file instead of the db")
	compareCmd.Flags().StringVar(&compareStart, "start", "", "start date (YYYY-MM-DD)")
	compareCmd.Flags().StringVar(&compareEnd, "end", "", "end date (YYYY-MM-DD)")
	compareCmd.Flags().Float64Var(&compareCapital, "capital", 10000, "total capital to invest")
	compareCmd.Flags().StringVar(&compareFrequency, "frequency", "monthly", "DCA contribution frequency")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(compareCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
