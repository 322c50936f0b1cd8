// Command scenarios runs a batch of acquisition scenarios from the terminal:
// read a scenario file (JSON or Hjson), compute, print the comparison table,
// optionally dump the full results as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"acquisition_calc/pkg/core/deal"
	"acquisition_calc/pkg/core/funding"
	"acquisition_calc/pkg/core/rates"
	"acquisition_calc/pkg/core/scenario"
	"acquisition_calc/pkg/core/utils"
)

func main() {
	var (
		file     = flag.String("f", "", "scenario file (json or hjson)")
		revenues = flag.String("revenues", "", "comma-separated target revenues, overrides the file")
		ratesURL = flag.String("rates", "", "optional rate sheet URL to refresh market rates from")
		outFile  = flag.String("out", "", "write full results as JSON to this file")
	)
	flag.Parse()
	godotenv.Load()

	input, err := loadInput(*file, *revenues)
	if err != nil {
		logrus.WithError(err).Fatal("cannot build scenario input")
	}

	if *ratesURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		market, err := rates.Fetch(ctx, *ratesURL)
		cancel()
		if err != nil {
			logrus.WithError(err).Warn("rate refresh failed, using defaults")
		} else {
			if input.Assumptions == nil {
				a := deal.DefaultAssumptions()
				input.Assumptions = &a
			}
			if input.Sources == nil {
				input.Sources = funding.DefaultSources()
			}
			market.Apply(input.Assumptions, input.Sources)
			logrus.WithFields(logrus.Fields{
				"sba":   market.SBALoan,
				"prime": market.Prime,
			}).Info("market rates refreshed")
		}
	}

	results := scenario.Compute(input)
	printTable(results)

	for _, r := range results {
		for _, w := range r.Warnings {
			logrus.WithField("revenue", r.TargetRevenue).Warn(w)
		}
	}

	if *outFile != "" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			logrus.WithError(err).Fatal("marshal results")
		}
		if err := os.WriteFile(*outFile, data, 0644); err != nil {
			logrus.WithError(err).Fatal("write results")
		}
		logrus.WithField("path", *outFile).Info("results written")
	}
}

func loadInput(path, revenueList string) (scenario.Input, error) {
	var input scenario.Input

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return input, fmt.Errorf("read scenario file: %w", err)
		}
		if _, err := utils.SmartParse(string(raw), &input); err != nil {
			return input, fmt.Errorf("parse scenario file: %w", err)
		}
	}

	if revenueList != "" {
		input.TargetRevenues = nil
		for _, part := range strings.Split(revenueList, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return input, fmt.Errorf("bad revenue %q: %w", part, err)
			}
			input.TargetRevenues = append(input.TargetRevenues, v)
		}
	}

	if len(input.TargetRevenues) == 0 {
		return input, fmt.Errorf("no target revenues given (use -f or -revenues)")
	}
	return input, nil
}

func printTable(results []scenario.Result) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REVENUE\tPRICE\tCASH NEEDED\tDSCR\tCOC%\tRISK\tMOIC\tPAYBACK\tOWNERSHIP")
	for _, r := range results {
		m := r.Metrics
		payback := fmt.Sprintf("%.1fy", m.Payback.Years)
		if !m.Payback.WithinHorizon {
			payback = ">" + payback
		}
		fmt.Fprintf(w, "$%.0f\t$%.0f\t$%.0f\t%.2f\t%.1f\t%d/10\t%.2fx\t%s\t%.1f%%\n",
			r.TargetRevenue,
			r.Structure.PurchasePrice,
			r.Structure.DownPaymentNeeded,
			m.DSCR.Value,
			m.CashOnCash.Value,
			m.RiskScore,
			m.MOIC,
			payback,
			r.Ownership.YourOwnership*100,
		)
	}
	w.Flush()
}
