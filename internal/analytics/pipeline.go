package analytics

import (
	"context"
	"encoding/hex"
	"fmt"

	"orderanalytics/internal/model"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"
)

// Run validates the dataset and produces every report in one pass. The
// order-level reports are independent and computed concurrently; the ABC
// chain is built from the profit distribution. Any failure aborts the run
// and no partial report is returned.
func Run(ctx context.Context, orders []model.Order) (model.Report, error) {
	if err := ctx.Err(); err != nil {
		return model.Report{}, err
	}
	if err := Validate(orders); err != nil {
		return model.Report{}, err
	}

	var (
		tariffs      []model.WarehouseTariff
		products     []model.ProductStat
		summary      model.OrderSummary
		distribution []model.ProfitDistributionRow
	)

	g, gctx := errgroup.WithContext(ctx)
	stage := func(fn func() error) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn()
		})
	}
	stage(func() (err error) {
		tariffs, err = Tariffs(orders)
		return err
	})
	stage(func() (err error) {
		products, err = ProductStats(orders)
		return err
	})
	stage(func() (err error) {
		summary, err = OrderStats(orders)
		return err
	})
	stage(func() (err error) {
		distribution, err = ProfitDistribution(orders)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Report{}, err
	}

	report := model.Report{
		Tariffs:      tariffs,
		Products:     products,
		Orders:       summary,
		Distribution: distribution,
		ABC:          Categorize(Rank(distribution)),
	}

	fingerprint, err := Fingerprint(report)
	if err != nil {
		return model.Report{}, err
	}
	report.Fingerprint = fingerprint

	log.Debug().
		Int("orders", len(orders)).
		Int("products", len(products)).
		Int("abc_rows", len(report.ABC)).
		Str("fingerprint", fingerprint).
		Msg("analytics pipeline finished")

	return report, nil
}

// Fingerprint hashes the canonical JSON encoding of a report's tables. The
// Fingerprint field itself is excluded.
func Fingerprint(report model.Report) (string, error) {
	report.Fingerprint = ""
	payload, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
