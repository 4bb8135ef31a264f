package service

import (
	"context"
	"fmt"

	"orderanalytics/internal/analytics"
	"orderanalytics/internal/model"
	"orderanalytics/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Report sources
const (
	SourceRequest = "request"
	SourceStore   = "store"
	SourceFile    = "file"
)

// Publisher receives an event after every successful report run
type Publisher interface {
	Publish(event model.ReportEvent)
}

type ReportService interface {
	Generate(ctx context.Context, orders []model.Order, source string) (model.Report, error)
	GenerateFromStore(ctx context.Context) (model.Report, error)
}

type reportService struct {
	orders    repository.OrderRepository
	publisher Publisher
}

// NewReportService wires the pipeline to the order store. publisher may be nil.
func NewReportService(orders repository.OrderRepository, publisher Publisher) ReportService {
	return &reportService{orders: orders, publisher: publisher}
}

func (s *reportService) Generate(ctx context.Context, orders []model.Order, source string) (model.Report, error) {
	report, err := analytics.Run(ctx, orders)
	if err != nil {
		log.Warn().Err(err).Str("source", source).Int("orders", len(orders)).Msg("report run failed")
		return model.Report{}, err
	}

	event := model.ReportEvent{
		Type:        model.EventReportGenerated,
		Source:      source,
		Orders:      len(orders),
		Warehouses:  len(lo.UniqBy(orders, func(o model.Order) string { return o.WarehouseName })),
		Products:    len(report.Products),
		Fingerprint: report.Fingerprint,
	}
	log.Info().
		Str("source", source).
		Int("orders", event.Orders).
		Int("warehouses", event.Warehouses).
		Int("products", event.Products).
		Str("fingerprint", report.Fingerprint).
		Msg("report generated")

	if s.publisher != nil {
		s.publisher.Publish(event)
	}
	return report, nil
}

func (s *reportService) GenerateFromStore(ctx context.Context) (model.Report, error) {
	if s.orders == nil {
		return model.Report{}, fmt.Errorf("order store is not configured")
	}
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return model.Report{}, err
	}
	return s.Generate(ctx, orders, SourceStore)
}
