package services

import (
	"context"

	"github.com/advisorkit/fna_app/internal/core/domain"
)

// ReportSvcFacade composes the client-facing analysis report.
type ReportSvcFacade interface {
	// ComposeReport assembles the full report document for a client from
	// the current plan snapshot.
	ComposeReport(ctx context.Context, clientID string) (*domain.ReportDocument, error)
}
