package export

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/advisorkit/fna_app/internal/core/domain"
)

// RenderXML produces the document-interchange XML rendition of a report.
func RenderXML(doc *domain.ReportDocument) ([]byte, error) {
	xmlDoc := etree.NewDocument()
	xmlDoc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := xmlDoc.CreateElement("financialNeedsAnalysis")
	root.CreateAttr("generatedAt", doc.GeneratedAt.Format(time.RFC3339))

	client := root.CreateElement("client")
	client.CreateElement("name").SetText(doc.Cover.ClientName)
	if doc.Client.Email != "" {
		client.CreateElement("email").SetText(doc.Client.Email)
	}
	if doc.Client.City != "" {
		client.CreateElement("city").SetText(doc.Client.City)
	}
	if doc.Client.State != "" {
		client.CreateElement("state").SetText(doc.Client.State)
	}

	facts := root.CreateElement("facts")
	for _, row := range doc.Facts.Rows {
		fact := facts.CreateElement("fact")
		fact.CreateAttr("label", row.Label)
		fact.SetText(row.Value)
	}

	summary := root.CreateElement("summary")
	for _, cell := range doc.Summary.Cells {
		kpi := summary.CreateElement("figure")
		kpi.CreateAttr("label", cell.Label)
		kpi.SetText(cell.Value.StringFixed(2))
	}

	assets := root.CreateElement("assets")
	assets.CreateAttr("totalPresent", doc.Assets.TotalPresent.StringFixed(2))
	assets.CreateAttr("totalProjected", doc.Assets.TotalProjected.StringFixed(2))
	for _, row := range doc.Assets.Rows {
		asset := assets.CreateElement("asset")
		asset.CreateAttr("label", row.Label)
		if row.NotApplicable {
			asset.CreateAttr("applicable", "false")
			continue
		}
		asset.CreateElement("presentValue").SetText(row.PresentValue.StringFixed(2))
		asset.CreateElement("projectedValue").SetText(row.ProjectedValue.StringFixed(2))
		if row.Notes != "" {
			asset.CreateElement("notes").SetText(row.Notes)
		}
	}

	liabilities := root.CreateElement("liabilities")
	liabilities.CreateAttr("total", doc.Liabilities.Total.StringFixed(2))
	for _, row := range doc.Liabilities.Rows {
		l := liabilities.CreateElement("liability")
		l.CreateAttr("type", string(row.Type))
		if row.Description != "" {
			l.CreateElement("description").SetText(row.Description)
		}
		if row.Lender != "" {
			l.CreateElement("lender").SetText(row.Lender)
		}
		l.CreateElement("balance").SetText(row.Balance.StringFixed(2))
		if row.RatePercent != nil {
			l.CreateElement("ratePercent").SetText(row.RatePercent.StringFixed(2))
		}
	}

	goals := root.CreateElement("goals")
	goals.CreateAttr("totalRequirement", doc.Goals.TotalRequirement.StringFixed(2))
	for _, row := range doc.Goals.Rows {
		g := goals.CreateElement("goal")
		g.CreateAttr("label", row.Label)
		g.SetText(row.Amount.StringFixed(2))
	}

	recs := root.CreateElement("recommendations")
	for _, item := range doc.Recommendations.Items {
		rec := recs.CreateElement("recommendation")
		rec.CreateAttr("severity", string(item.Severity))
		rec.SetText(item.Message)
	}

	xmlDoc.Indent(2)
	out, err := xmlDoc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report XML: %w", err)
	}
	return out, nil
}
