package export_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"

	"github.com/advisorkit/fna_app/internal/export"
)

func TestRenderXML(t *testing.T) {
	out, err := export.RenderXML(sampleDocument())
	assert.NoError(t, err)

	doc := etree.NewDocument()
	assert.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("financialNeedsAnalysis")
	if !assert.NotNil(t, root) {
		return
	}
	assert.Equal(t, "2026-03-10T12:00:00Z", root.SelectAttrValue("generatedAt", ""))

	client := root.SelectElement("client")
	if assert.NotNil(t, client) {
		assert.Equal(t, "Pat Morgan", client.SelectElement("name").Text())
		assert.Equal(t, "pat@example.com", client.SelectElement("email").Text())
	}

	summary := root.SelectElement("summary")
	if assert.NotNil(t, summary) {
		figures := summary.SelectElements("figure")
		assert.Len(t, figures, 2)
		assert.Equal(t, "Total Assets", figures[0].SelectAttrValue("label", ""))
		assert.Equal(t, "250000.00", figures[0].Text())
	}

	assets := root.SelectElement("assets")
	if assert.NotNil(t, assets) {
		rows := assets.SelectElements("asset")
		assert.Len(t, rows, 2)
		assert.Equal(t, "5000.00", rows[0].SelectElement("presentValue").Text())
		// N/A rows carry the flag and no value elements.
		assert.Equal(t, "false", rows[1].SelectAttrValue("applicable", ""))
		assert.Nil(t, rows[1].SelectElement("presentValue"))
	}

	liabilities := root.SelectElement("liabilities")
	if assert.NotNil(t, liabilities) {
		assert.Equal(t, "200000.00", liabilities.SelectAttrValue("total", ""))
		row := liabilities.SelectElement("liability")
		if assert.NotNil(t, row) {
			assert.Equal(t, "MORTGAGE", row.SelectAttrValue("type", ""))
			assert.Equal(t, "6.50", row.SelectElement("ratePercent").Text())
		}
	}

	goals := root.SelectElement("goals")
	if assert.NotNil(t, goals) {
		assert.Equal(t, "428000.00", goals.SelectAttrValue("totalRequirement", ""))
	}

	recs := root.SelectElement("recommendations")
	if assert.NotNil(t, recs) {
		items := recs.SelectElements("recommendation")
		assert.Len(t, items, 2)
		assert.Equal(t, "warn", items[0].SelectAttrValue("severity", ""))
	}
}
