package samvidha

import (
	"bytes"
	"context"

	"samvidha-backend/lib/attendance"
	"samvidha-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// CourseContent fetches the attendance page and returns its table rows
// plus the raw page text, which the aggregator uses as a fallback when
// the table markup yields nothing.
func (c *Client) CourseContent(ctx context.Context) ([]attendance.Row, string, error) {
	ctx, span := tracer.Start(ctx, "client:CourseContent")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParam("action", "course_content").
		Get("/home")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch course content")
		return nil, "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, "", err
	}

	rows := rowsFromDocument(doc)
	span.SetAttributes(attribute.Int("rows", len(rows)))

	return rows, doc.Text(), nil
}

func rowsFromDocument(doc *goquery.Document) []attendance.Row {
	var rows []attendance.Row
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, htmlutil.CleanText(htmlutil.GetText(td.Nodes[0])))
		})
		rows = append(rows, attendance.Row{
			Cells:    cells,
			FullText: htmlutil.CleanText(htmlutil.GetText(tr.Nodes[0])),
		})
	})
	return rows
}
