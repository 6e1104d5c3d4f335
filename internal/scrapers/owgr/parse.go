package owgr

import (
	"fmt"
	"io"

	"golfr-rankings/internal/components/telemetry"
	"golfr-rankings/internal/rankings"
	"golfr-rankings/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	report_parse_row       = "parse.row"
	report_parse_extracted = "parse.extracted"
)

func extractName(row *goquery.Selection, names []string) string {
	for _, selector := range names {
		name := htmlutil.Text(row.Find(selector).First())
		if name != "" {
			return name
		}
	}
	return ""
}

// Parse extracts player names from a rankings page in document order.
// Rows without a name are skipped, at most rankings.MaxNames names are kept
// and the result is only accepted with at least rankings.MinAcceptedNames.
func Parse(body io.Reader, sel Selectors, tel telemetry.API) Result {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return failed(ReasonParse, fmt.Errorf("parse html: %w", err))
	}

	var names rankings.List
	rows := doc.Find(sel.Row)
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		name := extractName(row, sel.Names)
		if name == "" {
			tel.ReportWarning(report_parse_row, fmt.Errorf("row %d has no player name", i))
			return true
		}
		names = append(names, name)
		return len(names) < rankings.MaxNames
	})

	tel.ReportCount(report_parse_extracted, int64(len(names)))

	if len(names) < rankings.MinAcceptedNames {
		return Result{
			Extracted: len(names),
			Reason:    ReasonInsufficientRows,
			Err: fmt.Errorf(
				"found %d names in %d rows, need at least %d",
				len(names), rows.Length(), rankings.MinAcceptedNames,
			),
		}
	}

	return Result{
		Names:     names,
		Extracted: len(names),
	}
}
