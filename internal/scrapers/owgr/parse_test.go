package owgr

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"testing"

	"golfr-rankings/internal/components/telemetry"
	"golfr-rankings/internal/rankings"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/ranking_35_rows.html
var ranking35Rows []byte

func playerName(i int) string {
	return fmt.Sprintf("Player %02d", i+1)
}

// rankingPage renders a page with one ranking row per entry, an empty entry
// renders a row without a name cell.
func rankingPage(rows []string) string {
	var out strings.Builder
	out.WriteString("<html><body><table><tbody>\n")
	for i, name := range rows {
		if name == "" {
			fmt.Fprintf(&out, `<tr class="ranking-row"><td class="rank">%d</td></tr>`+"\n", i+1)
			continue
		}
		fmt.Fprintf(
			&out,
			`<tr class="ranking-row"><td class="rank">%d</td><td class="name">%s</td></tr>`+"\n",
			i+1, name,
		)
	}
	out.WriteString("</tbody></table></body></html>")
	return out.String()
}

func players(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = playerName(i)
	}
	return names
}

func TestParseRowCounts(t *testing.T) {
	testCases := []struct {
		rows     int
		accepted bool
		expected int
	}{
		{rows: 0, accepted: false, expected: 0},
		{rows: 1, accepted: false, expected: 1},
		{rows: 29, accepted: false, expected: 29},
		{rows: 30, accepted: true, expected: 30},
		{rows: 42, accepted: true, expected: 42},
		{rows: 50, accepted: true, expected: 50},
		{rows: 51, accepted: true, expected: 50},
		{rows: 120, accepted: true, expected: 50},
	}

	for _, test := range testCases {
		t.Run(fmt.Sprintf("%d rows", test.rows), func(t *testing.T) {
			names := players(test.rows)
			result := Parse(strings.NewReader(rankingPage(names)), DefaultSelectors(), &telemetry.Recorder{})

			require.Equal(t, test.accepted, result.Accepted())
			require.Equal(t, test.expected, result.Extracted)
			if !test.accepted {
				require.Equal(t, ReasonInsufficientRows, result.Reason)
				require.Error(t, result.Err)
				require.Nil(t, result.Names)
				return
			}

			if diff := cmp.Diff(rankings.List(names[:test.expected]), result.Names); diff != "" {
				t.Fatalf("names mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSkipsMalformedRow(t *testing.T) {
	recorder := &telemetry.Recorder{}
	result := Parse(bytes.NewReader(ranking35Rows), DefaultSelectors(), recorder)

	require.True(t, result.Accepted())
	require.Len(t, result.Names, 34)

	fallback := rankings.Fallback()
	expected := append(rankings.List{}, fallback[:12]...)
	expected = append(expected, fallback[13:35]...)
	if diff := cmp.Diff(expected, result.Names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, []string{report_parse_row}, recorder.Ids(telemetry.ReportWarning))
}

func TestParseMalformedRowsDoNotCountTowardsCap(t *testing.T) {
	names := players(60)
	names[3] = ""
	names[10] = ""

	result := Parse(strings.NewReader(rankingPage(names)), DefaultSelectors(), &telemetry.Recorder{})
	require.True(t, result.Accepted())
	require.Len(t, result.Names, rankings.MaxNames)
	require.Equal(t, playerName(2), result.Names[2])
	require.Equal(t, playerName(4), result.Names[3])
	require.Equal(t, playerName(51), result.Names[49])
}

func TestParseNameSelectorPreference(t *testing.T) {
	page := `<table>
		<tr class="ranking-row"><td class="name">Cell Name</td><td><a class="player-name">Link Name</a></td></tr>
		<tr class="ranking-row"><td><a class="player-name">Only Link</a></td></tr>
		<tr class="ranking-row"><td class="name">  </td><td><a class="player-name">Empty Cell</a></td></tr>
	</table>`

	sel := DefaultSelectors()
	result := Parse(strings.NewReader(page), sel, &telemetry.Recorder{})
	require.Equal(t, ReasonInsufficientRows, result.Reason)
	require.Equal(t, 3, result.Extracted)

	sel.Row = "tr"
	sel.Names = []string{"a.player-name", "td.name"}
	result = Parse(strings.NewReader(strings.Repeat(page, 10)), sel, &telemetry.Recorder{})
	require.True(t, result.Accepted())
	require.Equal(t, rankings.List{"Link Name", "Only Link", "Empty Cell"}, result.Names[:3])

	sel.Names = []string{"td.name", "a.player-name"}
	result = Parse(strings.NewReader(strings.Repeat(page, 10)), sel, &telemetry.Recorder{})
	require.True(t, result.Accepted())
	require.Equal(t, rankings.List{"Cell Name", "Only Link", "Empty Cell"}, result.Names[:3])
}

func TestParseUnrelatedMarkup(t *testing.T) {
	recorder := &telemetry.Recorder{}
	result := Parse(strings.NewReader("<html><body><p>Access denied</p></body></html>"), DefaultSelectors(), recorder)

	require.Equal(t, ReasonInsufficientRows, result.Reason)
	require.Equal(t, 0, result.Extracted)

	counts := recorder.Reports(telemetry.ReportCount)
	require.Len(t, counts, 1)
	require.Equal(t, int64(0), counts[0].Count)
}

func TestSelectorsValidate(t *testing.T) {
	require.NoError(t, DefaultSelectors().Validate())
	require.Error(t, Selectors{Row: "", Names: []string{"td"}}.Validate())
	require.Error(t, Selectors{Row: "tr[", Names: []string{"td"}}.Validate())
	require.Error(t, Selectors{Row: "tr", Names: nil}.Validate())
	require.Error(t, Selectors{Row: "tr", Names: []string{"td.name", "a:::"}}.Validate())
}

func TestParseBlankNameCellIsSkipped(t *testing.T) {
	names := players(31)
	page := strings.Replace(
		rankingPage(names),
		`<td class="name">Player 05</td>`,
		`<td class="name"> &nbsp; </td>`,
		1,
	)

	recorder := &telemetry.Recorder{}
	result := Parse(strings.NewReader(page), DefaultSelectors(), recorder)

	require.True(t, result.Accepted())
	require.Len(t, result.Names, 30)
	require.NotContains(t, result.Names, "")
	require.Equal(t, playerName(5), result.Names[4])
	require.Equal(t, []string{report_parse_row}, recorder.Ids(telemetry.ReportWarning))
}
