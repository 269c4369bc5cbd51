package report

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/logdata/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRowsUseFixedUserColumn(t *testing.T) {
	output, err := Render(application.Report{
		Mode: application.SelectUsers,
		Rows: []application.ReportRow{
			{Username: "alice", Seconds: 61, Known: true},
			{Username: "nobody"},
		},
	}, RenderOptions{})

	require.NoError(t, err)
	lines := strings.Split(output, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "alice                 1 min 1 sec", lines[0])
	assert.Equal(t, "nobody                0 seconds", lines[1])
}

func TestRenderCutsLongUsernames(t *testing.T) {
	output, err := Render(application.Report{
		Rows: []application.ReportRow{{Username: "a-very-long-username-here", Seconds: 7200, Known: true}},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Equal(t, "a-very-long-userna    2 hours", output)
}

func TestRenderCutsAndPadsMultibyteNamesByRunes(t *testing.T) {
	output, err := Render(application.Report{
		Rows: []application.ReportRow{
			{Username: "żółw", Seconds: 1, Known: true},
			{Username: "łłłłłłłłłłłłłłłłłłłłłł", Seconds: 1, Known: true},
		},
	}, RenderOptions{})

	require.NoError(t, err)
	lines := strings.Split(output, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "żółw"+strings.Repeat(" ", 14)+"    1 sec", lines[0])
	assert.Equal(t, strings.Repeat("ł", 18)+"    1 sec", lines[1])
}

func TestRenderAppendsTotal(t *testing.T) {
	total := int64(90061)

	output, err := Render(application.Report{
		Mode:  application.SelectAll,
		Rows:  []application.ReportRow{{Username: "alice", Seconds: 90061, Known: true}},
		Total: &total,
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "\n\nTotal duration for all users listed: 1 day 1 hour 1 min 1 sec")
}

func TestRenderZeroTotalShowsZeroSeconds(t *testing.T) {
	total := int64(0)

	output, err := Render(application.Report{
		Rows:  []application.ReportRow{{Username: "ghost"}},
		Total: &total,
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Total duration for all users listed: 0 seconds")
}

func TestRenderShowsAsOfWhenAsked(t *testing.T) {
	asOf := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render(application.Report{
		AsOf: asOf,
		Rows: []application.ReportRow{{Username: "alice", Seconds: 1, Known: true}},
	}, RenderOptions{ShowAsOf: true})

	require.NoError(t, err)
	assert.Contains(t, output, "open sessions counted until 2026-02-14T11:00:00Z")
}

func TestFitColumn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{name: "short name unchanged", input: "bob", width: 18, want: "bob"},
		{name: "exact width unchanged", input: "abcdef", width: 6, want: "abcdef"},
		{name: "long name cut", input: "abcdefgh", width: 4, want: "abcd"},
		{name: "multibyte counted as runes", input: "żółwżółw", width: 4, want: "żółw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitColumn(tt.input, tt.width))
		})
	}
}
