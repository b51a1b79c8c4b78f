package timeplot

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotter_Track(t *testing.T) {
	p := New(ByArgs, []int{0}, false)

	sum, err := p.Track(func(args ...any) any {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total
	})
	require.NoError(t, err)

	assert.Equal(t, 6, sum(1, 2, 3))
	assert.Equal(t, 10, sum(10))

	calls := p.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, []any{1, 2, 3}, calls[0].Args)

	_, err = p.Track(func(args ...any) any { return nil })
	assert.ErrorIs(t, err, ErrAlreadyTracking)
}

func TestPlotter_NothingTracked(t *testing.T) {
	p := New(ByTime, nil, false)

	_, err := p.Points()
	assert.ErrorIs(t, err, ErrNothingTracked)

	_, err = p.Show(afero.NewMemMapFs(), "out")
	assert.ErrorIs(t, err, ErrNothingTracked)
}

// seeded returns a tracking plotter with calls of known duration.
func seeded(t *testing.T, key SortKey, reverse bool) *Plotter {
	t.Helper()
	p := New(key, []int{0, 2}, reverse)
	_, err := p.Track(func(args ...any) any { return nil })
	require.NoError(t, err)

	p.store.Add([]any{"b", "skipped", 2}, 3*time.Millisecond)
	p.store.Add([]any{"a", "skipped", 1}, 1*time.Millisecond)
	p.store.Add([]any{"c", "skipped", 3}, 2*time.Millisecond)
	return p
}

func TestPlotter_Points(t *testing.T) {
	tests := []struct {
		name    string
		key     SortKey
		reverse bool
		want    []Point
	}{
		{
			name: "by time",
			key:  ByTime,
			want: []Point{{"(a, 1)", 1}, {"(c, 3)", 2}, {"(b, 2)", 3}},
		},
		{
			name:    "by time reversed",
			key:     ByTime,
			reverse: true,
			want:    []Point{{"(b, 2)", 3}, {"(c, 3)", 2}, {"(a, 1)", 1}},
		},
		{
			name: "by args",
			key:  ByArgs,
			want: []Point{{"(a, 1)", 1}, {"(b, 2)", 3}, {"(c, 3)", 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := seeded(t, tt.key, tt.reverse).Points()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlotter_LabelTruncated(t *testing.T) {
	p := New(ByArgs, []int{0}, false)
	_, err := p.Track(func(args ...any) any { return nil })
	require.NoError(t, err)

	p.store.Add([]any{strings.Repeat("x", 100)}, time.Millisecond)

	points, err := p.Points()
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(points[0].Label)), MaxLabelWidth)
	assert.True(t, strings.HasSuffix(points[0].Label, "…"))
}

func TestPlotter_UntrackedArgsGiveEmptyLabel(t *testing.T) {
	p := New(ByArgs, nil, false)
	_, err := p.Track(func(args ...any) any { return nil })
	require.NoError(t, err)
	p.store.Add([]any{1}, time.Millisecond)

	points, err := p.Points()
	require.NoError(t, err)
	assert.Equal(t, "", points[0].Label)
}

func TestInject(t *testing.T) {
	page := "<t>{BEGIN-TBL-ELM}<r>{XVALUE}|{YVALUE}</r>{END-TBL-ELM}</t>"

	got := inject(page, [][2]string{{"a", "1"}, {"<b>", "2"}})
	assert.Equal(t, "<t><r>a|1</r>\n<r>&lt;b&gt;|2</r></t>", got)

	assert.Equal(t, "<t></t>", inject(page, nil))
	assert.Equal(t, "no markers", inject("no markers", [][2]string{{"a", "b"}}))
}

func TestPlotter_Show(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := seeded(t, ByArgs, false)

	path, err := p.Show(fs, "temp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("temp", OutputFile), path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	page := string(data)

	assert.NotContains(t, page, "{BEGIN-TBL-ELM}")
	assert.NotContains(t, page, "{XVALUE}")
	assert.Contains(t, page, "<tr><td>(a, 1)</td><td>1.000</td></tr>")
	assert.Contains(t, page, "<th>arguments</th><th>milliseconds</th>")
}

func TestPlotter_RenderByTimeSwapsAxes(t *testing.T) {
	page, err := seeded(t, ByTime, false).Render()
	require.NoError(t, err)

	assert.Contains(t, page, "<tr><td>1.000</td><td>(a, 1)</td></tr>")
	assert.Contains(t, page, "<th>milliseconds</th><th>arguments</th>")
}

func TestSortKey_String(t *testing.T) {
	assert.Equal(t, "time", ByTime.String())
	assert.Equal(t, "args", ByArgs.String())
	assert.Equal(t, "SortKey(9)", SortKey(9).String())
}
