package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaskQuery(t *testing.T) {
	tests := []struct {
		query string
		kind  queryKind
		raw   string
	}{
		{"", queryListAll, ""},
		{"taskid=4", queryByTaskID, "4"},
		{"taskid=", queryByTaskID, ""},
		{"completed=Y", queryByCompleted, "Y"},
		{"page=2", queryByPage, "2"},
		{"taskid=4&completed=Y&page=2", queryByTaskID, "4"},
		{"completed=N&page=2", queryByCompleted, "N"},
		{"page=3&sort=asc", queryByPage, "3"},
		{"sort=asc", queryUnknown, ""},
		{"TaskID=4", queryUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			q := parseTaskQuery(values)
			assert.Equal(t, tt.kind, q.kind, "kind %s", q.kind)
			assert.Equal(t, tt.raw, q.raw)
		})
	}
}

func TestParseTaskID(t *testing.T) {
	valid := map[string]int64{"1": 1, "0": 0, "0042": 42, "9223372036854775807": 9223372036854775807}
	for raw, want := range valid {
		got, d := parseTaskID(raw)
		assert.Equal(t, digitsOK, d, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"", " ", "abc", "-1", "+1", "1.5", "1e3", "0x10"} {
		_, d := parseTaskID(raw)
		assert.Equal(t, digitsInvalid, d, "%q should be rejected", raw)
	}

	for _, raw := range []string{"9223372036854775808", "99999999999999999999"} {
		_, d := parseTaskID(raw)
		assert.Equal(t, digitsOutOfRange, d, raw)
	}
}

func TestParsePage(t *testing.T) {
	got, d := parsePage("3")
	assert.Equal(t, digitsOK, d)
	assert.Equal(t, 3, got)

	for _, raw := range []string{"", "x", "-2", "2.0"} {
		_, d := parsePage(raw)
		assert.Equal(t, digitsInvalid, d, "%q should be rejected", raw)
	}

	for _, raw := range []string{"2000000000", "99999999999", "99999999999999999999"} {
		_, d := parsePage(raw)
		assert.Equal(t, digitsOutOfRange, d, raw)
	}
}

func TestValidCompleted(t *testing.T) {
	assert.True(t, validCompleted("Y"))
	assert.True(t, validCompleted("N"))
	for _, raw := range []string{"", "y", "n", "YES", "true", "1"} {
		assert.False(t, validCompleted(raw), raw)
	}
}

func TestQueryKindString(t *testing.T) {
	assert.Equal(t, "list_all", queryListAll.String())
	assert.Equal(t, "by_task_id", queryByTaskID.String())
	assert.Equal(t, "by_completed", queryByCompleted.String())
	assert.Equal(t, "by_page", queryByPage.String())
	assert.Equal(t, "unknown", queryUnknown.String())
}
