package scalar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", d.String())
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, value := range []string{"", "June 1st", "2024-13-40", "2024-06-01T10:00:00Z", "01/06/2024"} {
		_, err := ParseDate(value)
		assert.Error(t, err, "value %q", value)
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.July, 5)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-05"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, d.Equal(back))
}

func TestDate_JSONNull(t *testing.T) {
	raw, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))

	var d Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())
}

func TestDate_JSONRejectsNonString(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte("20240605"), &d))
}

func TestDate_UnmarshalGraphQL(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalGraphQL("2024-06-10"))
	assert.Equal(t, "2024-06-10", d.String())

	assert.Error(t, d.UnmarshalGraphQL(42))
	assert.Error(t, d.UnmarshalGraphQL("not-a-date"))
	assert.True(t, Date{}.ImplementsGraphQLType("Date"))
	assert.False(t, Date{}.ImplementsGraphQLType("DateTime"))
}

func TestDate_Ordering(t *testing.T) {
	early := NewDate(2024, time.June, 1)
	late := NewDate(2024, time.June, 10)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.Equal(late))
}
