package scalar

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a civil date without a time component, serialized as an
// ISO 8601 calendar date ("2024-06-01"). The zero value marshals as null
// and reports IsZero.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("Date: `%s` is not an ISO 8601 calendar date", value)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.t.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	str, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("Date: expected a JSON string, got %s", string(data))
	}

	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ImplementsGraphQLType and UnmarshalGraphQL let Date double as the custom
// `scalar Date` for graph-gophers based servers (the sandbox backend).
func (Date) ImplementsGraphQLType(name string) bool {
	return name == "Date"
}

func (d *Date) UnmarshalGraphQL(input interface{}) error {
	str, ok := input.(string)
	if !ok {
		return fmt.Errorf("Date: expected a string, got %T", input)
	}

	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
