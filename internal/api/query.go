package api

import (
	"net/url"
	"strconv"
)

// Query builds request parameters. Zero ids are treated as absent and left
// out, the way an unset parameter never reaches the wire.
type Query struct {
	values url.Values
}

// NewQuery starts a query scoped to storeID.
func NewQuery(storeID int64) *Query {
	q := &Query{values: url.Values{}}
	return q.ID("storeId", storeID)
}

// ID sets an identifier parameter when id is non-zero.
func (q *Query) ID(key string, id int64) *Query {
	if id != 0 {
		q.values.Set(key, strconv.FormatInt(id, 10))
	}
	return q
}

// Int sets an integer parameter unconditionally.
func (q *Query) Int(key string, v int) *Query {
	q.values.Set(key, strconv.Itoa(v))
	return q
}

// String sets a text parameter.
func (q *Query) String(key, v string) *Query {
	q.values.Set(key, v)
	return q
}

// Values returns the parameters. A nil Query has none.
func (q *Query) Values() url.Values {
	if q == nil {
		return nil
	}
	return q.values
}
