package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/vip-motors/internal/service"
	"github.com/MKhiriev/vip-motors/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestQueryReader_List(t *testing.T) {
	q := newQueryReader(url.Values{"ids": {" a, ,b ,c,"}})

	assert.Equal(t, []string{"a", "b", "c"}, q.list("ids"))
	assert.Nil(t, q.list("missing"))
	assert.NoError(t, q.err())
}

func TestQueryReader_FirstNonEmptyKey(t *testing.T) {
	q := newQueryReader(url.Values{"q": {"  "}, "query": {"pagani"}})

	assert.Equal(t, "pagani", q.string("q", "query", "search"))
}

func TestHypercarFilter_CollectsEveryError(t *testing.T) {
	_, err := hypercarFilter(url.Values{
		"limit":    {"ten"},
		"maxPower": {"lots"},
		"minSpeed": {"fast"},
	}, "search")

	require.ErrorIs(t, err, service.ErrValidationFailed)
	var fieldErrs validators.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"limit", "maxPower", "minSpeed"}, fields)
}

func TestHypercarFilter_EmptyQuery(t *testing.T) {
	filter, err := hypercarFilter(url.Values{}, "search")

	require.NoError(t, err)
	assert.Zero(t, filter.Page)
	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.Featured)
	assert.Empty(t, filter.SortBy)
}
