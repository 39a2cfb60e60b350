package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/vip-motors/internal/service"
	"github.com/MKhiriev/vip-motors/internal/validators"
	"github.com/MKhiriev/vip-motors/models"
)

// queryReader parses optional query parameters and collects every malformed
// one instead of stopping at the first.
type queryReader struct {
	values url.Values
	errs   validators.ValidationErrors
}

func newQueryReader(values url.Values) *queryReader {
	return &queryReader{values: values}
}

func (q *queryReader) string(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(q.values.Get(key)); v != "" {
			return v
		}
	}
	return ""
}

func (q *queryReader) int(key string) int {
	raw := q.string(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.errs = append(q.errs, validators.FieldError{Field: key, Message: "must be an integer"})
		return 0
	}
	return v
}

func (q *queryReader) float(key string) *float64 {
	raw := q.string(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		q.errs = append(q.errs, validators.FieldError{Field: key, Message: "must be a number"})
		return nil
	}
	return &v
}

func (q *queryReader) bool(key string) *bool {
	raw := q.string(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.errs = append(q.errs, validators.FieldError{Field: key, Message: "must be true or false"})
		return nil
	}
	return &v
}

// list splits a comma separated parameter.
func (q *queryReader) list(key string) []string {
	raw := q.string(key)
	if raw == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (q *queryReader) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", service.ErrValidationFailed, q.errs)
}

// hypercarFilter reads the catalog filter shared by the listing and the
// dashboard search. searchKeys name the free text parameter.
func hypercarFilter(values url.Values, searchKeys ...string) (models.HypercarFilter, error) {
	q := newQueryReader(values)

	filter := models.HypercarFilter{
		Page:      q.int("page"),
		Limit:     q.int("limit"),
		Brand:     q.string("brand"),
		Status:    models.HypercarStatus(q.string("status")),
		Featured:  q.bool("featured"),
		Search:    q.string(searchKeys...),
		MinPrice:  q.float("minPrice"),
		MaxPrice:  q.float("maxPrice"),
		MinPower:  q.float("minPower"),
		MaxPower:  q.float("maxPower"),
		MinSpeed:  q.float("minSpeed"),
		MaxSpeed:  q.float("maxSpeed"),
		SortBy:    q.string("sortBy"),
		SortOrder: q.string("sortOrder"),
	}

	return filter, q.err()
}
