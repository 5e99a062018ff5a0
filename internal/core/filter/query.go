// Package filter compiles a flat map of recognized facet filters into a
// SQL-safe WHERE fragment with a strictly ordered positional parameter list.
// Unrecognized or empty keys are ignored; compilation is a total function
// over its input domain and never returns an error
package filter

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Query is the transient filter expression built per request from the
// inbound query string. All fields are optional; empty means no constraint
type Query struct {
	IndustryCode   string
	SectorCode     string
	OrgFormCode    string
	City           string
	RevenueBucket  string
	EmployeeBucket string
	VatRegistered  string
	Search         string
	Events         string
	EventTypes     []string
	RegisteredFrom string
	RegisteredTo   string
	WebCmsShopify  bool
	WebEcomWoo     bool
	Q              string
}

// ParseValues lifts the recognized filter keys out of a query string.
// Anything else in v is left for the caller (sort, limit, cursor)
func ParseValues(v url.Values) Query {
	q := Query{
		IndustryCode:   strings.TrimSpace(v.Get("industryCode")),
		SectorCode:     strings.TrimSpace(v.Get("sectorCode")),
		OrgFormCode:    strings.TrimSpace(v.Get("orgFormCode")),
		City:           strings.TrimSpace(v.Get("city")),
		RevenueBucket:  strings.TrimSpace(v.Get("revenueBucket")),
		EmployeeBucket: strings.TrimSpace(v.Get("employeeBucket")),
		VatRegistered:  strings.TrimSpace(v.Get("vatRegistered")),
		Search:         strings.TrimSpace(v.Get("search")),
		Events:         strings.TrimSpace(v.Get("events")),
		RegisteredFrom: strings.TrimSpace(v.Get("registeredFrom")),
		RegisteredTo:   strings.TrimSpace(v.Get("registeredTo")),
		WebCmsShopify:  truthy(v.Get("webCmsShopify")),
		WebEcomWoo:     truthy(v.Get("webEcomWoocommerce")),
		Q:              strings.TrimSpace(v.Get("q")),
	}
	for _, raw := range v["eventTypes"] {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				q.EventTypes = append(q.EventTypes, t)
			}
		}
	}
	return q
}

// ParseQueryString is ParseValues over a raw (possibly empty) query string.
// A malformed string yields the zero Query
func ParseQueryString(fq string) Query {
	v, err := url.ParseQuery(fq)
	if err != nil {
		return Query{}
	}
	return ParseValues(v)
}

// Values serializes the query back into url.Values, inverse of ParseValues
// for every recognized key that carries a constraint
func (q Query) Values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("industryCode", q.IndustryCode)
	set("sectorCode", q.SectorCode)
	set("orgFormCode", q.OrgFormCode)
	set("city", q.City)
	set("revenueBucket", q.RevenueBucket)
	set("employeeBucket", q.EmployeeBucket)
	set("vatRegistered", q.VatRegistered)
	set("search", q.Search)
	set("events", q.Events)
	if len(q.EventTypes) > 0 {
		v.Set("eventTypes", strings.Join(q.EventTypes, ","))
	}
	set("registeredFrom", q.RegisteredFrom)
	set("registeredTo", q.RegisteredTo)
	if q.WebCmsShopify {
		v.Set("webCmsShopify", "true")
	}
	if q.WebEcomWoo {
		v.Set("webEcomWoocommerce", "true")
	}
	set("q", q.Q)
	return v
}

// Empty reports whether the query carries no constraint at all
func (q Query) Empty() bool {
	return q.IndustryCode == "" && q.SectorCode == "" && q.OrgFormCode == "" &&
		q.City == "" && q.RevenueBucket == "" && q.EmployeeBucket == "" &&
		q.VatRegistered == "" && q.Search == "" && q.Events == "" &&
		len(q.EventTypes) == 0 && q.RegisteredFrom == "" && q.RegisteredTo == "" &&
		!q.WebCmsShopify && !q.WebEcomWoo && q.Q == ""
}

// Signature returns a stable hash over every filter field, so logically
// identical filter states collide to the same key regardless of how the
// query string was ordered. Used for request cancellation and cache keys
func (q Query) Signature() string {
	types := append([]string(nil), q.EventTypes...)
	sort.Strings(types)
	parts := []string{
		"industry=" + q.IndustryCode,
		"sector=" + q.SectorCode,
		"orgform=" + q.OrgFormCode,
		"city=" + q.City,
		"revenue=" + q.RevenueBucket,
		"employees=" + q.EmployeeBucket,
		"vat=" + q.VatRegistered,
		"search=" + q.Search,
		"events=" + q.Events,
		"eventtypes=" + strings.Join(types, ","),
		"from=" + q.RegisteredFrom,
		"to=" + q.RegisteredTo,
		"cms=" + strconv.FormatBool(q.WebCmsShopify),
		"ecom=" + strconv.FormatBool(q.WebEcomWoo),
		"q=" + q.Q,
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "&")))
	return hex.EncodeToString(sum[:16])
}

// CountArgs returns the fixed eight-parameter signature the precomputed
// count function takes, in its declared order. Absent filters pass as ''
func (q Query) CountArgs() []any {
	return []any{
		q.IndustryCode,
		q.SectorCode,
		q.OrgFormCode,
		q.City,
		q.RevenueBucket,
		q.EmployeeBucket,
		q.VatRegistered,
		q.Search,
	}
}

// truthy interprets the boolean-ish query string values the UI sends
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// falsy recognizes explicit negatives only; values that are neither truthy
// nor falsy carry no boolean meaning and drop the constraint
func falsy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "false", "no", "off":
		return true
	}
	return false
}

// bucketBounds parses a range bucket like "1-10M", "100M+", "0-500K" or a
// bare "10-250" into optional integer bounds. Each side independently
// accepts a K/M/B magnitude suffix. Anything unparseable yields (nil, nil)
// so a malformed bucket silently drops the constraint
func bucketBounds(s string) (min, max *int64) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasSuffix(s, "+") {
		if v, ok := bucketValue(strings.TrimSuffix(s, "+")); ok {
			return &v, nil
		}
		return nil, nil
	}
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		if v, ok := bucketValue(lo); ok {
			return &v, &v
		}
		return nil, nil
	}
	if lo = strings.TrimSpace(lo); lo != "" {
		v, ok := bucketValue(lo)
		if !ok {
			return nil, nil
		}
		min = &v
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		v, ok := bucketValue(hi)
		if !ok {
			return nil, nil
		}
		max = &v
	}
	return min, max
}

func bucketValue(s string) (int64, bool) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0, false
	}
	mult := int64(1)
	switch s[len(s)-1] {
	case 'K':
		mult, s = 1_000, s[:len(s)-1]
	case 'M':
		mult, s = 1_000_000, s[:len(s)-1]
	case 'B':
		mult, s = 1_000_000_000, s[:len(s)-1]
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return v * mult, true
}

// parseDate accepts the yyyy-mm-dd form the date pickers emit
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
