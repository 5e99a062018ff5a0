package filter

import (
	"regexp"

	"hugin/internal/core/searchtext"
)

// industryCodeRE recognizes the registry industry code shape: a section
// letter or a 1-2 digit division with an optional dotted subclass
var industryCodeRE = regexp.MustCompile(`^([A-Za-z]|[0-9]{1,2}(\.[0-9]{1,3})?)$`)

// latest* resolve the most recent financial year per business. Correlated
// subselects so a business with no financials yields NULL, not a dropped row
const (
	latestRevenue = "(SELECT f.revenue FROM financials f" +
		" WHERE f.org_number = b.org_number" +
		" ORDER BY f.fiscal_year DESC NULLS LAST LIMIT 1)"
	latestEmployees = "(SELECT f.employees FROM financials f" +
		" WHERE f.org_number = b.org_number" +
		" ORDER BY f.fiscal_year DESC NULLS LAST LIMIT 1)"
)

// Compile appends one conjunct per active filter to b, in a fixed emission
// order so the parameter array is reproducible for a given Query. This is
// the instant-list shape: the industry filter targets the primary slot only
func Compile(q Query, b *Builder) {
	if q.IndustryCode != "" {
		if industryCodeRE.MatchString(q.IndustryCode) {
			b.Add("b.industry_code1 = ?", q.IndustryCode)
		} else {
			b.Add("b.industry_text1 ILIKE ?", contains(q.IndustryCode))
		}
	}
	compileCommon(q, b)
}

// CompileCandidates appends the save-stream variant of the filters: the
// industry value is matched as code OR text across all three industry
// slots, because the saved filter string cannot express which slot the
// user originally matched on. Everything else compiles as Compile does
func CompileCandidates(q Query, b *Builder) {
	if q.IndustryCode != "" {
		if industryCodeRE.MatchString(q.IndustryCode) {
			b.Add("(b.industry_code1 = ? OR b.industry_code2 = ? OR b.industry_code3 = ?)",
				q.IndustryCode, q.IndustryCode, q.IndustryCode)
		} else {
			like := contains(q.IndustryCode)
			b.Add("(b.industry_text1 ILIKE ? OR b.industry_text2 ILIKE ? OR b.industry_text3 ILIKE ?)",
				like, like, like)
		}
	}
	compileCommon(q, b)
}

func compileCommon(q Query, b *Builder) {
	if q.SectorCode != "" {
		b.Add("b.sector_code = ?", q.SectorCode)
	}
	if q.OrgFormCode != "" {
		b.Add("b.org_form_code = ?", q.OrgFormCode)
	}
	if q.City != "" {
		like := contains(q.City)
		b.Add("(b.city ILIKE ? OR b.postal_code ILIKE ?)", like, like)
	}
	if min, max := bucketBounds(q.RevenueBucket); min != nil || max != nil {
		if min != nil {
			b.Add(latestRevenue+" >= ?", *min)
		}
		if max != nil {
			b.Add(latestRevenue+" <= ?", *max)
		}
	}
	if min, max := bucketBounds(q.EmployeeBucket); min != nil || max != nil {
		if min != nil {
			b.Add(latestEmployees+" >= ?", *min)
		}
		if max != nil {
			b.Add(latestEmployees+" <= ?", *max)
		}
	}
	switch {
	case truthy(q.VatRegistered):
		b.Add("b.vat_registered = TRUE")
	case falsy(q.VatRegistered):
		b.Add("b.vat_registered = FALSE")
	}

	// a type list takes precedence over the coarse any/none flag; values
	// outside the recognized vocabulary drop the constraint
	if len(q.EventTypes) > 0 {
		b.Add("EXISTS (SELECT 1 FROM events e"+
			" WHERE e.org_number = b.org_number AND e.event_type = ANY(?))",
			q.EventTypes)
	} else {
		switch {
		case truthy(q.Events) || q.Events == "any":
			b.Add("EXISTS (SELECT 1 FROM events e WHERE e.org_number = b.org_number)")
		case falsy(q.Events) || q.Events == "none":
			b.Add("NOT EXISTS (SELECT 1 FROM events e WHERE e.org_number = b.org_number)")
		}
	}

	if from, ok := parseDate(q.RegisteredFrom); ok {
		b.Add("b.registered_at >= ?", from)
	}
	if to, ok := parseDate(q.RegisteredTo); ok {
		b.Add("b.registered_at <= ?", to)
	}

	if q.WebCmsShopify {
		b.Add("b.web_cms = 'shopify'")
	}
	if q.WebEcomWoo {
		b.Add("b.web_ecom = 'woocommerce'")
	}

	if s := searchtext.Fold(q.Search); s != "" {
		if len([]rune(s)) >= 3 {
			// trigram similarity tolerates misspellings on longer queries
			b.Add("(b.search @@ plainto_tsquery('simple', ?) OR similarity(b.name, ?) > 0.3)", s, s)
		} else {
			b.Add("b.search @@ plainto_tsquery('simple', ?)", s)
		}
	}

	if q.Q != "" {
		b.Add("b.name ILIKE ?", contains(q.Q))
	}
}

func contains(s string) string { return "%" + s + "%" }
