// internal/enrich/commission.go
package enrich

import (
	"strings"

	"github.com/promolink/affiliate-backend/internal/models"
)

// CommissionAggregate is the running total of all commission records sharing
// one normalized product name, plus the first record seen under that name.
// The first record serves as the fallback source for price and commission
// percentage when the product catalog has no matching entry.
type CommissionAggregate struct {
	TotalEarnings float64
	OrderCount    int
	First         *models.CommissionRecord
}

// NormalizeName produces the join key used to match commission records
// against links. Upstream commission records carry no stable product id, so
// a lower-cased, trimmed display name is the only available key. Two distinct
// products sharing a display name will collide; that fragility is inherent to
// the upstream data.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AggregateCommissions folds commission records into per-product-name
// aggregates. Commission amounts are sanitized, so an unparsable amount
// contributes 0 to earnings but still counts as an order. Records whose
// normalized name is blank are skipped: they can never join to a link and
// would only pool into a junk bucket.
func AggregateCommissions(records []models.CommissionRecord) map[string]*CommissionAggregate {
	aggregates := make(map[string]*CommissionAggregate, len(records))

	for i := range records {
		key := NormalizeName(records[i].Name)
		if key == "" {
			continue
		}

		agg, ok := aggregates[key]
		if !ok {
			agg = &CommissionAggregate{First: &records[i]}
			aggregates[key] = agg
		}

		agg.TotalEarnings += Sanitize(records[i].Commission)
		agg.OrderCount++
	}

	return aggregates
}
