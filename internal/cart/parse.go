package cart

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

// Parse repairs a persisted cart blob. It never fails: a blob that is not a
// JSON array yields an empty snapshot and elements that do not describe a
// valid entry are dropped.
//
// id and qty are coerced the way a browser's Number() would coerce them, so
// {"id":"3","qty":"2"} is accepted. An entry is kept only when id is an
// integer and qty is finite and positive. qty is kept as is, not rounded.
func Parse(raw []byte) domain.Snapshot {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return domain.Snapshot{}
	}

	snapshot := make(domain.Snapshot, 0, len(elems))
	for _, elem := range elems {
		e, ok := parseEntry(elem)
		if !ok {
			continue
		}
		// product ids are unique; a repeated id is dropped like any other bad entry
		if snapshot.Find(e.ProductID) >= 0 {
			continue
		}
		snapshot = append(snapshot, e)
	}
	return snapshot
}

func parseEntry(elem json.RawMessage) (domain.Entry, bool) {
	var obj map[string]any
	if err := json.Unmarshal(elem, &obj); err != nil || obj == nil {
		return domain.Entry{}, false
	}

	id := toNumber(obj, "id")
	qty := toNumber(obj, "qty")

	if !isInteger(id) || math.IsNaN(qty) || math.IsInf(qty, 0) {
		return domain.Entry{}, false
	}
	if qty <= 0 {
		return domain.Entry{}, false
	}
	// ids beyond int64 cannot be represented; treat them as malformed
	if id < math.MinInt64 || id >= math.MaxInt64 {
		return domain.Entry{}, false
	}

	return domain.Entry{ProductID: int64(id), Quantity: qty}, true
}

// toNumber returns NaN when the field is absent or not coercible.
func toNumber(obj map[string]any, field string) float64 {
	v, ok := obj[field]
	if !ok {
		return math.NaN()
	}

	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case float64:
		return x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		if s == "Infinity" || s == "+Infinity" {
			return math.Inf(1)
		}
		if s == "-Infinity" {
			return math.Inf(-1)
		}
		if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
			n, err := strconv.ParseUint(s, 0, 64)
			if err != nil || strings.Contains(s, "_") {
				return math.NaN()
			}
			return float64(n)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || strings.ContainsAny(s, "_iInNxXpP") {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func isInteger(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Trunc(f) == f
}
