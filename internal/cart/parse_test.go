package cart

import (
	"testing"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParse_DropsInvalidEntries(t *testing.T) {
	raw := `[{"id":"3","qty":"2"}, {"id":1.5,"qty":1}, {"id":2,"qty":-1}, "not an object"]`

	got := Parse([]byte(raw))

	assert.Equal(t, domain.Snapshot{{ProductID: 3, Quantity: 2}}, got)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.Snapshot
	}{
		{"empty string", ``, domain.Snapshot{}},
		{"not json", `{{{`, domain.Snapshot{}},
		{"json null", `null`, domain.Snapshot{}},
		{"object instead of array", `{"id":1,"qty":1}`, domain.Snapshot{}},
		{"empty array", `[]`, domain.Snapshot{}},
		{"plain entries", `[{"id":1,"qty":2},{"id":4,"qty":1}]`, domain.Snapshot{{ProductID: 1, Quantity: 2}, {ProductID: 4, Quantity: 1}}},
		{"fractional quantity kept", `[{"id":1,"qty":2.5}]`, domain.Snapshot{{ProductID: 1, Quantity: 2.5}}},
		{"non-object elements", `[null, [1,2], 3, true, {"id":4,"qty":" 2 "}]`, domain.Snapshot{{ProductID: 4, Quantity: 2}}},
		{"null and bool coerce", `[{"id":null,"qty":true}]`, domain.Snapshot{{ProductID: 0, Quantity: 1}}},
		{"empty string id is zero", `[{"id":"","qty":1}]`, domain.Snapshot{{ProductID: 0, Quantity: 1}}},
		{"hex and exponent strings", `[{"id":"0x10","qty":"1e0"}]`, domain.Snapshot{{ProductID: 16, Quantity: 1}}},
		{"negative id is an integer", `[{"id":-2,"qty":1}]`, domain.Snapshot{{ProductID: -2, Quantity: 1}}},
		{"missing id", `[{"qty":1}]`, domain.Snapshot{}},
		{"missing qty", `[{"id":1}]`, domain.Snapshot{}},
		{"non-numeric id", `[{"id":"abc","qty":1}]`, domain.Snapshot{}},
		{"infinite qty", `[{"id":1,"qty":"Infinity"}]`, domain.Snapshot{}},
		{"nan qty", `[{"id":1,"qty":"NaN"}]`, domain.Snapshot{}},
		{"zero qty", `[{"id":1,"qty":0}]`, domain.Snapshot{}},
		{"null qty is zero", `[{"id":1,"qty":null}]`, domain.Snapshot{}},
		{"id out of range", `[{"id":1e300,"qty":1}]`, domain.Snapshot{}},
		{"object id", `[{"id":{"v":1},"qty":1}]`, domain.Snapshot{}},
		{"duplicate id keeps first", `[{"id":1,"qty":1},{"id":1,"qty":5}]`, domain.Snapshot{{ProductID: 1, Quantity: 1}}},
		{"extra fields ignored", `[{"id":6,"qty":1,"name":"GK50Z"}]`, domain.Snapshot{{ProductID: 6, Quantity: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse([]byte(tt.raw)))
		})
	}
}
