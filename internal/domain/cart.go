package domain

import (
	"sort"
	"strconv"
	"strings"
)

type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindOffer   ItemKind = "offer"
)

// Addition is an optional extra selectable on a product, priced separately.
type Addition struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	PriceSYP  int64  `json:"price_syp"`
	Available bool   `json:"available"`
}

// LineItem is one distinct (item + chosen additions) entry in the cart.
// Two line items are the same entry iff their Key() matches.
type LineItem struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Kind          ItemKind   `json:"kind"`
	PriceSYP      int64      `json:"price_syp"`
	PriceUSDCents int64      `json:"price_usd_cents"`
	ImageURL      string     `json:"image_url"`
	Quantity      int        `json:"quantity"`
	Additions     []Addition `json:"additions,omitempty"`
}

// Key returns the cart identity of the line item: the item id plus the
// sorted ids of its selected additions. Selection order does not matter.
func (li LineItem) Key() string {
	ids := make([]int64, len(li.Additions))
	for i, a := range li.Additions {
		ids[i] = a.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	b.WriteString(string(li.Kind))
	b.WriteByte(':')
	b.WriteString(strconv.FormatInt(li.ID, 10))
	for _, id := range ids {
		b.WriteByte('+')
		b.WriteString(strconv.FormatInt(id, 10))
	}
	return b.String()
}

// UnitPriceSYP is the base price plus all selected additions.
func (li LineItem) UnitPriceSYP() int64 {
	total := li.PriceSYP
	for _, a := range li.Additions {
		total += a.PriceSYP
	}
	return total
}

// LineTotalSYP is the unit price multiplied by quantity.
func (li LineItem) LineTotalSYP() int64 {
	return li.UnitPriceSYP() * int64(li.Quantity)
}
