package catalog

// Sample returns the built-in demo catalog, used when no catalog path is
// configured.
func Sample() []Product {
	return []Product{
		{ID: "sku-cam-01", Name: "Trailhead Camera", Price: 429, Currency: "USD", Tag: "new", Description: "Weatherproof 4K action camera with a 160° lens."},
		{ID: "sku-spk-02", Name: "Driftwood Speaker", Price: 89.5, Currency: "USD", Description: "Portable speaker with 20 hours of playback."},
		{ID: "sku-hdp-03", Name: "Quiet Canyon Headphones", Price: 199, Currency: "USD", Tag: "sale", Description: "Over-ear noise cancelling, 40 hour battery."},
		{ID: "sku-kbd-04", Name: "Low Tide Keyboard", Price: 149, Currency: "USD", Description: "75% mechanical keyboard, hot-swappable switches."},
		{ID: "sku-mou-05", Name: "Harbor Mouse", Price: 64, Currency: "USD", Description: "Lightweight wireless mouse, 90 day battery."},
		{ID: "sku-mon-06", Name: "Northline Monitor", Price: 549, Currency: "USD", Tag: "new", Description: "27\" 4K panel with USB-C power delivery."},
		{ID: "sku-dsk-07", Name: "Fieldstone Desk Mat", Price: 32, Currency: "USD", Description: "Stitched-edge desk mat, 900x400mm."},
		{ID: "sku-lmp-08", Name: "Emberlight Lamp", Price: 78, Currency: "USD", Description: "Bias lighting bar with adjustable warmth."},
		{ID: "sku-chg-09", Name: "Switchback Charger", Price: 55, Currency: "USD", Tag: "sale", Description: "65W GaN charger, dual USB-C."},
		{ID: "sku-bag-10", Name: "Overcast Backpack", Price: 120, Currency: "USD", Description: "Commuter backpack with a padded 16\" sleeve."},
		{ID: "sku-stn-11", Name: "Ridgeline Stand", Price: 47, Currency: "USD", Description: "Aluminum laptop stand, six height stops."},
		{ID: "sku-cbl-12", Name: "Longwave Cable Kit", Price: 24, Currency: "USD", Description: "Braided USB-C cable set, 1m and 2m."},
	}
}
