package model

// Concert couples one show with its own venue clone and a 3×3 price
// table (zone × band). The venue is never shared with another concert.
type Concert struct {
	ID        int
	Date      string
	Timing    string
	Artist    string
	VenueName string
	Venue     *Venue

	prices [3][3]float64
}

// Price returns the unit price for a zone/band pair.
func (c *Concert) Price(z Zone, b Band) float64 {
	return c.prices[z.PriceRow()][int(b)]
}

// SetPrices replaces all three band prices for a zone.
func (c *Concert) SetPrices(z Zone, left, middle, right float64) {
	c.prices[z.PriceRow()] = [3]float64{left, middle, right}
}
