// Package market generates the synthetic price feed used by the paper-trading simulator.
package market

import (
	"math/rand/v2"
	"strings"
	"time"

	"frugal-friend/pkg/utils"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

const (
	// DefaultPrice is returned for symbols the oracle has no history for.
	DefaultPrice = 100.00
	// HistoryLength is the number of daily points generated per symbol.
	HistoryLength = 10
	// FloorRatio bounds every generated price from below as a fraction of the base price.
	FloorRatio = 0.95
)

// PricePoint is the closing price of a symbol on one calendar day.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// Quote is an asset together with its latest price and day-over-day change.
type Quote struct {
	Asset
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
}

// Oracle holds an immutable price history per catalog symbol. It is safe for
// concurrent use once constructed.
type Oracle struct {
	catalog []Asset
	bySym   map[string]Asset
	history map[string][]PricePoint
}

type options struct {
	now     func() time.Time
	float   func() float64
	catalog []Asset
}

// Option configures an Oracle.
type Option func(*options)

// WithNow sets the clock used to anchor the history on "today".
func WithNow(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRand sets the random source used for the daily perturbation.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.float = r.Float64 }
}

// WithCatalog replaces the default asset catalog.
func WithCatalog(assets []Asset) Option {
	return func(o *options) { o.catalog = assets }
}

// NewOracle generates the history for every catalog symbol.
func NewOracle(opts ...Option) *Oracle {
	o := &options{
		now:     time.Now,
		float:   rand.Float64,
		catalog: DefaultCatalog(),
	}
	for _, opt := range opts {
		opt(o)
	}

	oracle := &Oracle{
		catalog: make([]Asset, 0, len(o.catalog)),
		bySym:   make(map[string]Asset, len(o.catalog)),
		history: make(map[string][]PricePoint, len(o.catalog)),
	}

	today := truncateDay(o.now())
	for _, asset := range o.catalog {
		asset.Symbol = NormalizeSymbol(asset.Symbol)
		if _, dup := oracle.bySym[asset.Symbol]; dup {
			continue
		}
		base, vol := Characteristics(asset.Symbol)
		oracle.catalog = append(oracle.catalog, asset)
		oracle.bySym[asset.Symbol] = asset
		oracle.history[asset.Symbol] = generateHistory(today, base, vol, o.float)
	}
	return oracle
}

// NormalizeSymbol trims and upper-cases a symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Characteristics derives the base price and daily volatility of a symbol
// from a stable hash of its upper-cased name.
func Characteristics(symbol string) (base, volatility float64) {
	h := xxhash.Sum64String(NormalizeSymbol(symbol))
	base = 50 + float64(h%19_500)/10
	volatility = base * (0.005 + float64((h>>32)%30)/1000)
	return base, volatility
}

func generateHistory(today time.Time, base, vol float64, float func() float64) []PricePoint {
	floor := decimal.NewFromFloat(base * FloorRatio).RoundCeil(2).InexactFloat64()

	points := make([]PricePoint, HistoryLength)
	price := utils.RoundCents(base)
	for i := 0; i < HistoryLength; i++ {
		if i > 0 {
			delta := (float()*2 - 1) * vol
			price = utils.RoundCents(price + delta)
			if price < floor {
				price = floor
			}
		}
		points[i] = PricePoint{
			Date:  today.AddDate(0, 0, i-(HistoryLength-1)),
			Price: price,
		}
	}
	return points
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// History returns a copy of the price history of symbol, oldest first.
func (o *Oracle) History(symbol string) ([]PricePoint, bool) {
	points, ok := o.history[NormalizeSymbol(symbol)]
	if !ok {
		return nil, false
	}
	out := make([]PricePoint, len(points))
	copy(out, points)
	return out, true
}

// CurrentPrice returns the latest price of symbol, or DefaultPrice when the
// symbol is unknown. It never fails.
func (o *Oracle) CurrentPrice(symbol string) float64 {
	points, ok := o.history[NormalizeSymbol(symbol)]
	if !ok || len(points) == 0 {
		return DefaultPrice
	}
	return points[len(points)-1].Price
}

// Asset looks up a catalog entry.
func (o *Oracle) Asset(symbol string) (Asset, bool) {
	a, ok := o.bySym[NormalizeSymbol(symbol)]
	return a, ok
}

// Assets lists the catalog with current prices and the change against the previous day.
func (o *Oracle) Assets() []Quote {
	quotes := make([]Quote, 0, len(o.catalog))
	for _, asset := range o.catalog {
		points := o.history[asset.Symbol]
		q := Quote{Asset: asset, Price: o.CurrentPrice(asset.Symbol)}
		if n := len(points); n >= 2 && points[n-2].Price > 0 {
			prev := points[n-2].Price
			q.ChangePercent = utils.RoundCents((points[n-1].Price - prev) / prev * 100)
		}
		quotes = append(quotes, q)
	}
	return quotes
}
