package market

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)
}

func newTestOracle(seed uint64, opts ...Option) *Oracle {
	opts = append([]Option{
		WithNow(fixedNow),
		WithRand(rand.New(rand.NewPCG(seed, seed+1))),
	}, opts...)
	return NewOracle(opts...)
}

func TestCharacteristics_Stable(t *testing.T) {
	base1, vol1 := Characteristics("tech")
	base2, vol2 := Characteristics("TECH")

	assert.Equal(t, base1, base2)
	assert.Equal(t, vol1, vol2)
	assert.GreaterOrEqual(t, base1, 50.0)
	assert.LessOrEqual(t, base1, 1999.9)
	assert.GreaterOrEqual(t, vol1, base1*0.005)
	assert.Less(t, vol1, base1*0.035)
}

func TestHistory_TenConsecutiveDaysEndingToday(t *testing.T) {
	o := newTestOracle(1)

	points, ok := o.History("TECH")
	require.True(t, ok)
	require.Len(t, points, HistoryLength)

	today := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, points[len(points)-1].Date)
	for i := 1; i < len(points); i++ {
		assert.Equal(t, points[i-1].Date.AddDate(0, 0, 1), points[i].Date)
	}
}

func TestHistory_StartsAtBaseAndRespectsFloor(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		o := newTestOracle(seed)
		for _, asset := range DefaultCatalog() {
			base, _ := Characteristics(asset.Symbol)
			points, ok := o.History(asset.Symbol)
			require.True(t, ok)

			assert.InDelta(t, base, points[0].Price, 0.005)
			for _, p := range points {
				assert.GreaterOrEqual(t, p.Price, base*FloorRatio, "symbol %s seed %d", asset.Symbol, seed)
			}
		}
	}
}

func TestHistory_FloorWhenPriceAlwaysFalls(t *testing.T) {
	// A source pinned at 0 pushes every step down by the full volatility.
	o := NewOracle(WithNow(fixedNow), WithRand(rand.New(zeroSource{})))

	base, _ := Characteristics("DEBT")
	points, ok := o.History("DEBT")
	require.True(t, ok)
	assert.GreaterOrEqual(t, points[len(points)-1].Price, base*FloorRatio)
	assert.Less(t, points[len(points)-1].Price, base)
}

func TestHistory_ReturnsCopy(t *testing.T) {
	o := newTestOracle(3)

	points, _ := o.History("FIN")
	points[0].Price = -1

	again, _ := o.History("FIN")
	assert.NotEqual(t, -1.0, again[0].Price)
}

func TestCurrentPrice(t *testing.T) {
	o := newTestOracle(7)

	points, _ := o.History("GROWTH")
	assert.Equal(t, points[len(points)-1].Price, o.CurrentPrice("growth"))
	assert.Equal(t, points[len(points)-1].Price, o.CurrentPrice(" GROWTH "))
}

func TestCurrentPrice_UnknownSymbolReturnsDefault(t *testing.T) {
	o := newTestOracle(7)

	assert.Equal(t, 100.00, o.CurrentPrice("NOPE"))
	_, ok := o.History("NOPE")
	assert.False(t, ok)
}

func TestAssets(t *testing.T) {
	o := newTestOracle(11)

	quotes := o.Assets()
	require.Len(t, quotes, len(DefaultCatalog()))

	for _, q := range quotes {
		points, _ := o.History(q.Symbol)
		prev := points[len(points)-2].Price
		last := points[len(points)-1].Price
		assert.Equal(t, last, q.Price)
		assert.InDelta(t, (last-prev)/prev*100, q.ChangePercent, 0.006)
	}
}

func TestWithCatalog_NormalizesAndDeduplicates(t *testing.T) {
	o := newTestOracle(5, WithCatalog([]Asset{
		{Symbol: "abc", Name: "ABC"},
		{Symbol: "ABC", Name: "Duplicate"},
	}))

	quotes := o.Assets()
	require.Len(t, quotes, 1)
	assert.Equal(t, "ABC", quotes[0].Symbol)
	assert.Equal(t, "ABC", quotes[0].Name)
}

type zeroSource struct{}

func (zeroSource) Uint64() uint64 { return 0 }
