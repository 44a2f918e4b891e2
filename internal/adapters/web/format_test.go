package web_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mirfield/worldatlas/internal/adapters/web"
	"github.com/mirfield/worldatlas/internal/domain/world"
)

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "Ore &amp; Coal", web.EscapeHTML("Ore & Coal"))
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", web.EscapeHTML("<script>alert(1)</script>"))
	assert.Equal(t, "plain", web.EscapeHTML("plain"))
}

func TestEscapeAttr(t *testing.T) {
	assert.Equal(t, "a &quot;b&quot; &#39;c&#39;", web.EscapeAttr(`a "b" 'c'`))
	assert.Equal(t, "&amp;&lt;&gt;", web.EscapeAttr("&<>"))
}

func TestFormatBillions(t *testing.T) {
	assert.Equal(t, "$1,234.5B", web.FormatBillions(1234.5))
	assert.Equal(t, "$480B", web.FormatBillions(480))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$52,341", web.FormatMoney(52340.7))
	assert.Equal(t, "$900", web.FormatMoney(900))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "4.2%", web.FormatPercent(4.25))
	assert.Equal(t, "12%", web.FormatPercent(12))
}

func TestFormatSignedBillions(t *testing.T) {
	assert.Equal(t, "+$12.4B", web.FormatSignedBillions(12.4))
	assert.Equal(t, "-$3.2B", web.FormatSignedBillions(-3.2))
	assert.Equal(t, "+$0B", web.FormatSignedBillions(0))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "1,200", web.FormatQuantity(1200))
	assert.Equal(t, "2,400", web.FormatQuantity(2400.4))
}

func TestIndicatorCell_MissingValueIsDash(t *testing.T) {
	indicators := map[string]float64{world.IndicatorGDP: 480}

	assert.Equal(t, "$480B", web.IndicatorCell(indicators, world.IndicatorGDP))
	assert.Equal(t, web.Dash, web.IndicatorCell(indicators, world.IndicatorInflation))
	assert.Equal(t, web.Dash, web.IndicatorCell(nil, world.IndicatorGDP))
}

func TestShareCell(t *testing.T) {
	share := 35.5
	assert.Equal(t, "35.5%", web.ShareCell(&share))

	zero := 0.0
	assert.Equal(t, "0%", web.ShareCell(&zero))
	assert.Equal(t, web.Dash, web.ShareCell(nil))
}

func TestTextOrDash(t *testing.T) {
	assert.Equal(t, web.Dash, web.TextOrDash(""))
	assert.Equal(t, web.Dash, web.TextOrDash("   "))
	assert.Equal(t, "Ever &amp; Always", web.TextOrDash("Ever & Always"))
}
