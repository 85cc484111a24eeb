package ids

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextIsTimeBased(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	g := WithClock(func() time.Time { return fixed })

	assert.Equal(t, "order_1700000000000", g.Next("order"))
	assert.Equal(t, "prod_1700000000001", g.Next("prod"))
}

func TestRandomHasSuffix(t *testing.T) {
	g := New()
	id := g.Random("cart")
	assert.Regexp(t, regexp.MustCompile(`^cart_\d+_[0-9a-f]{12}$`), id)
	assert.NotEqual(t, id, g.Random("cart"))
}
