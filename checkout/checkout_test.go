package checkout

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"piwkina-shop/cart"
	"piwkina-shop/ids"
	"piwkina-shop/models"
	"piwkina-shop/store"
)

type call struct {
	collection string
	op         string
}

// recorder notes every backend call and can fail the nth create.
type recorder struct {
	inner  store.Backend
	mu     sync.Mutex
	calls  []call
	failAt int
}

func (r *recorder) Collection(name string) store.Collection {
	return &recordedCollection{Collection: r.inner.Collection(name), name: name, r: r}
}

func (r *recorder) record(c call) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
	return len(r.calls)
}

type recordedCollection struct {
	store.Collection
	name string
	r    *recorder
}

func (c *recordedCollection) List(ctx context.Context, q store.Query) ([]store.Row, error) {
	c.r.record(call{c.name, "list"})
	return c.Collection.List(ctx, q)
}

func (c *recordedCollection) Create(ctx context.Context, row store.Row) error {
	if n := c.r.record(call{c.name, "create"}); n == c.r.failAt {
		return errors.New("backend rejected create")
	}
	return c.Collection.Create(ctx, row)
}

type fakeIdentity struct {
	calls int
	err   error
}

func (f *fakeIdentity) Me(ctx context.Context) (*models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: "user_1", Email: "a@b.ge"}, nil
}

var validInfo = CustomerInfo{Name: "Nino", Phone: "555123456", Address: "Rustaveli 1"}

func filledCart(t *testing.T, n int) *cart.Store {
	t.Helper()
	c := cart.Load(cart.NewMemoryStorage(), cart.StorageKey, ids.New())
	for i := 0; i < n; i++ {
		_, err := c.Add(models.CartItem{ProductID: "prod_1", PricePerKg: 40, WeightKg: 1.5, TotalPrice: 60})
		require.NoError(t, err)
	}
	return c
}

func TestValidationFailsBeforeAnyCall(t *testing.T) {
	rec := &recorder{inner: store.NewMemoryBackend()}
	svc := NewService(rec, ids.New())
	me := &fakeIdentity{}

	_, err := svc.Submit(context.Background(), me, filledCart(t, 2),
		CustomerInfo{Name: "", Phone: "123", Address: "X"})
	assert.ErrorIs(t, err, ErrMissingInformation)

	_, err = svc.Submit(context.Background(), me, filledCart(t, 0), validInfo)
	assert.ErrorIs(t, err, ErrEmptyCart)

	assert.Empty(t, rec.calls)
	assert.Zero(t, me.calls)
}

func TestSubmitWritesOrderThenItems(t *testing.T) {
	rec := &recorder{inner: store.NewMemoryBackend()}
	svc := NewService(rec, ids.New())
	c := filledCart(t, 3)
	items := c.Items()

	order, err := svc.Submit(context.Background(), &fakeIdentity{}, c, validInfo)
	require.NoError(t, err)

	assert.Equal(t, []call{
		{store.Orders, "create"},
		{store.OrderItems, "create"},
		{store.OrderItems, "create"},
		{store.OrderItems, "create"},
	}, rec.calls)

	assert.Regexp(t, `^order_\d+$`, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.InDelta(t, 180, order.TotalAmount, 1e-9)
	assert.Equal(t, "user_1", order.UserID)
	require.Len(t, order.Items, 3)
	for i, it := range order.Items {
		assert.Equal(t, order.ID, it.OrderID)
		assert.Equal(t, 1, it.Quantity)
		assert.Equal(t, items[i].WeightKg, it.WeightKg)
		assert.Equal(t, items[i].PricePerKg, it.UnitPrice)
	}
	assert.Zero(t, c.Count())

	rows, err := rec.inner.Collection(store.OrderItems).List(context.Background(), store.Query{})
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestFailureLeavesCartIntact(t *testing.T) {
	rec := &recorder{inner: store.NewMemoryBackend(), failAt: 3}
	svc := NewService(rec, ids.New())
	c := filledCart(t, 3)

	_, err := svc.Submit(context.Background(), &fakeIdentity{}, c, validInfo)
	assert.Error(t, err)
	assert.Equal(t, 3, c.Count())
	// without transactions the order row stays behind
	rows, err := rec.inner.Collection(store.Orders).List(context.Background(), store.Query{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestIdentityFailureWritesNothing(t *testing.T) {
	rec := &recorder{inner: store.NewMemoryBackend()}
	svc := NewService(rec, ids.New())
	c := filledCart(t, 1)

	_, err := svc.Submit(context.Background(), &fakeIdentity{err: errors.New("auth down")}, c, validInfo)
	assert.Error(t, err)
	assert.Empty(t, rec.calls)
	assert.Equal(t, 1, c.Count())
}

func TestTransactionRollsBackOrder(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "shop.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	require.NoError(t, db.Migrator().DropTable(store.OrderItems))

	backend := store.NewGormBackend(db)
	svc := NewService(backend, ids.New())
	c := filledCart(t, 2)

	_, err = svc.Submit(context.Background(), &fakeIdentity{}, c, validInfo)
	assert.Error(t, err)
	assert.Equal(t, 2, c.Count())

	rows, err := backend.Collection(store.Orders).List(context.Background(), store.Query{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

type blockingIdentity struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingIdentity) Me(ctx context.Context) (*models.User, error) {
	close(b.entered)
	<-b.release
	return &models.User{ID: "user_1"}, nil
}

func TestSecondSubmitWhileInFlightIsRejected(t *testing.T) {
	svc := NewService(store.NewMemoryBackend(), ids.New())
	c := filledCart(t, 1)
	me := &blockingIdentity{entered: make(chan struct{}), release: make(chan struct{})}

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), me, c, validInfo)
		done <- err
	}()
	<-me.entered

	_, err := svc.Submit(context.Background(), &fakeIdentity{}, c, validInfo)
	assert.ErrorIs(t, err, ErrSubmitting)

	close(me.release)
	require.NoError(t, <-done)
}
