package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/notifier"
)

func newTypeStore() *Store[domain.DocumentType, *domain.DocumentType] {
	return NewStore[domain.DocumentType]("document_type", notifier.NoOp{})
}

func TestStoreAddAndFindByID(t *testing.T) {
	store := newTypeStore()
	store.Add(domain.DocumentType{ID: "dt-1", Name: "passport", State: true})

	got, err := store.FindByID("dt-1")
	require.NoError(t, err)
	assert.Equal(t, "passport", got.Name)

	_, err = store.FindByID("missing")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestStoreReadsReturnCopies(t *testing.T) {
	store := newTypeStore()
	store.Add(domain.DocumentType{ID: "dt-1", Name: "passport", State: true})

	got, err := store.FindByID("dt-1")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := store.FindByID("dt-1")
	require.NoError(t, err)
	assert.Equal(t, "passport", again.Name)
}

func TestStoreReplace(t *testing.T) {
	store := newTypeStore()
	store.Add(domain.DocumentType{ID: "dt-1", Name: "passport", State: true})

	updated, err := store.Replace("dt-1", domain.DocumentType{ID: "dt-1", Name: "national id", State: false})
	require.NoError(t, err)
	assert.Equal(t, "national id", updated.Name)

	_, err = store.Replace("missing", domain.DocumentType{ID: "missing"})
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestStoreRemoveSplicesOut(t *testing.T) {
	store := newTypeStore()
	store.Add(domain.DocumentType{ID: "dt-1", Name: "passport"})
	store.Add(domain.DocumentType{ID: "dt-2", Name: "national id"})

	require.NoError(t, store.Remove("dt-1"))

	_, err := store.FindByIDIncludingDeleted("dt-1")
	require.ErrorIs(t, err, domain.ErrRecordNotFound, "hard delete must not leave an audit row")

	all := store.All()
	require.Len(t, all, 1)
	assert.Equal(t, "dt-2", all[0].ID)
}

func TestStoreRemoveSoftKeepsAuditRow(t *testing.T) {
	store := newTypeStore()
	store.Add(domain.DocumentType{ID: "dt-1", Name: "passport"})

	require.NoError(t, store.RemoveSoft("dt-1"))
	require.ErrorIs(t, store.RemoveSoft("dt-1"), domain.ErrRecordNotFound, "second soft delete sees no live row")

	_, err := store.FindByID("dt-1")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.Empty(t, store.All())

	got, err := store.FindByIDIncludingDeleted("dt-1")
	require.NoError(t, err)
	require.NotNil(t, got.DeletedAt)
}

func TestStoreRemoveSoftNotifies(t *testing.T) {
	events := notifier.New(1)
	store := NewStore[domain.DocumentType]("document_type", events)
	store.Add(domain.DocumentType{ID: "dt-1", Name: "passport"})

	require.NoError(t, store.RemoveSoft("dt-1"))

	select {
	case event := <-events.Events():
		assert.Equal(t, "document_type", event.Kind)
		deleted, ok := event.Entity.(domain.DocumentType)
		require.True(t, ok)
		assert.NotNil(t, deleted.DeletedAt)
	default:
		t.Fatal("expected a deletion event")
	}
}

func TestStoreFilterAndFindFirstKeepInsertionOrder(t *testing.T) {
	store := newTypeStore()
	store.Add(domain.DocumentType{ID: "dt-1", Name: "passport", State: true})
	store.Add(domain.DocumentType{ID: "dt-2", Name: "national id", State: false})
	store.Add(domain.DocumentType{ID: "dt-3", Name: "driver license", State: true})

	active := store.Filter(func(dt domain.DocumentType) bool { return dt.State })
	require.Len(t, active, 2)
	assert.Equal(t, "dt-1", active[0].ID)
	assert.Equal(t, "dt-3", active[1].ID)

	first, err := store.FindFirst(func(dt domain.DocumentType) bool { return dt.State })
	require.NoError(t, err)
	assert.Equal(t, "dt-1", first.ID)
}

func TestStoreConcurrentAdds(t *testing.T) {
	store := NewStore[domain.Transfer]("transfer", notifier.NoOp{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Add(domain.Transfer{ID: string(rune('a' + n%26))})
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.All(), 50)
}
