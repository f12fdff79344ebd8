package budget

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()

	const goroutines = 32
	var (
		wg      sync.WaitGroup
		active  int
		maxSeen int
		mu      sync.Mutex
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := km.Lock("same-key")
			defer unlock()

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Errorf("expected at most 1 holder of the same key, saw %d", maxSeen)
	}
}

func TestKeyedMutex_ReleasesEntries(t *testing.T) {
	km := NewKeyedMutex()

	unlock := km.Lock("key-a")
	unlock()
	unlock = km.Lock("key-b")
	unlock()

	km.mu.Lock()
	defer km.mu.Unlock()
	if len(km.entries) != 0 {
		t.Errorf("expected all entries to be released, %d remain", len(km.entries))
	}
}

func TestUpsertBudget_ConcurrentSameKeyConvergesToOneRecord(t *testing.T) {
	userID, category, budgetRepo, categoryRepo := newBudgetFixture(t)
	uc := NewUpsertBudgetUseCase(budgetRepo, categoryRepo, NewKeyedMutex())

	const goroutines = 16
	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(amount int64) {
			defer wg.Done()

			_, err := uc.Execute(context.Background(), UpsertBudgetInput{
				UserID:     userID,
				CategoryID: category.ID,
				Month:      7,
				Year:       2025,
				Amount:     decimal.NewFromInt(amount),
			})
			errs <- err
		}(int64(100 + i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if budgetRepo.count() != 1 {
		t.Errorf("expected concurrent upserts to converge to 1 record, got %d", budgetRepo.count())
	}
}

func TestBudgetKey_DistinguishesTuples(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	base := budgetKey(userID, categoryID, 7, 2025)
	for name, other := range map[string]string{
		"different month":    budgetKey(userID, categoryID, 8, 2025),
		"different year":     budgetKey(userID, categoryID, 7, 2026),
		"different category": budgetKey(userID, uuid.New(), 7, 2025),
		"different user":     budgetKey(uuid.New(), categoryID, 7, 2025),
	} {
		if other == base {
			t.Errorf("%s produced the same key", name)
		}
	}
}
