package authz

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func timeNow() time.Time {
	return time.Now().UTC()
}

func TestAuthorize_OwnerIsAllowed(t *testing.T) {
	ownerID := uuid.New()

	resources := []entity.Owned{
		entity.NewCategory(ownerID, "Food", entity.CategoryTypeExpense),
		entity.NewExpense(ownerID, uuid.New(), decimal.NewFromInt(10), timeNow(), ""),
		entity.NewIncome(ownerID, uuid.New(), decimal.NewFromInt(10), timeNow(), ""),
		entity.NewBudget(ownerID, uuid.New(), 7, 2025, decimal.NewFromInt(1000)),
	}

	for _, resource := range resources {
		if Authorize(resource, ownerID) != Allow {
			t.Errorf("expected Allow for owner on %T", resource)
		}
	}
}

func TestAuthorize_NonOwnerIsDenied(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	resources := []entity.Owned{
		entity.NewCategory(ownerID, "Food", entity.CategoryTypeExpense),
		entity.NewExpense(ownerID, uuid.New(), decimal.NewFromInt(10), timeNow(), ""),
		entity.NewIncome(ownerID, uuid.New(), decimal.NewFromInt(10), timeNow(), ""),
		entity.NewBudget(ownerID, uuid.New(), 7, 2025, decimal.NewFromInt(1000)),
	}

	for _, resource := range resources {
		if Authorize(resource, otherID) != Deny {
			t.Errorf("expected Deny for non-owner on %T", resource)
		}
	}
}

func TestAuthorize_NilInputsAreDenied(t *testing.T) {
	if Authorize(nil, uuid.New()) != Deny {
		t.Error("expected Deny for nil resource")
	}

	category := entity.NewCategory(uuid.New(), "Food", entity.CategoryTypeExpense)
	if Authorize(category, uuid.Nil) != Deny {
		t.Error("expected Deny for nil principal")
	}
}

func TestIsOwner(t *testing.T) {
	ownerID := uuid.New()
	category := entity.NewCategory(ownerID, "Food", entity.CategoryTypeExpense)

	if !IsOwner(category, ownerID) {
		t.Error("expected IsOwner to be true for owner")
	}
	if IsOwner(category, uuid.New()) {
		t.Error("expected IsOwner to be false for non-owner")
	}
}
