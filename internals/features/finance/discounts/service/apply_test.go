package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	model "academyku_backend/internals/features/finance/discounts/model"
	helper "academyku_backend/internals/helpers"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		discountType string
		value        float64
		wantDiscount float64
		wantFinal    float64
	}{
		{"ten percent", 1000, model.DiscountTypePercentage, 10, 100, 900},
		{"odd percentage rounds", 999.99, model.DiscountTypePercentage, 7.5, 75, 924.99},
		{"fixed", 1000, model.DiscountTypeFixed, 250, 250, 750},
		{"fixed clamps at zero", 100, model.DiscountTypeFixed, 500, 100, 0},
		{"hundred percent", 800, model.DiscountTypePercentage, 100, 800, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, final, err := Apply(tt.amount, tt.discountType, tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if discount != tt.wantDiscount {
				t.Errorf("discount = %v, want %v", discount, tt.wantDiscount)
			}
			if final != tt.wantFinal {
				t.Errorf("final = %v, want %v", final, tt.wantFinal)
			}
		})
	}

	if _, _, err := Apply(1000, "bogus", 10); !errors.Is(err, ErrInvalidType) {
		t.Errorf("Apply with unknown type: err = %v, want ErrInvalidType", err)
	}
}

// Applying then removing must restore the original amount exactly: the
// payment records the pre-discount amount, so restore is a plain read,
// and a re-plan over the restored amount is identical.
func TestApplyRemoveRoundTrip(t *testing.T) {
	original := 1234.56
	discount, final, err := Apply(original, model.DiscountTypePercentage, 12.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if helper.Round2(final+discount) != original {
		t.Errorf("final + discount = %v, want %v", final+discount, original)
	}
}

func TestCheck(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	courseID := uuid.New()
	otherCourse := uuid.New()
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)
	maxUses := 5

	base := func() *model.DiscountModel {
		return &model.DiscountModel{
			DiscountCode:   "WELCOME10",
			DiscountType:   model.DiscountTypePercentage,
			DiscountValue:  10,
			DiscountActive: true,
		}
	}

	t.Run("active unscoped code passes", func(t *testing.T) {
		if err := Check(base(), nil, nil, now); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("inactive", func(t *testing.T) {
		d := base()
		d.DiscountActive = false
		if err := Check(d, nil, nil, now); !errors.Is(err, ErrInactive) {
			t.Errorf("err = %v, want ErrInactive", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		d := base()
		d.DiscountExpiresAt = &past
		if err := Check(d, nil, nil, now); !errors.Is(err, ErrExpired) {
			t.Errorf("err = %v, want ErrExpired", err)
		}
	})

	t.Run("future expiry passes", func(t *testing.T) {
		d := base()
		d.DiscountExpiresAt = &future
		if err := Check(d, nil, nil, now); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("exhausted", func(t *testing.T) {
		d := base()
		d.DiscountMaxUses = &maxUses
		d.DiscountUsedCount = 5
		if err := Check(d, nil, nil, now); !errors.Is(err, ErrExhausted) {
			t.Errorf("err = %v, want ErrExhausted", err)
		}
	})

	t.Run("course scope mismatch", func(t *testing.T) {
		d := base()
		d.DiscountCourseID = &courseID
		if err := Check(d, &otherCourse, nil, now); !errors.Is(err, ErrWrongScope) {
			t.Errorf("err = %v, want ErrWrongScope", err)
		}
		if err := Check(d, nil, nil, now); !errors.Is(err, ErrWrongScope) {
			t.Errorf("missing course: err = %v, want ErrWrongScope", err)
		}
	})

	t.Run("course scope match", func(t *testing.T) {
		d := base()
		d.DiscountCourseID = &courseID
		if err := Check(d, &courseID, nil, now); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
