package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/mpancino/myAssetPlace-sub004/internal/models"
)

func TestLoanServiceSchedule(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, store)

	assets := NewAssetService(store)
	mortgage := &models.Asset{Name: "Home loan", Class: models.ClassMortgage, Value: 300000, Liability: true}
	if err := assets.Create(ctx, user.ID, mortgage); err != nil {
		t.Fatalf("create asset: %v", err)
	}
	if err := assets.AttachLoan(ctx, user.ID, &models.Loan{
		AssetID: mortgage.ID, Principal: 300000, AnnualRate: 0.06, TermYears: 30, PaymentsPerYear: 12,
	}); err != nil {
		t.Fatalf("attach loan: %v", err)
	}

	svc := NewLoanService(store)

	schedule, err := svc.Schedule(ctx, user.ID, mortgage.ID)
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	if len(schedule) != 360 {
		t.Fatalf("schedule length = %d, want 360", len(schedule))
	}
	if math.Abs(schedule[0].Payment-1798.65) > 0.01 {
		t.Errorf("first payment = %v, want ~1798.65", schedule[0].Payment)
	}

	summary, err := svc.Summary(ctx, user.ID, mortgage.ID)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	// Summary amounts are rounded to cents, unlike the raw schedule.
	if summary.Payment != 1798.65 {
		t.Errorf("Payment = %v, want exactly 1798.65", summary.Payment)
	}
	if math.Abs(summary.TotalPrincipal-300000) > 1e-6 {
		t.Errorf("TotalPrincipal = %v, want 300000", summary.TotalPrincipal)
	}
	if math.Abs(summary.TotalCost-(300000+summary.TotalInterest)) > 1e-9 {
		t.Errorf("TotalCost = %v, want principal plus interest", summary.TotalCost)
	}
	// Loan with no StartDate has zero elapsed periods.
	if summary.ElapsedPeriods != 0 {
		t.Errorf("ElapsedPeriods = %d, want 0", summary.ElapsedPeriods)
	}
	if summary.CurrentBalance != 300000 {
		t.Errorf("CurrentBalance = %v, want full principal", summary.CurrentBalance)
	}
}

func TestLoanServiceScheduleWithoutLoan(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, store)

	assets := NewAssetService(store)
	asset := &models.Asset{Name: "Cash", Class: models.ClassCash, Value: 1000}
	if err := assets.Create(ctx, user.ID, asset); err != nil {
		t.Fatalf("create asset: %v", err)
	}

	svc := NewLoanService(store)
	if _, err := svc.Schedule(ctx, user.ID, asset.ID); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
	if _, err := svc.Summary(ctx, user.ID, asset.ID); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestElapsedPeriods(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		loan models.Loan
		want int
	}{
		{
			name: "no start date",
			loan: models.Loan{PaymentsPerYear: 12},
			want: 0,
		},
		{
			name: "started eighteen months ago",
			loan: models.Loan{
				PaymentsPerYear: 12,
				StartDate:       time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC).Unix(),
			},
			want: 18,
		},
		{
			name: "annual payments",
			loan: models.Loan{
				PaymentsPerYear: 1,
				StartDate:       time.Date(2023, 8, 15, 0, 0, 0, 0, time.UTC).Unix(),
			},
			want: 3,
		},
		{
			name: "future start date",
			loan: models.Loan{
				PaymentsPerYear: 12,
				StartDate:       time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := elapsedPeriods(&tt.loan, now); got != tt.want {
				t.Errorf("elapsedPeriods = %d, want %d", got, tt.want)
			}
		})
	}
}
