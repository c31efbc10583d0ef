package rewards

import (
	"context"

	interf "github.com/glkeru/rewards/internal/interfaces"
	model "github.com/glkeru/rewards/internal/models"
	"github.com/shopspring/decimal"
)

type DashboardService struct {
	ledger   *Ledger
	payments interf.PaymentStorage
	rate     decimal.Decimal
}

func NewDashboardService(ledger *Ledger, payments interf.PaymentStorage, rate decimal.Decimal) *DashboardService {
	return &DashboardService{ledger, payments, rate}
}

// Баланс и история выплат
func (d *DashboardService) Summary(ctx context.Context, user string) (model.Dashboard, error) {
	dashboard, err := d.Balance(ctx, user)
	if err != nil {
		return model.Dashboard{}, err
	}
	dashboard.PaymentHistory, err = d.History(ctx, user)
	if err != nil {
		return model.Dashboard{}, err
	}
	return dashboard, nil
}

// Баланс без истории выплат
func (d *DashboardService) Balance(ctx context.Context, user string) (model.Dashboard, error) {
	balance, err := d.ledger.Balance(ctx, user)
	if err != nil {
		return model.Dashboard{}, err
	}
	return model.Dashboard{
		TotalTokens:       balance.TotalTokens,
		AvailableTokens:   balance.AvailableTokens,
		CashedOutTokens:   balance.CashedOutTokens,
		TotalEarnings:     balance.TotalEarnings,
		AvailableEarnings: decimal.NewFromInt(balance.AvailableTokens).Mul(d.rate),
	}, nil
}

func (d *DashboardService) History(ctx context.Context, user string) ([]model.PaymentRecord, error) {
	records, err := d.payments.ListByUser(ctx, user)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.PaymentRecord{}
	}
	return records, nil
}
