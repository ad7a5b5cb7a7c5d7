package coupon

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mohamadsobeh/menu-sub000/internal/domain"
)

// User-facing validation messages, rendered as-is by the client.
const (
	MsgInvalidCode   = "كود الخصم غير صالح"
	MsgMinOrder      = "لم يتم الوصول إلى الحد الأدنى للطلب"
	MsgCouponApplied = "تم تطبيق كود الخصم"
)

// Result is the outcome of a validation attempt. An unknown or inapplicable
// code is a Valid=false result, not an error; errors are reserved for the
// call itself failing (e.g. cancellation).
type Result struct {
	Valid       bool           `json:"valid"`
	Coupon      *domain.Coupon `json:"coupon,omitempty"`
	DiscountSYP int64          `json:"discount_syp"`
	Message     string         `json:"message"`
}

// Service validates coupon codes against a static list, simulating the
// latency of a remote lookup. The wait respects ctx so a caller that goes
// away cannot receive a late answer.
type Service struct {
	coupons map[string]domain.Coupon
	latency time.Duration
	logger  *zap.Logger
}

func NewService(coupons []domain.Coupon, latency time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	byCode := make(map[string]domain.Coupon, len(coupons))
	for _, c := range coupons {
		byCode[strings.ToUpper(c.Code)] = c
	}
	return &Service{
		coupons: byCode,
		latency: latency,
		logger:  logger,
	}
}

func (s *Service) Validate(ctx context.Context, code string, subtotalSYP int64) (Result, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}

	c, ok := s.coupons[strings.ToUpper(strings.TrimSpace(code))]
	if !ok || !c.Active {
		s.logger.Info("coupon rejected", zap.String("code", code))
		return Result{Valid: false, Message: MsgInvalidCode}, nil
	}

	if c.MinOrderSYP > 0 && subtotalSYP < c.MinOrderSYP {
		return Result{Valid: false, Message: MsgMinOrder}, nil
	}

	return Result{
		Valid:       true,
		Coupon:      &c,
		DiscountSYP: c.Discount(subtotalSYP),
		Message:     MsgCouponApplied,
	}, nil
}

// DefaultCoupons is the static list the mock validation runs against.
func DefaultCoupons() []domain.Coupon {
	return []domain.Coupon{
		{ID: 1, Code: "WELCOME10", DiscountType: domain.DiscountTypePercentage, Value: 10, Active: true},
		{ID: 2, Code: "SAVE20", DiscountType: domain.DiscountTypeFixed, Value: 20000, Active: true},
		{ID: 3, Code: "RAMADAN25", DiscountType: domain.DiscountTypePercentage, Value: 25, MinOrderSYP: 100000, MaxDiscountSYP: 50000, Active: true},
		{ID: 4, Code: "OLDPROMO", DiscountType: domain.DiscountTypeFixed, Value: 10000, Active: false},
	}
}
