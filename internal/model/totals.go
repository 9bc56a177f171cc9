package model

import (
	apperrors "eventease-booking/pkg/app_errors"

	"github.com/shopspring/decimal"
)

// TotalsPath 金額推導路徑
type TotalsPath string

const (
	// TotalsPathItems 有票項：依票項加總
	TotalsPathItems TotalsPath = "items"
	// TotalsPathFlatPrice 無票項：使用活動單一票價
	TotalsPathFlatPrice TotalsPath = "flat_price"
)

// Totals 重新計算後的預約金額與人數
type Totals struct {
	Path           TotalsPath
	Amount         decimal.Decimal
	TotalAmount    decimal.Decimal
	AttendeesCount int
	// Persist 為 false 時表示保留原值，不需要寫回資料庫
	Persist bool
}

// RecomputeTotals 依票項重新推導預約的 amount、total_amount 與 attendees_count。
//
// 有票項時以票種「目前價格」加總（不是票項鎖定的 price_per_ticket），
// 因此票種調價後預約總額會與票項小計不一致。
// 沒有票項時只有在 amount 與 total_amount 都是 0 才套用活動票價，
// attendees_count 為 0 時補成 1，避免覆蓋呼叫端手動設定的金額。
//
// 同一份資料重算多次結果相同。
func RecomputeTotals(booking *EventBooking, event *Event, items []*BookingTicketItem) (Totals, error) {
	if len(items) > 0 {
		total := decimal.Zero
		attendees := 0
		for _, item := range items {
			if item.Category == nil {
				return Totals{}, apperrors.ErrTicketCategoryRequired
			}
			total = total.Add(item.Category.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			attendees += item.Quantity
		}
		return Totals{
			Path:           TotalsPathItems,
			Amount:         total,
			TotalAmount:    total,
			AttendeesCount: attendees,
			Persist:        true,
		}, nil
	}

	totals := Totals{
		Path:           TotalsPathFlatPrice,
		Amount:         booking.Amount,
		TotalAmount:    booking.TotalAmount,
		AttendeesCount: booking.AttendeesCount,
	}
	if !booking.Amount.IsZero() || !booking.TotalAmount.IsZero() {
		return totals, nil
	}

	price := decimal.Zero
	if event != nil {
		price = event.FlatPrice()
	}
	totals.Amount = price
	totals.TotalAmount = price
	if totals.AttendeesCount == 0 {
		totals.AttendeesCount = 1
	}
	totals.Persist = true
	return totals, nil
}

// ApplyTotals 將重算結果寫回預約
func (b *EventBooking) ApplyTotals(t Totals) {
	b.Amount = t.Amount
	b.TotalAmount = t.TotalAmount
	b.AttendeesCount = t.AttendeesCount
}
