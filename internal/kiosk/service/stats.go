package service

import (
	"sort"
	"time"

	"cafe-kiosk/internal/kiosk/domain/dto"
	"cafe-kiosk/internal/kiosk/domain/models"
)

const topItemsLimit = 5

// Overview aggregates the placed orders for the dashboard landing view:
// today's revenue and order count, completed orders, active tokens
// (Pending or Preparing) and the best selling items.
func (ks *KioskService) Overview(now time.Time) dto.OverviewResponse {
	overview := dto.OverviewResponse{TopItems: []dto.ItemSales{}}

	sold := map[string]int{}
	for _, o := range ks.store.Orders() {
		if sameDay(o.CreatedAt, now) {
			overview.TodaySales += o.Total
			overview.OrdersToday++
		}
		switch o.Status {
		case models.StatusCompleted:
			overview.CompletedOrders++
		case models.StatusPending, models.StatusPreparing:
			overview.ActiveTokens++
		}
		for _, line := range o.Items {
			sold[line.MenuItem.Name] += line.Quantity
		}
	}

	for name, qty := range sold {
		overview.TopItems = append(overview.TopItems, dto.ItemSales{Name: name, Sold: qty})
	}
	sort.Slice(overview.TopItems, func(i, j int) bool {
		if overview.TopItems[i].Sold != overview.TopItems[j].Sold {
			return overview.TopItems[i].Sold > overview.TopItems[j].Sold
		}
		return overview.TopItems[i].Name < overview.TopItems[j].Name
	})
	if len(overview.TopItems) > topItemsLimit {
		overview.TopItems = overview.TopItems[:topItemsLimit]
	}

	return overview
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
