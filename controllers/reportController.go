package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-campus-canteen/helpers"
	"go-campus-canteen/models"
	"go-campus-canteen/store"
)

// GetReportSummary aggregates the order collection for the staff
// dashboard and reports screens: counts per status, revenue from
// completed orders and the number of items sold.
func GetReportSummary(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := app.Orders()

		statusCounts := map[string]int{
			models.StatusPending:    0,
			models.StatusProcessing: 0,
			models.StatusReady:      0,
			models.StatusCompleted:  0,
			models.StatusCancelled:  0,
		}
		revenue := 0
		itemsSold := 0
		for _, order := range orders {
			statusCounts[order.Status]++
			if order.Status == models.StatusCompleted {
				revenue += order.Total
				for _, item := range order.Items {
					itemsSold += item.Quantity
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"total_orders":    len(orders),
			"status_counts":   statusCounts,
			"revenue":         revenue,
			"revenue_display": helpers.FormatRupiah(revenue),
			"items_sold":      itemsSold,
		})
	}
}
