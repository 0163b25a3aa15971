package routes

import (
	"freightdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuoteSessions = "/quotes/sessions"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	sessions := rg.Group(PathQuoteSessions)
	{
		sessions.POST("", quoteHandler.OpenSession)
		sessions.GET("/:session_id", quoteHandler.GetSession)
		sessions.DELETE("/:session_id", quoteHandler.CloseSession)

		// Wizard step commits. Every commit marks the draft dirty.
		sessions.PUT("/:session_id/customer", quoteHandler.UpdateCustomer)
		sessions.PUT("/:session_id/shipment", quoteHandler.UpdateShipment)
		sessions.PUT("/:session_id/haulage", quoteHandler.SelectHaulage)
		sessions.PUT("/:session_id/seafreights", quoteHandler.SelectSeafreights)
		sessions.PUT("/:session_id/miscellaneous", quoteHandler.SelectMiscellaneous)
		sessions.PUT("/:session_id/margin", quoteHandler.SetMargin)

		// Draft persistence and sync status.
		sessions.POST("/:session_id/save", quoteHandler.SaveDraft)
		sessions.GET("/:session_id/status", quoteHandler.GetStatus)

		// Options: snapshot, persist, compare, promote.
		sessions.POST("/:session_id/options", quoteHandler.AddOption)
		sessions.POST("/:session_id/options/save", quoteHandler.SaveOptions)
		sessions.GET("/:session_id/comparison", quoteHandler.GetComparison)
		sessions.POST("/:session_id/finalize", quoteHandler.Finalize)
	}
}
