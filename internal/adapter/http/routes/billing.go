package routes

import (
	"tms_gruas/internal/adapter/http/handlers"
	"tms_gruas/internal/adapter/http/ws"

	"github.com/gin-gonic/gin"
)

const (
	PathClosures = "/closures"
	PathInvoices = "/invoices"
)

func addBillingRoutes(rg *gin.RouterGroup, closureHandler *handlers.ClosureHandler, invoiceHandler *handlers.InvoiceHandler, hub *ws.Hub) {
	closures := rg.Group(PathClosures, notifyChanges(hub, "closure"))
	{
		closures.POST("", closureHandler.CreateClosure)
		closures.GET("", closureHandler.ListClosures)
		closures.GET("/:id", closureHandler.GetClosure)
	}

	invoices := rg.Group(PathInvoices, notifyChanges(hub, "invoice"))
	{
		invoices.POST("", invoiceHandler.IssueInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id/paid", invoiceHandler.MarkInvoicePaid)
		invoices.POST("/:id/email", invoiceHandler.SendInvoiceEmail)
		invoices.POST("/:id/pay", invoiceHandler.PayInvoice)
		invoices.GET("/:id/payment", invoiceHandler.GetInvoicePayment)
	}
}
