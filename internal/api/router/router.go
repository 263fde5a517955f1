package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/courierloop/delivery-notifier/internal/api/handlers/admin"
	"github.com/courierloop/delivery-notifier/internal/api/handlers/delivery"
	"github.com/courierloop/delivery-notifier/internal/api/handlers/notifications"
	"github.com/courierloop/delivery-notifier/internal/api/handlers/sms"
	"github.com/courierloop/delivery-notifier/internal/middlewares"
)

func New(
	deliveryHandler *delivery.Handler,
	smsHandler *sms.Handler,
	notifHandler *notifications.Handler,
	adminHandler *admin.Handler,
) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	webhooks := e.Group("/api/webhooks")
	{
		webhooks.POST("/delivery", deliveryHandler.Webhook)
		webhooks.POST("/sms", smsHandler.Webhook)
	}

	api := e.Group("/api/notifications")
	{
		api.GET("/", notifHandler.List)
		api.GET("/:id", notifHandler.Get)
		api.GET("/:id/status", notifHandler.GetStatus)
	}

	e.GET("/api/activity", notifHandler.Activity)

	adm := e.Group("/api/admin")
	{
		adm.POST("/send-batch", adminHandler.SendBatch)
		adm.POST("/staff-summary", adminHandler.SendSummary)
		adm.POST("/resend/:id", adminHandler.Resend)
	}

	return e
}
