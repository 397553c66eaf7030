package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/ayubkhn/contact-mailer/internal/api/handlers/contact"
	"github.com/ayubkhn/contact-mailer/internal/api/handlers/mail"
	"github.com/ayubkhn/contact-mailer/internal/api/respond"
)

// New wires all API routes.
func New(mailHandler *mail.Handler, contactHandler *contact.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")

	contacts := api.Group("/contacts")
	contacts.POST("/", contactHandler.Create)
	contacts.GET("/", contactHandler.GetAll)
	contacts.PUT("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)
	contacts.POST("/import", contactHandler.Import)

	emails := api.Group("/emails")
	emails.POST("/send", mailHandler.Send)
	emails.GET("/history", mailHandler.History)
	emails.GET("/scheduled", mailHandler.Scheduled)
	emails.DELETE("/scheduled/:id", mailHandler.Cancel)
	emails.GET("/:id/deliveries", mailHandler.DeliveryDetail)
	emails.GET("/deliveries/stats", mailHandler.DeliveryStats)
	emails.GET("/deliveries/:id/status", mailHandler.RecordStatus)
	emails.PUT("/deliveries/:id/status", mailHandler.OverrideStatus)
	emails.GET("/limit", mailHandler.Usage)

	api.GET("/track/:id", mailHandler.Track)

	api.GET("/health", func(c *ginext.Context) {
		respond.OK(c.Writer, "ok")
	})

	return e
}
