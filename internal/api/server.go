package api

import (
	"github.com/gin-gonic/gin"

	"github.com/vilohq/vilo-api/internal/middleware"
	"github.com/vilohq/vilo-api/internal/service"
	"github.com/vilohq/vilo-api/internal/service/pubsub"
	"github.com/vilohq/vilo-api/pkg/logger"
)

type Server struct {
	tenant       *TenantHandler
	room         *RoomHandler
	booking      *BookingHandler
	discovery    *DiscoveryHandler
	notification *NotificationHandler
	support      *SupportHandler
	payment      *PaymentHandler
	websocket    *WebSocketHandler
	auth         *middleware.AuthMiddleware
	rateLimit    *middleware.RateLimitMiddleware
	validation   *middleware.ValidationMiddleware
}

func NewServer(
	tenantService *service.TenantService,
	roomService *service.RoomService,
	bookingService *service.BookingService,
	discoveryService *service.DiscoveryService,
	notificationService *service.NotificationService,
	supportService *service.SupportService,
	paymentService *service.PaymentService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		tenant:       NewTenantHandler(tenantService),
		room:         NewRoomHandler(roomService),
		booking:      NewBookingHandler(bookingService),
		discovery:    NewDiscoveryHandler(discoveryService),
		notification: NewNotificationHandler(notificationService),
		support:      NewSupportHandler(supportService),
		payment:      NewPaymentHandler(paymentService),
		websocket:    NewWebSocketHandler(logger, pubsub),
		auth:         auth,
		rateLimit:    rateLimit,
		validation:   validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(10 * 1024 * 1024)) // 10MB max
	api.Use(s.validation.ValidateContentType("application/json", "text/plain"))

	// Global per-IP rate limiting covers the public surface too
	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	{
		discovery := api.Group("/discovery")
		{
			discovery.GET("/properties", s.discovery.ListProperties)
			discovery.GET("/properties/:slug", s.discovery.GetProperty)
			discovery.GET("/properties/:slug/rooms", s.discovery.ListPropertyRooms)
			discovery.GET("/properties/:slug/availability", s.discovery.CheckAvailability)
			discovery.GET("/properties/:slug/booked-dates", s.discovery.GetBookedDates)
			discovery.GET("/properties/:slug/pricing", s.discovery.GetPricing)
			discovery.POST("/bookings", s.discovery.CreatePublicBooking)
		}

		tenants := api.Group("/tenants", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit(), s.auth.RequireRole("admin"))
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
			tenants.GET("/:id", s.tenant.GetTenant)
			tenants.PUT("/:id", s.tenant.UpdateTenant)
		}

		staff := api.Group("", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit(), s.auth.RequireRole("user"))
		{
			rooms := staff.Group("/rooms")
			{
				rooms.POST("", s.room.CreateRoom)
				rooms.GET("", s.room.ListRooms)
				rooms.GET("/:id", s.room.GetRoom)
				rooms.PUT("/:id", s.room.UpdateRoom)
				rooms.DELETE("/:id", s.room.DeleteRoom)
			}

			rates := staff.Group("/rates")
			{
				rates.POST("", s.room.CreateSeasonalRate)
				rates.GET("", s.room.ListSeasonalRates)
				rates.DELETE("/:id", s.room.DeleteSeasonalRate)
			}

			coupons := staff.Group("/coupons")
			{
				coupons.POST("", s.room.CreateCoupon)
				coupons.GET("", s.room.ListCoupons)
				coupons.DELETE("/:id", s.room.DeleteCoupon)
			}

			addons := staff.Group("/addons")
			{
				addons.POST("", s.room.CreateAddon)
				addons.GET("", s.room.ListAddons)
				addons.DELETE("/:id", s.room.DeleteAddon)
			}

			bookings := staff.Group("/bookings")
			{
				bookings.POST("", s.booking.CreateBooking)
				bookings.GET("", s.booking.ListBookings)
				bookings.POST("/check-conflicts", s.booking.CheckConflicts)
				bookings.GET("/:id", s.booking.GetBooking)
				bookings.PUT("/:id", s.booking.UpdateBooking)
				bookings.DELETE("/:id", s.booking.DeleteBooking)
			}

			notifications := staff.Group("/notifications")
			{
				notifications.GET("", s.notification.ListNotifications)
				notifications.POST("/read-all", s.notification.MarkAllNotificationsRead)
				notifications.POST("/:id/read", s.notification.MarkNotificationRead)
				notifications.GET("/stream", s.websocket.HandleWebSocket)
			}

			staff.GET("/activity", s.notification.ListActivity)

			support := staff.Group("/support/threads")
			{
				support.POST("", s.support.OpenThread)
				support.GET("", s.support.ListThreads)
				support.GET("/:id", s.support.GetThread)
				support.POST("/:id/messages", s.support.ReplyToThread)
				support.POST("/:id/close", s.support.CloseThread)
			}

			payments := staff.Group("/payments")
			{
				payments.POST("/initialize", s.payment.InitializePayment)
				payments.GET("/verify/:reference", s.payment.VerifyPayment)
			}
		}

		// Customer portal authenticates with the session token issued at booking
		portal := api.Group("/portal", s.auth.CustomerSessionAuth())
		{
			portal.POST("/support/threads", s.support.OpenThread)
			portal.GET("/support/threads", s.support.ListThreads)
			portal.GET("/support/threads/:id", s.support.GetThread)
			portal.POST("/support/threads/:id/messages", s.support.ReplyToThread)
		}

		// Gateway calls this directly, authentication is the request signature
		api.POST("/payments/webhook", s.payment.HandleWebhook)
	}
}

// StartWebSocketHub starts the hub that fans notifications out to clients
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
