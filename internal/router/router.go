package router

import (
	"time"

	"distrohub/internal/config"
	"distrohub/internal/handler"
	"distrohub/internal/infra"
	"distrohub/internal/middleware"
	"distrohub/internal/model"
	"distrohub/internal/repository"
	"distrohub/internal/service"
	"distrohub/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher, gatewayCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	publisher := infra.NewRedisPublisher(rdb)
	paystack := infra.NewPaystackClient(cfg.PaystackBaseURL, cfg.PaystackSecretKey)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	distributorRepo := repository.NewDistributorRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	stockRepo := repository.NewStockRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	notificationSvc := service.NewNotificationService(notificationRepo, branchRepo, publisher, dispatcher)
	monitor := service.NewStockAlertMonitor(cfg.LowStockThreshold, notificationSvc)

	authSvc := service.NewAuthService(userRepo, distributorRepo, cfg)
	branchSvc := service.NewBranchService(branchRepo, distributorRepo)
	distributorSvc := service.NewDistributorService(distributorRepo, userRepo, invoiceRepo)
	ledgerSvc := service.NewLedgerService(stockRepo, auditRepo, branchRepo, monitor)
	orderSvc := service.NewOrderService(orderRepo, stockRepo, auditRepo, branchRepo, distributorRepo, monitor)
	paymentSvc := service.NewPaymentService(transactionRepo, paystack, gatewayCB, cfg.PaystackSecretKey)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	branchH := handler.NewBranchHandler(branchSvc)
	stockH := handler.NewStockHandler(ledgerSvc, distributorSvc)
	orderH := handler.NewOrderHandler(orderSvc, distributorSvc)
	distributorH := handler.NewDistributorHandler(distributorSvc)
	notificationH := handler.NewNotificationHandler(notificationSvc, distributorSvc)
	paymentH := handler.NewPaymentHandler(paymentSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, gatewayCB))

	// Gateway webhook — authenticated by HMAC signature, not JWT
	r.POST("/webhooks/paystack", paymentH.Webhook)

	auth := r.Group("/v1/auth")
	{
		auth.POST("/signup", middleware.LoginRateLimiter(), authH.Signup)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Any authenticated customer can place an order against a branch
		v1.POST("/distributor/create-order/:branch_id", orderH.Create)
		v1.GET("/orders/mine", orderH.ListMine)

		// Payments — any authenticated user
		payments := v1.Group("/payments")
		{
			payments.POST("/initialize", paymentH.Initialize)
			payments.GET("/verify/:reference", paymentH.Verify)
			payments.GET("", paymentH.ListMine)
			payments.GET("/:reference", paymentH.GetByReference)
		}

		// Notifications — distributor only
		notifications := v1.Group("/notifications", middleware.RequireRole(model.RoleDistributor))
		{
			notifications.GET("/unread", notificationH.ListUnread)
			notifications.PATCH("/:notification_id/read", notificationH.MarkRead)
		}

		// Distributor-only surface
		dist := v1.Group("/distributor", middleware.RequireRole(model.RoleDistributor))
		{
			dist.POST("/branches", branchH.Create)
			dist.GET("/branches", branchH.List)
			dist.GET("/branches/:branch_id/stock", stockH.ListByBranch)
			dist.GET("/branches/:branch_id/orders", orderH.ListForBranch)

			dist.POST("/add-stock/:branch_id", stockH.Add)
			dist.PATCH("/update-stock/:stock_id", stockH.Update)
			dist.DELETE("/delete-stock/:stock_id", stockH.Delete)
			dist.GET("/stock-history/:stock_id", stockH.History)

			dist.PATCH("/update-order/:order_id", orderH.UpdateStatus)
			dist.GET("/orders", orderH.ListForDistributor)

			dist.POST("/customers/assign", distributorH.AssignCustomer)
			dist.GET("/customers", distributorH.ListCustomers)
			dist.GET("/invoices", distributorH.ListInvoices)
			dist.GET("/payments", distributorH.ListPayments)
		}
	}

	return r
}
