package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gestao/internal/api/dashboard"
	"gestao/internal/api/movement"
	"gestao/internal/api/product"
	"gestao/internal/api/transaction"
	"gestao/internal/api/user"
	"gestao/internal/domain"
	"gestao/internal/pkg/cache"
	"gestao/internal/pkg/logger"
	"gestao/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Product     *product.Handler
	Movement    *movement.Handler
	Transaction *transaction.Handler
	Dashboard   *dashboard.Handler
	User        *user.Handler
}

// Options controla os middlewares globais.
type Options struct {
	TokenService       middleware.TokenService
	Cache              cache.Client
	RateLimitMax       int
	RateLimitPeriod    time.Duration
	CORSAllowedOrigins []string
	Logger             logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opts Options) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RateLimiter(opts.Cache, opts.RateLimitMax, opts.RateLimitPeriod, opts.Logger))

	r.HandleFunc("/ping", PingHandler).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Rotas públicas de autenticação
	public := r.PathPrefix("/v1").Subrouter()
	public.HandleFunc("/register", h.User.RegisterUserHandler).Methods(http.MethodPost)
	public.HandleFunc("/login", h.User.LoginUserHandler).Methods(http.MethodPost)

	// Rotas protegidas por JWT
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.Use(middleware.NewAuthMiddleware(opts.TokenService, opts.Logger))

	v1.HandleFunc("/products", h.Product.CreateProductHandler).Methods(http.MethodPost)
	v1.HandleFunc("/products", h.Product.ListProductsHandler).Methods(http.MethodGet)
	v1.HandleFunc("/products/inventory-value", h.Product.InventoryValueHandler).Methods(http.MethodGet)
	v1.HandleFunc("/products/low-stock", h.Product.LowStockHandler).Methods(http.MethodGet)
	v1.HandleFunc("/products/{id:[0-9]+}", h.Product.GetProductByIDHandler).Methods(http.MethodGet)
	v1.HandleFunc("/products/{id:[0-9]+}", h.Product.UpdateProductHandler).Methods(http.MethodPut)
	v1.Handle("/products/{id:[0-9]+}",
		middleware.PermissionMiddleware(opts.Logger, domain.RoleAdmin)(http.HandlerFunc(h.Product.DeleteProductHandler)),
	).Methods(http.MethodDelete)

	v1.HandleFunc("/movements", h.Movement.RecordMovementHandler).Methods(http.MethodPost)
	v1.HandleFunc("/movements", h.Movement.ListMovementsHandler).Methods(http.MethodGet)
	v1.HandleFunc("/movements/{id:[0-9]+}", h.Movement.GetMovementByIDHandler).Methods(http.MethodGet)

	v1.HandleFunc("/transactions", h.Transaction.CreateTransactionHandler).Methods(http.MethodPost)
	v1.HandleFunc("/transactions", h.Transaction.ListTransactionsHandler).Methods(http.MethodGet)
	v1.HandleFunc("/transactions/balance", h.Transaction.CurrentBalanceHandler).Methods(http.MethodGet)
	v1.HandleFunc("/transactions/monthly-balance", h.Transaction.MonthlyBalanceHandler).Methods(http.MethodGet)
	v1.HandleFunc("/transactions/{id:[0-9]+}", h.Transaction.GetTransactionByIDHandler).Methods(http.MethodGet)

	v1.HandleFunc("/dashboard", h.Dashboard.SummaryHandler).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins:   opts.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}

// PingHandler é o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
