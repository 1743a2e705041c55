package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	authapp "github.com/muhammadheryan/storefront/application/auth"
	categoryapp "github.com/muhammadheryan/storefront/application/category"
	commentapp "github.com/muhammadheryan/storefront/application/comment"
	orderapp "github.com/muhammadheryan/storefront/application/order"
	productapp "github.com/muhammadheryan/storefront/application/product"
	regionapp "github.com/muhammadheryan/storefront/application/region"
	userapp "github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/thirdparty/storage"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	AuthApp     authapp.AuthApp
	UserApp     userapp.UserApp
	RegionApp   regionapp.RegionApp
	CategoryApp categoryapp.CategoryApp
	ProductApp  productapp.ProductApp
	CommentApp  commentapp.CommentApp
	OrderApp    orderapp.OrderApp

	Storage       *storage.Disk
	PublicBaseURL string
	MaxUploadSize int64
	MetricsAPIKey string

	Log *zap.Logger
}

const idPath = "/{id:[0-9]+}"

func NewTransport(rh *RestHandler) http.Handler {
	rh.Log = logger.OrNop(rh.Log)
	router := mux.NewRouter()

	anyUser := func(h http.HandlerFunc) http.Handler {
		return AuthMiddleware(rh.AuthApp)(h)
	}
	only := func(h http.HandlerFunc, roles ...constant.Role) http.Handler {
		return AuthMiddleware(rh.AuthApp, roles...)(h)
	}
	admin := constant.RoleAdmin
	seller := constant.RoleSeller

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// internal
	router.Handle("/metrics", InternalMiddleware(rh.MetricsAPIKey)(promhttp.Handler())).Methods(http.MethodGet)

	// auth
	router.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/auth/verify", rh.Verify).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/auth/access-token", rh.RefreshAccessToken).Methods(http.MethodPost)
	router.Handle("/auth"+idPath, anyUser(rh.GetAuthUser)).Methods(http.MethodGet)

	// regions
	router.Handle("/regions", anyUser(rh.ListRegions)).Methods(http.MethodGet)
	router.Handle("/regions/all", anyUser(rh.ListRegions)).Methods(http.MethodGet)
	router.Handle("/regions", only(rh.CreateRegion, admin)).Methods(http.MethodPost)
	router.Handle("/regions"+idPath, only(rh.GetRegion, admin)).Methods(http.MethodGet)
	router.Handle("/regions"+idPath, only(rh.UpdateRegion, admin)).Methods(http.MethodPatch)
	router.Handle("/regions"+idPath, only(rh.DeleteRegion, admin)).Methods(http.MethodDelete)

	// categories
	router.HandleFunc("/categories/all", rh.ListCategories).Methods(http.MethodGet)
	router.HandleFunc("/categories"+idPath, rh.GetCategory).Methods(http.MethodGet)
	router.Handle("/categories", only(rh.CreateCategory, admin)).Methods(http.MethodPost)
	router.Handle("/categories"+idPath, only(rh.UpdateCategory, admin)).Methods(http.MethodPatch)
	router.Handle("/categories"+idPath, only(rh.DeleteCategory, admin)).Methods(http.MethodDelete)

	// products
	router.HandleFunc("/products/all", rh.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/category"+idPath, rh.ListProductsByCategory).Methods(http.MethodGet)
	router.HandleFunc("/products"+idPath, rh.GetProduct).Methods(http.MethodGet)
	router.Handle("/products", only(rh.CreateProduct, admin, seller)).Methods(http.MethodPost)
	router.Handle("/products"+idPath, only(rh.UpdateProduct, admin, seller)).Methods(http.MethodPatch)
	router.Handle("/products"+idPath, only(rh.DeleteProduct, admin, seller)).Methods(http.MethodDelete)

	// comments
	router.Handle("/comments/product"+idPath, anyUser(rh.ListProductComments)).Methods(http.MethodGet)
	router.Handle("/comments"+idPath, anyUser(rh.GetComment)).Methods(http.MethodGet)
	router.Handle("/comments", anyUser(rh.CreateComment)).Methods(http.MethodPost)
	router.Handle("/comments"+idPath, anyUser(rh.UpdateComment)).Methods(http.MethodPatch)
	router.Handle("/comments"+idPath, anyUser(rh.DeleteComment)).Methods(http.MethodDelete)

	// orders
	router.Handle("/order/my-orders", anyUser(rh.ListMyOrders)).Methods(http.MethodGet)
	router.Handle("/order", anyUser(rh.CreateOrder)).Methods(http.MethodPost)
	router.Handle("/order"+idPath, only(rh.GetOrder, admin)).Methods(http.MethodGet)
	router.Handle("/order"+idPath, only(rh.UpdateOrder, admin)).Methods(http.MethodPatch)
	router.Handle("/order"+idPath, only(rh.DeleteOrder, admin)).Methods(http.MethodDelete)

	// users
	router.Handle("/users/all", only(rh.ListUsers, admin)).Methods(http.MethodGet)
	router.Handle("/users/byregion"+idPath, only(rh.ListUsersByRegion, admin)).Methods(http.MethodGet)
	router.Handle("/users"+idPath, only(rh.GetUser, admin)).Methods(http.MethodGet)
	router.Handle("/users", only(rh.CreateUser, admin)).Methods(http.MethodPost)
	router.Handle("/users"+idPath, only(rh.UpdateUser, admin)).Methods(http.MethodPatch)
	router.Handle("/users"+idPath, only(rh.DeleteUser, admin)).Methods(http.MethodDelete)

	// files
	router.Handle("/uploads", anyUser(rh.Upload)).Methods(http.MethodPost)
	router.HandleFunc("/image/{filename}", rh.ServeImage).Methods(http.MethodGet)

	// middleware
	router.Use(LoggingMiddleware(rh.Log))
	router.Use(MetricsMiddleware())

	return router
}
