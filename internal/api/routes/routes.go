package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"learnlive/internal/api/controllers"
	"learnlive/pkg/middleware"
	"learnlive/pkg/utils"
)

type Handlers struct {
	Accounts  *controllers.AccountController
	Courses   *controllers.CourseController
	Sessions  *controllers.SessionController
	Materials *controllers.MaterialController
	Payments  *controllers.PaymentController
}

type Options struct {
	CORSOrigins    []string
	UploadDir      string
	MaxUploadBytes int64
	Logger         *zap.Logger

	// Metrics and Gatherer are optional; /metrics is mounted only when Gatherer is set.
	Metrics  *middleware.HTTPMetrics
	Gatherer prometheus.Gatherer
}

// multipartOverhead is the room left for form fields and part headers on top
// of the largest accepted file.
const multipartOverhead = 1 << 20

func NewRouter(opts Options, resolver middleware.PrincipalResolver, h Handlers) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORSMiddleware(opts.CORSOrigins))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
	}
	if opts.MaxUploadBytes > 0 {
		r.MaxMultipartMemory = opts.MaxUploadBytes
	}

	var uploadLimit int64
	if opts.MaxUploadBytes > 0 {
		uploadLimit = opts.MaxUploadBytes + multipartOverhead
	}
	RegisterRoutes(r, middleware.JWTAuthMiddleware(resolver), uploadLimit, h)

	if opts.UploadDir != "" {
		r.Static("/static", opts.UploadDir)
	}
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Not found")
	})

	return r
}

// RegisterRoutes mounts the API. uploadLimit caps the material upload body;
// zero leaves it uncapped.
func RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc, uploadLimit int64, h Handlers) {
	r.GET("/", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "Welcome to LearnLive API")
	})

	r.POST("/token", h.Accounts.Token)
	r.POST("/users", h.Accounts.Register)

	usersGroup := r.Group("/users", auth)
	usersGroup.GET("/me", h.Accounts.Me)
	usersGroup.PUT("/me/class", h.Accounts.UpdateClassLevel)

	coursesGroup := r.Group("/courses", auth)
	coursesGroup.GET("", h.Courses.ListCourses)
	coursesGroup.POST("", h.Courses.CreateCourse)
	coursesGroup.GET("/enrolled", h.Courses.ListEnrolled)
	coursesGroup.GET("/:id", h.Courses.GetCourse)
	coursesGroup.POST("/:id/enroll", h.Courses.Enroll)
	coursesGroup.GET("/:id/materials", h.Materials.ListMaterials)
	coursesGroup.POST("/:id/materials", middleware.LimitBody(uploadLimit), h.Materials.CreateMaterial)
	coursesGroup.GET("/:id/materials/:material_id", h.Materials.GetMaterial)
	coursesGroup.DELETE("/:id/materials/:material_id", h.Materials.DeleteMaterial)

	sessionsGroup := r.Group("/sessions", auth)
	sessionsGroup.GET("/upcoming", h.Sessions.Upcoming)
	sessionsGroup.POST("", h.Sessions.CreateSession)
	sessionsGroup.GET("/:id", h.Sessions.GetSession)

	paymentsGroup := r.Group("/payments", auth)
	paymentsGroup.POST("", h.Payments.ProcessPayment)
}
