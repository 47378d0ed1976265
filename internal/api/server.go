package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zuper-events/zuper-api/docs"
	v1 "github.com/zuper-events/zuper-api/internal/api/handler/v1"
	"github.com/zuper-events/zuper-api/internal/api/middleware"
	"github.com/zuper-events/zuper-api/internal/config"
	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/pkg/mailer"
	"github.com/zuper-events/zuper-api/internal/pkg/mediastore"
	"github.com/zuper-events/zuper-api/internal/pkg/payment"
	"github.com/zuper-events/zuper-api/internal/repository"
	"github.com/zuper-events/zuper-api/internal/repository/dao"
	"github.com/zuper-events/zuper-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	mail := mailer.New(conf.SMTP, conf.API.FrontendURL)
	gateway := payment.NewRazorpayGateway(conf.Razorpay.KeyID, conf.Razorpay.KeySecret)

	media, err := mediastore.New(conf.Cloudinary)
	if err != nil {
		// Uploads degrade to warnings, the API itself keeps working.
		zap.L().Warn("media store not configured, uploads will be skipped", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	registrationRepo := repository.NewRegistrationRepository(dao.NewRegistrationDAO(db))
	paymentRepo := repository.NewPaymentRepository(dao.NewPaymentDAO(db))
	guruRepo := repository.NewGuruApplicationRepository(dao.NewGuruApplicationDAO(db))
	storyRepo := repository.NewSuccessStoryRepository(dao.NewSuccessStoryDAO(db))

	userSvc := service.NewUserService(userRepo)
	uploadDir := conf.API.UploadDir

	authHandler := v1.NewAuthHandler(service.NewAuthService(userRepo))
	userHandler := v1.NewUserHandler(userSvc)
	eventHandler := v1.NewEventHandler(service.NewEventService(eventRepo))
	registrationHandler := v1.NewRegistrationHandler(
		service.NewRegistrationService(registrationRepo, eventRepo, userRepo, paymentRepo, gateway, mail))
	guruHandler := v1.NewGuruHandler(service.NewGuruService(guruRepo, userRepo, mail), media, uploadDir)
	storyHandler := v1.NewStoryHandler(service.NewStoryService(storyRepo), media, uploadDir)

	authenticator := middleware.NewAuthenticator(userSvc)

	s.MountHandlers(authenticator, authHandler, userHandler, eventHandler, registrationHandler, guruHandler, storyHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authenticator *middleware.Authenticator,
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	eventHandler *v1.EventHandler,
	registrationHandler *v1.RegistrationHandler,
	guruHandler *v1.GuruHandler,
	storyHandler *v1.StoryHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)
		public.GET("/events", eventHandler.HandleListEvents)
		public.GET("/events/:eventID", eventHandler.HandleGetEvent)
		public.GET("/guru/success-stories", storyHandler.HandleListStories)
		public.GET("/guru/success-stories/:storyID", storyHandler.HandleGetStory)
	}

	authed := s.Router.Group(basePath, authenticator.Authenticate())
	{
		authed.PUT("/auth/password", authHandler.HandleChangePassword)
		authed.GET("/users/:userID", userHandler.HandleGetUser)
		authed.PUT("/users/me", userHandler.HandleUpdateProfile)

		authed.POST("/events", eventHandler.HandleCreateEvent)
		authed.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		authed.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)

		authed.POST("/event-participants", registrationHandler.HandleRegister)
		authed.GET("/event-participants", registrationHandler.HandleListRegistrations)
		authed.GET("/event-participants/:registrationID", registrationHandler.HandleGetRegistration)
		authed.PUT("/event-participants/:registrationID", registrationHandler.HandleUpdateStatus)
		authed.DELETE("/event-participants/:registrationID", registrationHandler.HandleDeleteRegistration)

		authed.POST("/guru/applications", guruHandler.HandleSubmitApplication)
		authed.GET("/guru/applications/:applicationID", guruHandler.HandleGetApplication)
		authed.GET("/guru/applications/user/:userID", guruHandler.HandleGetApplicationByUser)
		authed.GET("/guru/applications/user/:userID/check", guruHandler.HandleCheckApplication)

		authed.GET("/guru/success-stories/user/:userID", storyHandler.HandleListStoriesByUser)
		authed.GET("/guru/success-stories/user/:userID/stats", storyHandler.HandleStoryStats)
		authed.PUT("/guru/success-stories/:storyID", storyHandler.HandleUpdateStory)
	}

	gurus := s.Router.Group(basePath, authenticator.Authenticate(), middleware.RequireRole(domain.RoleGuru, domain.RoleAdmin))
	{
		gurus.POST("/guru/success-stories", storyHandler.HandleCreateStory)
	}

	admins := s.Router.Group(basePath, authenticator.Authenticate(), middleware.RequireRole(domain.RoleAdmin))
	{
		admins.GET("/guru/applications", guruHandler.HandleListApplications)
		admins.PATCH("/guru/applications/:applicationID/status", guruHandler.HandleDecideApplication)
		admins.PATCH("/guru/success-stories/:storyID/publish", storyHandler.HandleSetStoryPublished)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Zuper Events API"
	docs.SwaggerInfo.Description = "Event management backend with payment-gated registrations."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
