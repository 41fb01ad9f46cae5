package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/lic-events/vbs-api/docs"
	v1 "github.com/lic-events/vbs-api/internal/api/handler/v1"
	"github.com/lic-events/vbs-api/internal/api/middleware"
	"github.com/lic-events/vbs-api/internal/config"
	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/pkg/pickupcode"
	"github.com/lic-events/vbs-api/internal/repository"
	"github.com/lic-events/vbs-api/internal/repository/dao"
	"github.com/lic-events/vbs-api/internal/service"
	"github.com/lic-events/vbs-api/internal/sms"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	healthcheckHandler *v1.HealthcheckHandler
	authHandler        *v1.AuthHandler
	participantHandler *v1.ParticipantHandler
	volunteerHandler   *v1.VolunteerHandler
	referenceHandler   *v1.ReferenceHandler
	dashboardHandler   *v1.DashboardHandler

	authenticator *middleware.Authenticator
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)

	calendar, err := domain.NewCalendar(conf.Event.Dates)
	if err != nil {
		return nil, fmt.Errorf("domain.NewCalendar -> %w", err)
	}

	s := &Server{
		Config: conf,
		Router: gin.New(),

		authenticator: middleware.NewAuthenticator(conf.API.JWTSigningKey),
	}

	s.initHandlers(db, calendar)
	s.mountMiddlewares()
	s.mountHandlers()

	return s, nil
}

func (s *Server) initHandlers(db *gorm.DB, calendar *domain.Calendar) {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))
	volunteerRepo := repository.NewVolunteerRepository(dao.NewVolunteerDAO(db))
	attendanceRepo := repository.NewAttendanceRepository(dao.NewAttendanceDAO(db))
	referenceRepo := repository.NewReferenceRepository(dao.NewReferenceDAO(db))
	dashboardRepo := repository.NewDashboardRepository(dao.NewDashboardDAO(db))

	smsClient := sms.NewClient(s.Config.SMS)
	notifier := service.NewNotifier(smsClient, s.Config.SMS.AdminContactNo)

	attendanceSvc := service.NewAttendanceService(
		calendar,
		participantRepo,
		attendanceRepo,
		pickupcode.NewIssuer(),
		notifier,
		nil,
	)

	s.healthcheckHandler = v1.NewHealthcheckHandler()
	s.authHandler = v1.NewAuthHandler(service.NewAuthService(userRepo), s.Config.API.JWTSigningKey)
	s.participantHandler = v1.NewParticipantHandler(service.NewParticipantService(participantRepo), attendanceSvc)
	s.volunteerHandler = v1.NewVolunteerHandler(service.NewVolunteerService(volunteerRepo))
	s.referenceHandler = v1.NewReferenceHandler(service.NewReferenceService(referenceRepo))
	s.dashboardHandler = v1.NewDashboardHandler(
		service.NewDashboardService(dashboardRepo, nil),
		service.NewUserService(userRepo),
	)
}

func (s *Server) mountMiddlewares() {
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) mountHandlers() {
	s.Router.GET("/", s.healthcheckHandler.HandleHealthcheck)

	docs.SwaggerInfo.BasePath = "/api/v1"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	api := s.Router.Group("/api")
	apiV1 := api.Group("/v1")

	auth := apiV1.Group("/auth")
	auth.POST("/signup", s.authHandler.HandleSignup)
	auth.POST("/login", s.authHandler.HandleLogin)

	// Registration endpoints are open so that the public signup forms can
	// submit without an account.
	apiV1.POST("/participants", s.participantHandler.HandleCreateParticipant)
	apiV1.POST("/volunteers", s.volunteerHandler.HandleCreateVolunteer)
	apiV1.GET("/grades", s.referenceHandler.HandleListGrades)
	apiV1.GET("/churches", s.referenceHandler.HandleListChurches)
	apiV1.GET("/sessions", s.referenceHandler.HandleListSessions)
	apiV1.GET("/attendance-types", s.referenceHandler.HandleListAttendanceTypes)
	apiV1.GET("/pickup-persons", s.referenceHandler.HandleListPickupPersons)
	apiV1.GET("/parents", s.referenceHandler.HandleListParents)

	protected := apiV1.Group("")
	protected.Use(s.authenticator.VerifyJWT())

	protected.GET("/participants", s.participantHandler.HandleListParticipants)
	protected.GET("/participants/:id", s.participantHandler.HandleGetParticipant)
	protected.PUT("/participants/:id", s.participantHandler.HandleUpdateParticipant)
	protected.POST("/participants/:id/admit", s.participantHandler.HandleAdmitParticipant)
	protected.POST("/participants/:id/pickup", s.participantHandler.HandlePickupParticipant)
	protected.GET("/participants/:id/status", s.participantHandler.HandleGetParticipantStatus)

	protected.GET("/volunteers", s.volunteerHandler.HandleListVolunteers)
	protected.GET("/volunteers/:id", s.volunteerHandler.HandleGetVolunteer)
	protected.PUT("/volunteers/:id", s.volunteerHandler.HandleUpdateVolunteer)

	protected.POST("/grades", s.referenceHandler.HandleCreateGrade)
	protected.POST("/churches", s.referenceHandler.HandleCreateChurch)
	protected.POST("/sessions", s.referenceHandler.HandleCreateSession)
	protected.POST("/attendance-types", s.referenceHandler.HandleCreateAttendanceType)
	protected.POST("/pickup-persons", s.referenceHandler.HandleCreatePickupPerson)
	protected.POST("/parents", s.referenceHandler.HandleCreateParent)

	protected.GET("/dashboard", s.dashboardHandler.HandleGetDashboard)
}
