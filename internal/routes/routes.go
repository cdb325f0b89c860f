package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/auth"
	"github.com/BruksfildServices01/trainer-marketplace/internal/avatar"
	"github.com/BruksfildServices01/trainer-marketplace/internal/config"
	"github.com/BruksfildServices01/trainer-marketplace/internal/handlers"
	"github.com/BruksfildServices01/trainer-marketplace/internal/middleware"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/timezone"
	ucAuth "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/auth"
	ucBooking "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/booking"
	ucMessage "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/message"
	ucTrainer "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/trainer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/validators"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, in *Infra) {

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	loc := timezone.Location(cfg.Timezone)

	var checkDomain func(string) bool
	if cfg.CheckEmailDomain {
		checkDomain = validators.IsEmailDomainValid
	}

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegister(in.Users, in.Trainers, in.Audit, checkDomain)
	loginUC := ucAuth.NewLogin(in.Users)

	createBookingUC := ucBooking.NewCreateBooking(in.Bookings, in.Audit, loc)
	updateBookingUC := ucBooking.NewUpdateBookingStatus(in.Bookings, in.Audit)
	listBookingsUC := ucBooking.NewListBookingsForUser(in.Bookings)
	activeBookingUC := ucBooking.NewGetActiveBooking(in.Bookings)

	createMessageUC := ucMessage.NewCreateMessage(in.Messages, in.Users, in.Audit)
	markReadUC := ucMessage.NewMarkMessageRead(in.Messages, in.Audit)
	listMessagesUC := ucMessage.NewListMessagesForUser(in.Messages)

	searchTrainersUC := ucTrainer.NewSearchTrainers(in.Trainers)
	getTrainerUC := ucTrainer.NewGetTrainer(in.Trainers)
	updateProfileUC := ucTrainer.NewUpdateTrainerProfile(in.Trainers, in.Users, in.Audit)
	uploadAvatarUC := ucTrainer.NewUploadAvatar(in.Trainers, in.Avatars, in.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, tokens)
	meHandler := handlers.NewMeHandler(in.Users)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		listBookingsUC,
		activeBookingUC,
		in.Users,
		in.Trainers,
	)

	messageHandler := handlers.NewMessageHandler(
		createMessageUC,
		markReadUC,
		listMessagesUC,
	)

	trainerHandler := handlers.NewTrainerHandler(
		searchTrainersUC,
		getTrainerUC,
		updateProfileUC,
		uploadAvatarUC,
	)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if local, ok := in.Avatars.(*avatar.LocalStore); ok && strings.HasPrefix(cfg.AvatarBaseURL, "/") {
		r.Static(cfg.AvatarBaseURL, local.Dir())
	}

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	r.GET("/trainers", trainerHandler.List)
	r.GET("/trainers/:id", trainerHandler.Get)

	// ======================================================
	// SECURED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(tokens))
	{
		secured.GET("/me", meHandler.GetMe)

		secured.POST("/bookings", bookingHandler.Post)
		secured.GET("/bookings", bookingHandler.List)
		secured.GET("/user/active-booking", bookingHandler.Active)

		secured.POST("/messages", messageHandler.Post)
		secured.GET("/messages", messageHandler.List)

		if in.DB != nil {
			auditLogsHandler := handlers.NewAuditLogsHandler(in.DB)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}

		trainerOnly := secured.Group("/trainers/me")
		trainerOnly.Use(middleware.RequireRole(string(models.RoleTrainer)))
		{
			trainerOnly.PUT("", trainerHandler.UpdateMe)
			trainerOnly.PUT("/avatar", trainerHandler.UploadAvatar)
		}
	}
}
