package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/deniz/alumlink/internal/app/controllers"
	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	directoryController *controllers.DirectoryController,
	mentorshipController *controllers.MentorshipController,
	jobController *controllers.JobController,
	eventController *controllers.EventController,
	donationController *controllers.DonationController,
	notificationController *controllers.NotificationController,
	adminController *controllers.AdminController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Public listings: job and event boards and the donation total are
	// readable without an account (the total feeds a public widget).
	api.GET("/jobs", jobController.List)
	api.GET("/events", eventController.List)
	api.GET("/donations/total", donationController.Total)

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Current user and profile management
		authenticated.GET("/auth/me", authController.Me)
		authenticated.PUT("/auth/profile", authController.UpdateProfile)

		// Alumni directory
		authenticated.GET("/alumni", directoryController.ListAlumni)

		// Mentorship workflow
		mentorship := authenticated.Group("/mentorship")
		{
			// Student-only routes
			mentorshipStudent := mentorship.Group("")
			mentorshipStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				mentorshipStudent.POST("/request", mentorshipController.CreateRequest)
				mentorshipStudent.GET("/my-requests", mentorshipController.ListMine)
				mentorshipStudent.GET("/recommendations", mentorshipController.Recommendations)
			}

			// Alumni-only routes
			mentorshipAlumni := mentorship.Group("")
			mentorshipAlumni.Use(authMiddleware.RoleRequired(models.RoleAlumni))
			{
				mentorshipAlumni.GET("/requests", mentorshipController.ListIncoming)
				mentorshipAlumni.GET("/my-mentees", mentorshipController.ListMentees)
				mentorshipAlumni.PUT("/respond/:id", mentorshipController.Respond)
			}
		}

		// Jobs and internships
		authenticated.POST("/jobs", jobController.Create)

		// Events and RSVPs
		events := authenticated.Group("/events")
		{
			events.POST("", eventController.Create)
			events.POST("/:id/rsvp", eventController.RSVP)
		}

		// Donations
		donations := authenticated.Group("/donations")
		{
			donations.GET("", donationController.List)
			donations.POST("", donationController.Create)
			donations.GET("/my-donations", donationController.ListMine)
		}

		// Notifications
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.List)
			notifications.PUT("/:id/read", notificationController.MarkRead)
		}

		// File uploads
		authenticated.POST("/upload", uploadController.Upload)

		// Admin-only routes
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/users", adminController.ListUsers)
			admin.DELETE("/users/:id", adminController.DeleteUser)
			admin.GET("/mentorships", adminController.ListMentorships)
			admin.POST("/alumni/bulk", adminController.BulkImportAlumni)
		}
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
