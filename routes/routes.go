package routes

import (
	"washxpress-backend/config"
	"washxpress-backend/controllers"
	"washxpress-backend/models"
	"washxpress-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://washxpress.bt",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Contact form is open to anonymous visitors
	r.POST("/api/contact", controllers.SubmitMessage)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("/mine", controllers.GetMyBookings)
			bookings.GET("/:id", controllers.GetBooking)
			bookings.PATCH("/:id", controllers.UpdateBooking)
			bookings.DELETE("/:id", controllers.DeleteBooking)

			// Provider dashboard views
			staff := bookings.Group("")
			staff.Use(utils.RequireRole(models.RoleProvider, models.RoleAdmin))
			{
				staff.GET("", controllers.GetBookings)
				staff.GET("/buckets", controllers.GetBookingBuckets)
			}
		}

		// Vehicle routes
		vehicles := api.Group("/vehicles")
		{
			vehicles.POST("", controllers.CreateVehicle)
			vehicles.GET("", controllers.GetVehicles)
		}

		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(utils.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", controllers.GetUsers)
			admin.DELETE("/users/:id", controllers.DeleteUser)
		}
		api.GET("/messages", utils.RequireRole(models.RoleAdmin), controllers.GetMessages)
	}

	return r
}
