package routes

import (
	"log"
	"net/http"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	db := config.DB

	habits := controllers.NewHabitController(services.NewHabitService(db))
	workouts := controllers.NewWorkoutController(services.NewWorkoutService(db))
	meals := controllers.NewMealPlanController(services.NewMealPlanService(db))
	templates := controllers.NewTemplateController(services.NewTemplateService(db))
	chat := controllers.NewChatController(services.NewChatService(db))
	stats := controllers.NewStatsController(services.NewStatsService(db))

	rt := services.NewRealtimeHub()
	services.InitEventFeed(rt)
	realtime := controllers.NewRealtimeController(rt)

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/check-email", controllers.CheckEmail)
	}

	// Public static exercise library
	api.GET("/exercises", controllers.ListExercises)

	// AI assistant accepts anonymous callers; a valid token adds context
	assistantSvc, err := services.NewAssistantService(db)
	if err != nil {
		log.Println("assistant disabled:", err)
		api.POST("/ai-assistant", middlewares.OptionalAuthMiddleware(), func(c *gin.Context) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "AI assistant is not configured"})
		})
	} else {
		assistant := controllers.NewAssistantController(assistantSvc)
		api.POST("/ai-assistant", middlewares.OptionalAuthMiddleware(), assistant.Ask)
	}

	// Protected workout routes
	workoutGroup := api.Group("/workouts")
	workoutGroup.Use(middlewares.AuthMiddleware())
	{
		workoutGroup.GET("", workouts.List)
		workoutGroup.POST("", workouts.Create)
		workoutGroup.GET("/:id", workouts.Get)
		workoutGroup.PATCH("/:id", workouts.Update)
		workoutGroup.DELETE("/:id", workouts.Delete)
	}

	// Protected meal plan routes
	mealGroup := api.Group("/meals")
	mealGroup.Use(middlewares.AuthMiddleware())
	{
		mealGroup.GET("", meals.List)
		mealGroup.POST("", meals.Create)
		mealGroup.PATCH("/:id", meals.Update)
		mealGroup.DELETE("/:id", meals.Delete)
	}

	// Protected workout template routes
	templateGroup := api.Group("/templates")
	templateGroup.Use(middlewares.AuthMiddleware())
	{
		templateGroup.GET("", templates.List)
		templateGroup.POST("", templates.Save)
		templateGroup.DELETE("/:id", templates.Delete)
	}

	// Protected user routes
	user := api.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/habits", habits.GetLogs)
		user.POST("/habits", habits.SaveLog)
		user.GET("/measurements", controllers.GetMeasurements)
		user.POST("/measurements", controllers.SaveMeasurements)
		user.GET("/chat-history", chat.GetHistory)
		user.POST("/chat-history", chat.SaveHistory)
		user.DELETE("/chat-history", chat.ClearHistory)
		user.GET("/stats", stats.WorkoutStats)
		user.GET("/events", realtime.EventsWS)
	}

	return r
}
