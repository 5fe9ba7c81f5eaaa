package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusconn/backend/internal/app/controllers"
	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/middleware"
)

// SetupRouter configures all application routes. Paths live at the root
// to match what the mobile client calls.
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	roomController *controllers.RoomController,
	messageController *controllers.MessageController,
	campusInfoController *controllers.CampusInfoController,
	feedController *controllers.FeedController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// Health check endpoint (public)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Registration stays public; a user registers before holding a session.
	router.POST("/register", userController.Register)

	api := router.Group("")
	if sessionMiddleware.Enabled() {
		api.Use(sessionMiddleware.Session())
	}

	// User routes
	user := api.Group("/user")
	{
		user.GET("", userController.GetUser)
		user.GET("/:id", userController.GetUserByID)
		user.PUT("/update-info", userController.UpdateInfo)
		user.PUT("/updateUserDashboard", userController.UpdateDashboard)
		user.POST("/connect", userController.Connect)
		user.POST("/acceptConnection", userController.AcceptConnection)
	}

	// Campus info routes
	api.GET("/campus-info", campusInfoController.GetCampusInfo)
	api.PUT("/campus-info", campusInfoController.UpsertCampusInfo)

	// Room routes
	api.POST("/rooms", roomController.CreateRoom)
	api.GET("/rooms/:userId", roomController.GetRoomsForUser)
	api.GET("/getAllRooms", roomController.GetAllRooms)
	api.GET("/getJoinedRooms", roomController.GetJoinedRooms)
	api.GET("/search/:query", roomController.SearchRooms)
	api.GET("/room/:roomId", roomController.GetRoomByID)
	api.POST("/joinRoom", roomController.JoinRoom)
	api.POST("/changeGroupName", roomController.ChangeGroupName)
	api.POST("/changeImageLink", roomController.ChangeImageLink)
	api.POST("/changePermission", roomController.ChangePermission)

	// Message routes
	api.GET("/messages/:userId/:roomId", messageController.GetMessages)
	api.POST("/sendMessage", messageController.SendMessage)

	// Feed routes
	api.POST("/createPost", feedController.CreatePost)
	api.GET("/posts", feedController.GetPosts)
	api.POST("/news", feedController.CreateNews)
	api.GET("/news/active", feedController.GetActiveNews)
}
