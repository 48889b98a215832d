package router

import (
	"Station_Hub/internal/handler"
	"Station_Hub/internal/middleware"
	"Station_Hub/internal/pkg"
	"Station_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(smtp *pkg.SMTPConfig) *gin.Engine {
	r := gin.Default()

	station := handler.NewStationHandler()
	role := handler.NewRoleHandler()
	mod := handler.NewModerationHandler()
	invite := handler.NewInviteHandler(service.NewInviteService(smtp))
	post := handler.NewPostHandler()
	comment := handler.NewCommentHandler()
	vote := handler.NewVoteHandler()
	karma := handler.NewKarmaHandler()
	audit := handler.NewAuditHandler()

	// 公开读接口
	pub := r.Group("/api")
	{
		pub.GET("/station/list", station.List)
		pub.GET("/station/slug/:slug", station.Get)
		pub.GET("/post/list/:station_id", post.ListByStation)
		pub.GET("/post/:id", post.Get)
		pub.GET("/post/:id/score", vote.PostScore)
		pub.GET("/comment/list/:post_id", comment.ListByPost)
	}

	// 站点相关接口
	stationGroup := r.Group("/api/station")
	stationGroup.Use(middleware.PrincipalMiddleware())
	{
		stationGroup.POST("/create", station.Create)
		stationGroup.POST("/:station_id/join", station.Join)
		stationGroup.POST("/:station_id/leave", station.Leave)
		stationGroup.POST("/:station_id/archive", station.Archive)
		stationGroup.GET("/:station_id/members", station.Members)
	}

	// 角色相关接口
	roleGroup := r.Group("/api/station/:station_id/role")
	roleGroup.Use(middleware.PrincipalMiddleware())
	{
		roleGroup.POST("/create", role.Create)
		roleGroup.PUT("/:role_id", role.Update)
		roleGroup.DELETE("/:role_id", role.Delete)
		roleGroup.POST("/assign", role.Assign)
		roleGroup.GET("/list", role.List)
		roleGroup.GET("/check", role.Check)
	}

	// 治理相关接口
	modGroup := r.Group("/api/station/:station_id/mod")
	modGroup.Use(middleware.PrincipalMiddleware())
	{
		modGroup.POST("/ban", mod.Ban)
		modGroup.POST("/unban", mod.Unban)
		modGroup.POST("/mute", mod.Mute)
		modGroup.POST("/unmute", mod.Unmute)
		modGroup.GET("/restrictions", mod.Restrictions)
		modGroup.GET("/history", mod.History)
	}

	// 邀请相关接口
	inviteGroup := r.Group("/api/invite")
	inviteGroup.Use(middleware.PrincipalMiddleware())
	{
		inviteGroup.POST("/station/:station_id/create", invite.Create)
		inviteGroup.GET("/station/:station_id/list", invite.List)
		inviteGroup.POST("/use", invite.Use)
		inviteGroup.POST("/:id/deactivate", invite.Deactivate)
	}

	// 内容相关接口
	postGroup := r.Group("/api/post")
	postGroup.Use(middleware.PrincipalMiddleware())
	{
		postGroup.POST("/create", post.Create)
		postGroup.POST("/:id/pin", post.Pin)
		postGroup.DELETE("/:id", post.Delete)
		postGroup.POST("/:id/vote", vote.VotePost)
	}

	commentGroup := r.Group("/api/comment")
	commentGroup.Use(middleware.PrincipalMiddleware())
	{
		commentGroup.POST("/create", comment.Create)
		commentGroup.DELETE("/:id", comment.Delete)
		commentGroup.POST("/:id/vote", vote.VoteComment)
	}

	// 声望与审计
	karmaGroup := r.Group("/api/karma")
	karmaGroup.Use(middleware.PrincipalMiddleware())
	{
		karmaGroup.GET("/me", karma.Get)
		karmaGroup.GET("/:principal", karma.Get)
	}

	auditGroup := r.Group("/api/station/:station_id/audit")
	auditGroup.Use(middleware.PrincipalMiddleware())
	{
		auditGroup.GET("/list", audit.List)
	}

	return r
}
