package router

import (
	"buget/api"
	"buget/config"
	_ "buget/docs"
	"buget/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires every route of the application.
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()
	r.Use(CORSMiddleware())

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := api.NewAuthHandler(cfg)

	// no auth
	r.POST("/register/", authHandler.Register)
	r.POST("/auth/login/", authHandler.Login)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth())
	{
		authorized.GET("/me/", authHandler.Me)

		// aggregates
		bugetHandler := api.NewBugetHandler()
		authorized.GET("/venit/total/", bugetHandler.VenitTotalLunar)
		authorized.GET("/venit/status/", bugetHandler.VenitStatusLunar)
		authorized.GET("/buget/lunar/", bugetHandler.BugetLunar)
		authorized.GET("/grafice/luna/", bugetHandler.GraficeLuna)
		authorized.POST("/economii/calculeaza/", bugetHandler.CalculeazaEconomii)
		authorized.GET("/economii/istoric/", bugetHandler.IstoricEconomii)
		authorized.GET("/economii/vacanta/", bugetHandler.EconomiiVacantaSumar)

		// venituri
		venitHandler := api.NewVenitHandler()
		authorized.GET("/venituri/", venitHandler.List)
		authorized.POST("/venituri/", venitHandler.Create)
		authorized.GET("/venituri/:id/", venitHandler.Get)
		authorized.PUT("/venituri/:id/", venitHandler.Update)
		authorized.DELETE("/venituri/:id/", venitHandler.Delete)

		// cheltuieli fixe
		fixaHandler := api.NewCheltuialaFixaHandler()
		authorized.GET("/cheltuieli-fixe/", fixaHandler.List)
		authorized.POST("/cheltuieli-fixe/", fixaHandler.Create)
		authorized.GET("/cheltuieli-fixe/:id/", fixaHandler.Get)
		authorized.PUT("/cheltuieli-fixe/:id/", fixaHandler.Update)
		authorized.DELETE("/cheltuieli-fixe/:id/", fixaHandler.Delete)

		// cheltuieli variabile
		variabilaHandler := api.NewCheltuialaVariabilaHandler()
		authorized.GET("/cheltuieli-variabile/categorii/", variabilaHandler.Categorii)
		authorized.GET("/cheltuieli-variabile/", variabilaHandler.List)
		authorized.POST("/cheltuieli-variabile/", variabilaHandler.Create)
		authorized.GET("/cheltuieli-variabile/:id/", variabilaHandler.Get)
		authorized.PUT("/cheltuieli-variabile/:id/", variabilaHandler.Update)
		authorized.DELETE("/cheltuieli-variabile/:id/", variabilaHandler.Delete)

		// economii de vacanta
		vacantaHandler := api.NewEconomieVacantaHandler()
		authorized.GET("/economii-vacanta/", vacantaHandler.List)
		authorized.POST("/economii-vacanta/", vacantaHandler.Create)
		authorized.GET("/economii-vacanta/:id/", vacantaHandler.Get)
		authorized.PUT("/economii-vacanta/:id/", vacantaHandler.Update)
		authorized.DELETE("/economii-vacanta/:id/", vacantaHandler.Delete)

		// fonduri
		fondHandler := api.NewFondHandler()
		authorized.GET("/fonduri/", fondHandler.Fonduri)
		authorized.POST("/fonduri/miscare/", fondHandler.MiscareCreate)
		authorized.PUT("/fonduri/miscare/:id/", fondHandler.MiscareUpdate)
		authorized.DELETE("/fonduri/miscare/:id/", fondHandler.MiscareDelete)
		authorized.GET("/fonduri/grafic/", fondHandler.FonduriGrafic)
		authorized.GET("/fonduri/grafic/timeline/", fondHandler.FonduriGraficTimeline)
		authorized.GET("/fonduri/grafic/timeline/extended/", fondHandler.FonduriGraficTimelineExtended)

		// bridge
		bridgeHandler := api.NewBridgeHandler()
		authorized.GET("/users/list/", bridgeHandler.ListaUseri)
		authorized.POST("/bridge/send/", bridgeHandler.Send)
		authorized.GET("/bridge/requests/", bridgeHandler.Requests)
		authorized.POST("/bridge/accept/:id/", bridgeHandler.Accept)

		// administrare
		adminHandler := api.NewAdminHandler(cfg)
		admin := authorized.Group("/admin")
		admin.Use(middleware.AdminOnly())
		{
			admin.GET("/users/", adminHandler.ListaUtilizatori)
			admin.PUT("/users/:id/", adminHandler.UpdateUser)
			admin.DELETE("/users/:id/delete/", adminHandler.DeleteUser)
			admin.GET("/stats/", adminHandler.Stats)
			admin.GET("/export/excel/", adminHandler.ExportExcel)
		}
	}

	return r
}

// CORSMiddleware allows the SPA frontend to call the API from anywhere.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
