package main

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tunemesh/tunemesh/cache"
	"github.com/tunemesh/tunemesh/engine"
	"github.com/tunemesh/tunemesh/server"
	"github.com/tunemesh/tunemesh/server/middlewares"
	"github.com/tunemesh/tunemesh/store"
	"github.com/tunemesh/tunemesh/utils"
	"github.com/tunemesh/tunemesh/utils/dotenv"
	. "github.com/tunemesh/tunemesh/utils/flag"
	. "github.com/tunemesh/tunemesh/utils/log"
)

func main() {
	Parse()
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	// Re-init so the log fields pick up the parsed flags and loaded env.
	InitLogger()

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to DB: ", err)
	}
	if err := utils.DatabaseSetupAndMigration(db); err != nil {
		Log.Fatal("fail to migrate DB: ", err)
	}

	documents := store.NewDocumentStore(db)

	// The cache is a best-effort read accelerator; a missing redis only
	// costs the snapshots, never correctness.
	var userCache *cache.UserCache
	userCache, err = cache.NewUserCache()
	if err != nil {
		Log.Warn("user cache disabled, redis unreachable: ", err)
		userCache = nil
	}

	root := &server.RootResolver{
		Engine: engine.New(documents),
		Store:  documents,
		Cache:  userCache,
	}

	// Default with the Logger and Recovery middleware already attached.
	router := gin.Default()
	router.Use(cors.Default())
	if !ByPassAuth {
		middlewares.Setup()
		router.Use(middlewares.JWT())
	}

	handler := server.GraphqlHandler(root)
	router.POST("/graphql", handler)

	// GraphQL playground for debugging.
	router.GET("/", func(c *gin.Context) {
		playground.Handler("GraphQL", "/graphql").ServeHTTP(c.Writer, c.Request)
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	Log.Info("api server starts up")
	router.Run(":8080")
}
