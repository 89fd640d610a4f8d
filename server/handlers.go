package server

import (
	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/tunemesh/tunemesh/server/graphql"
	"github.com/tunemesh/tunemesh/utils"
)

// GraphqlHandler is the universal handler for all GraphQL queries issued
// from clients, by default it binds to a POST method.
func GraphqlHandler(root *RootResolver) gin.HandlerFunc {
	schemaString := graphql.GetGQLSchema()
	h := &relay.Handler{
		Schema: utils.ParseGraphQLSchema(schemaString, root),
	}

	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
