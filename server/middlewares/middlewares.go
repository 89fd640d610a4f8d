package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/gin-gonic/gin"
	. "github.com/tunemesh/tunemesh/utils/log"
)

var (
	// cognitoClient is a thread safe client that performs user
	// authorization based on jwt access tokens. Initialized by Setup
	// before any middleware runs.
	cognitoClient *cognitoidentityprovider.Client
)

// Setup initializes the package scoped Cognito client used by the JWT
// middleware. Must be called before the middleware is attached.
func Setup() {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		// Token verification is mandatory in any authenticated run;
		// abort rather than serve unauthenticated traffic.
		Log.Fatal("fail to load aws config for Cognito client: ", err)
	}
	cognitoClient = cognitoidentityprovider.NewFromConfig(cfg)
}

// JWT validates the bearer token in the Authorization header against
// Cognito and stores the verified user id in the "sub" header for
// downstream handlers. The engagement core itself never sees credentials,
// only the resolved user id.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "missing bearer token"})
			c.Abort()
			return
		}

		user, err := cognitoClient.GetUser(c.Request.Context(), &cognitoidentityprovider.GetUserInput{AccessToken: &token})
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
			c.Abort()
			return
		}

		// The verified subject replaces anything the client may have put
		// in the header.
		c.Request.Header.Del("sub")
		c.Request.Header.Add("sub", *user.Username)

		c.Next()
	}
}
