package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode switches gin to release mode for production deployments.
// Every other environment keeps the default debug mode so route listings
// and binding warnings stay visible during development.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}
