package endpoint_test

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hgapps/medicare-api/config"
	"github.com/hgapps/medicare-api/util"
)

// TestMain sets up consistent test configuration for all tests in the
// endpoint_test package. This prevents test order dependency issues caused
// by the singleton config pattern.
func TestMain(m *testing.M) {
	os.Setenv("APPENV", "test")
	os.Setenv("JWTSECRET", "test-secret-123")
	os.Setenv("GINMODE", "release")

	util.SetJWTSecret("test-secret-123")

	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	os.Exit(m.Run())
}
