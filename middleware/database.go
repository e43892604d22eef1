package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hgapps/medicare-api/store"
)

const (
	dbContextKey    = "db"
	storeContextKey = "store"
)

// DatabaseMiddleware injects the shared gorm DB and the key-value store into
// the request context so handlers never open their own connections.
func DatabaseMiddleware(db *gorm.DB, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbContextKey, db)
		c.Set(storeContextKey, st)
		c.Next()
	}
}

// GetDB retrieves the gorm DB instance from the request context.
func GetDB(c *gin.Context) (*gorm.DB, error) {
	value, exists := c.Get(dbContextKey)
	if !exists {
		return nil, fmt.Errorf("database not found in context")
	}
	db, ok := value.(*gorm.DB)
	if !ok {
		return nil, fmt.Errorf("invalid database instance in context")
	}
	return db, nil
}

// GetStore retrieves the key-value store from the request context.
func GetStore(c *gin.Context) (*store.Store, error) {
	value, exists := c.Get(storeContextKey)
	if !exists {
		return nil, fmt.Errorf("store not found in context")
	}
	st, ok := value.(*store.Store)
	if !ok {
		return nil, fmt.Errorf("invalid store instance in context")
	}
	return st, nil
}
