package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"spacare-backend/demo"
	"spacare-backend/storage"
)

// GenerateDemoInput optionally pins the seed so a demo data set can be
// reproduced.
type GenerateDemoInput struct {
	Seed *int64 `json:"seed"`
}

type DemoController struct {
	store *storage.Store
}

func NewDemoController(store *storage.Store) *DemoController {
	return &DemoController{store: store}
}

// GenerateDemoData wipes the store and seeds it with sample data. The seed
// comes from the request body, then DEMO_SEED, then the clock.
func (dc *DemoController) GenerateDemoData(c *gin.Context) {
	var input GenerateDemoInput
	_ = c.ShouldBindJSON(&input) // empty body is fine

	seed := time.Now().UnixNano()
	if env := os.Getenv("DEMO_SEED"); env != "" {
		if parsed, err := strconv.ParseInt(env, 10, 64); err == nil {
			seed = parsed
		}
	}
	if input.Seed != nil {
		seed = *input.Seed
	}

	demo.NewGenerator(dc.store, seed).Generate()

	c.JSON(http.StatusOK, gin.H{"message": "Demo data generated", "seed": seed})
}

// ClearDemoData empties every bucket.
func (dc *DemoController) ClearDemoData(c *gin.Context) {
	demo.NewGenerator(dc.store, 0).Clear()
	c.JSON(http.StatusOK, gin.H{"message": "All data cleared"})
}
