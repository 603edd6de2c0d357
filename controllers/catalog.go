package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spacare-backend/repository"
	"spacare-backend/storage"
	"spacare-backend/utils"
)

type PackageController struct {
	store *storage.Store
}

func NewPackageController(store *storage.Store) *PackageController {
	return &PackageController{store: store}
}

// GetPackages returns the catalog; ?active=true restricts it to packages
// currently on sale
func (pc *PackageController) GetPackages(c *gin.Context) {
	packages := repository.NewPackages(pc.store)
	if c.Query("active") == "true" {
		c.JSON(http.StatusOK, packages.GetActive())
		return
	}
	c.JSON(http.StatusOK, packages.GetAll())
}

// GetPackage returns one catalog entry
func (pc *PackageController) GetPackage(c *gin.Context) {
	pkg, err := repository.NewPackages(pc.store).GetByID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		return
	}
	c.JSON(http.StatusOK, pkg)
}
