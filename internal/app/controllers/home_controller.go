package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeController serves the landing page
type HomeController struct{}

// NewHomeController creates a new HomeController
func NewHomeController() *HomeController {
	return &HomeController{}
}

// Index renders the landing page
func (hc *HomeController) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "home.html", nil)
}
