package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RenderNotFound renders the not-found state for missing domain entities
// (unknown call id, unknown clinic id) with a navigation link back.
func RenderNotFound(c *gin.Context, title, backURL, backLabel string) {
	c.HTML(http.StatusNotFound, "notfound.html", gin.H{
		"Title":     title,
		"BackURL":   backURL,
		"BackLabel": backLabel,
	})
}

// RenderError renders the generic failure page used when an upstream data
// source cannot be reached.
func RenderError(c *gin.Context, backURL, backLabel string) {
	c.HTML(http.StatusBadGateway, "error.html", gin.H{
		"BackURL":   backURL,
		"BackLabel": backLabel,
	})
}
