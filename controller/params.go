package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam reads an integer path parameter and answers 400 when it is malformed.
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return 0, false
	}
	return id, true
}

// optionalIntQuery reads an integer query parameter, nil when it is absent.
func optionalIntQuery(c *gin.Context, name string) (*int, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		c.JSON(400, gin.H{"error": name + " must be an integer"})
		return nil, false
	}
	return &i, true
}
