package profile

import "github.com/gin-gonic/gin"

type IHandler interface {
	Create(c *gin.Context)
	Mine(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	List(c *gin.Context)
	FlagSkill(c *gin.Context)
}
