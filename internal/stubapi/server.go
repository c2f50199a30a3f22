// Package stubapi is an in-process stand-in for the external SafeSpace API,
// used by tests and by demo mode. It serves the same routes and wire format
// from seeded in-memory data; it is a fixture, not a backend.
package stubapi

import (
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"safespace/client/internal/models"
)

type Server struct {
	logger *logrus.Logger

	mu            sync.RWMutex
	properties    []models.Property
	neighborhoods []models.Neighborhood
	compare       []models.CompareListItem
	nextCompareID int
}

// NewServer builds a stub seeded with the sample Portland data set.
func NewServer(logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Server{
		logger:        logger,
		properties:    SeedProperties(),
		neighborhoods: SeedNeighborhoods(),
		nextCompareID: 1,
	}
}

// Engine returns a gin engine with all API routes registered.
func (s *Server) Engine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(cors.Default())

	api := router.Group("/api")
	{
		api.GET("/properties", s.getProperties)
		api.GET("/properties/:id", s.getProperty)
		api.GET("/neighborhoods", s.getNeighborhoods)
		api.GET("/compare/:userId", s.getCompareList)
		api.POST("/compare", s.addToCompare)
		api.DELETE("/compare/:id", s.removeFromCompare)
	}
	return router
}

func (s *Server) getProperties(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, s.properties)
}

func (s *Server) getProperty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.properties {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
}

func (s *Server) getNeighborhoods(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, s.neighborhoods)
}

func (s *Server) getCompareList(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CompareListItem, 0)
	for _, item := range s.compare {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) addToCompare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.WithError(err).Error("Failed to parse compare request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.CompareListItem{
		ID:         s.nextCompareID,
		UserID:     req.UserID,
		PropertyID: req.PropertyID,
		AddedAt:    req.AddedAt,
	}
	s.nextCompareID++
	s.compare = append(s.compare, item)

	c.JSON(http.StatusCreated, item)
}

func (s *Server) removeFromCompare(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid compare entry id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.compare {
		if item.ID == id {
			s.compare = append(s.compare[:i], s.compare[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Compare entry not found"})
}
