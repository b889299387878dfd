package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"
)

type ClientHandler struct {
	clients *repository.ClientRepository
}

func NewClientHandler(clients *repository.ClientRepository) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type clientRequest struct {
	Name         string `json:"name" binding:"required"`
	RegistryCode string `json:"registry_code"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.List(c.Query("search"))
	if err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid client id")
		return
	}
	client, err := h.clients.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c)
		return
	}

	stats, err := h.clients.Stats(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client, "stats": stats})
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	client := &models.Client{
		ID:           uuid.New(),
		Name:         req.Name,
		RegistryCode: req.RegistryCode,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
	}
	if err := h.clients.Create(client); err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid client id")
		return
	}
	client, err := h.clients.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c)
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	client.Name = req.Name
	client.RegistryCode = req.RegistryCode
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address

	if err := h.clients.Save(client); err != nil {
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid client id")
		return
	}
	if err := h.clients.Delete(id); err != nil {
		respondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
