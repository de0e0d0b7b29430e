package handler

import (
	"net/http"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/usecase/menu"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MenuHandler struct {
	service *menu.Service
}

func NewMenuHandler(service *menu.Service) *MenuHandler {
	return &MenuHandler{service: service}
}

// RegisterRoutes mounts the public, read-only menu endpoints.
func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/get-categories", h.GetCategories)
	router.GET("/get-menuItems", h.GetMenuItems)
}

// RegisterAdminRoutes mounts menu writes. The caller attaches auth plus the
// admin role gate.
func (h *MenuHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/create-category", h.CreateCategory)
	router.PATCH("/update-category/:id", h.UpdateCategory)
	router.DELETE("/delete-category/:id", h.DeleteCategory)

	router.POST("/create-menuItem", h.CreateMenuItem)
	router.PATCH("/update-menuItem/:id", h.UpdateMenuItem)
	router.DELETE("/delete-menuItem/:id", h.DeleteMenuItem)
}

func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req menu.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Category created successfully", category)
}

func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req menu.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", category)
}

func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}

func (h *MenuHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *MenuHandler) GetMenuItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu items retrieved successfully", items)
}

func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var req menu.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Menu item created successfully", item)
}

func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	var req menu.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu item updated successfully", item)
}

func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu item deleted successfully", nil)
}
