package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-campus-canteen/models"
	"go-campus-canteen/store"
)

// GetMenus lists the catalog, optionally narrowed by ?category= and a
// ?q= substring match on the name, which is what the menu and search
// screens ask for.
func GetMenus(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		query := strings.ToLower(c.Query("q"))

		var items []models.MenuItem
		for _, item := range app.MenuItems() {
			if category != "" && item.Category != category {
				continue
			}
			if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
				continue
			}
			items = append(items, item)
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Menu items fetched successfully",
			"data":    items,
		})
	}
}

func GetMenu(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, ok := app.MenuItem(c.Param("menu_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

type menuItemRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
	Price       int    `json:"price" validate:"required,min=0"`
	Category    string `json:"category" validate:"required,eq=heavy_food|eq=snack|eq=noodles|eq=drink"`
	Image       string `json:"image"`
	Stock       int    `json:"stock" validate:"min=0"`
}

// CreateMenu saves a new product. IsAvailable is derived from the stock
// being saved, and only here: nothing recomputes it later, and placing
// an order never decrements stock. That matches the original staff save
// flow, known gap included.
func CreateMenu(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menuItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item := models.MenuItem{
			ID:          fmt.Sprintf("product-%d", time.Now().UnixMilli()),
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			Image:       req.Image,
			Stock:       req.Stock,
			IsAvailable: req.Stock > 0,
		}
		app.AddMenuItem(item)
		c.JSON(http.StatusOK, item)
	}
}

// UpdateMenu is a full replace by id, filter-map style: an unknown id
// changes nothing and still answers OK.
func UpdateMenu(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menuItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item := models.MenuItem{
			ID:          c.Param("menu_id"),
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			Image:       req.Image,
			Stock:       req.Stock,
			IsAvailable: req.Stock > 0,
		}
		app.UpdateMenuItem(item)
		c.JSON(http.StatusOK, item)
	}
}

func DeleteMenu(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		app.DeleteMenuItem(c.Param("menu_id"))
		c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
	}
}
