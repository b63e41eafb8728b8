package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-sales-console/internal/model"
	"go-sales-console/internal/service"
	"go-sales-console/internal/ws"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	hub            *ws.Hub
}

func NewCatalogHandler(cs service.CatalogService, hub *ws.Hub) *CatalogHandler {
	return &CatalogHandler{catalogService: cs, hub: hub}
}

type productRow struct {
	ID          string
	Name        string
	Price       string
	RawPrice    string
	Description string
	Stock       int
	CategoryID  string
}

type categoryRow struct {
	ID           string
	Name         string
	ProductCount int
}

func (h *CatalogHandler) InventoryPage(c *fiber.Ctx) error {
	products, err := h.catalogService.GetAllProducts(c.Context())
	if err != nil {
		h.hub.Notify(ws.KindError, "Error", "Failed to load inventory data.")
		return c.Status(fiber.StatusBadGateway).Render("error", fiber.Map{
			"Title":   "Error",
			"Message": "Failed to load inventory data. Please try again.",
		}, "layout")
	}
	categories, err := h.catalogService.GetAllCategories(c.Context())
	if err != nil {
		h.hub.Notify(ws.KindError, "Error", "Failed to load category data.")
		return c.Status(fiber.StatusBadGateway).Render("error", fiber.Map{
			"Title":   "Error",
			"Message": "Failed to load category data. Please try again.",
		}, "layout")
	}

	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow{
			ID:          p.ID,
			Name:        p.Name,
			Price:       model.Money(p.Price),
			RawPrice:    p.Price.String(),
			Description: p.Description,
			Stock:       p.Stock,
			CategoryID:  p.CategoryID,
		})
	}

	return c.Render("inventory", fiber.Map{
		"Title":      "Inventory",
		"Rows":       rows,
		"Categories": categories,
	}, "layout")
}

func (h *CatalogHandler) CategoriesPage(c *fiber.Ctx) error {
	categories, err := h.catalogService.GetAllCategories(c.Context())
	if err != nil {
		h.hub.Notify(ws.KindError, "Error", "Failed to load category data.")
		return c.Status(fiber.StatusBadGateway).Render("error", fiber.Map{
			"Title":   "Error",
			"Message": "Failed to load category data. Please try again.",
		}, "layout")
	}

	rows := make([]categoryRow, 0, len(categories))
	for _, cat := range categories {
		rows = append(rows, categoryRow{ID: cat.ID, Name: cat.Name, ProductCount: len(cat.Products)})
	}

	return c.Render("categories", fiber.Map{
		"Title": "Categories",
		"Rows":  rows,
	}, "layout")
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.catalogService.CreateProduct(c.Context(), &product); err != nil {
		return catalogError(c, err, "Failed to save the product. Please try again.")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.catalogService.UpdateProduct(c.Context(), c.Params("id"), &product); err != nil {
		return catalogError(c, err, "Failed to save the product. Please try again.")
	}
	return c.JSON(product)
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return catalogError(c, err, "Failed to delete the product. Please try again.")
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.catalogService.CreateCategory(c.Context(), &category); err != nil {
		return catalogError(c, err, "Failed to save the category. Please try again.")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.catalogService.UpdateCategory(c.Context(), c.Params("id"), &category); err != nil {
		return catalogError(c, err, "Failed to save the category. Please try again.")
	}
	return c.JSON(category)
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return catalogError(c, err, "Failed to delete the category. Please try again.")
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

func catalogError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrCategoryHasProducts):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "This category contains products. Remove or reassign the products first.",
		})
	case errors.Is(err, service.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": fallback})
	}
}
