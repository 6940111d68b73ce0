package httpserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/janatafootwear/storefront/internal/events"
	"github.com/janatafootwear/storefront/internal/logging"
	"github.com/janatafootwear/storefront/internal/models"
	"github.com/janatafootwear/storefront/internal/search"
	"github.com/janatafootwear/storefront/internal/service"
	"github.com/janatafootwear/storefront/internal/transport"
	"github.com/janatafootwear/storefront/internal/util"
)

type CatalogHTTP struct {
	Svc      *service.CatalogService
	ES       *elasticsearch.Client
	Producer *events.Producer
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func (h *CatalogHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicProductEvents, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("event_publish_error", "error", err)
	}
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "id is not a uuid")
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		status := statusFor(err)
		l.Warn("get_product_error", "status", status, "error", err)
		return c.JSON(status, "product not found")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	category := c.QueryParam("category")

	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetProducts(ctx, category, offset, limit)
	if err != nil {
		l.Error("list_products_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "cannot list products")
	}

	return c.JSON(http.StatusOK, transport.ProductPage{
		Data: items,
		Meta: transport.NewPageMeta(page, limit, offset, total),
	})
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	if h.ES == nil {
		return c.JSON(http.StatusServiceUnavailable, "search is not configured")
	}

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, "q required")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := search.Search(ctx, h.ES, search.ProductIndex, query, offset, limit)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, transport.ProductPage{
		Data: items,
		Meta: transport.NewPageMeta(page, limit, offset, total),
	})
}

type productRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       int64             `json:"price"`
	Stock       uint              `json:"stock"`
	Category    string            `json:"category"`
	Brand       string            `json:"brand"`
	Color       string            `json:"color"`
	Material    string            `json:"material"`
	Sizes       models.StringList `json:"sizes"`
	Tags        models.StringList `json:"tags"`
	Images      models.StringList `json:"images"`
}

func (r *productRequest) toModel() models.Product {
	return models.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Category:    r.Category,
		Brand:       r.Brand,
		Color:       r.Color,
		Material:    r.Material,
		Sizes:       r.Sizes,
		Tags:        r.Tags,
		Images:      r.Images,
	}
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	product := req.toModel()
	if err := h.Svc.CreateProduct(ctx, &product); err != nil {
		status := statusFor(err)
		l.Warn("create_product_error", "status", status, "error", err)
		return c.JSON(status, err.Error())
	}

	h.publish(c, product.ID.String(), map[string]any{
		"type":       "product_created",
		"product_id": product.ID,
		"name":       product.Name,
	})
	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *CatalogHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("patch_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "id is not a uuid")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.UpdateProduct(ctx, id, req.toModel())
	if err != nil {
		status := statusFor(err)
		l.Warn("patch_product_error", "status", status, "error", err)
		return c.JSON(status, err.Error())
	}

	h.publish(c, product.ID.String(), map[string]any{
		"type":       "product_updated",
		"product_id": product.ID,
		"name":       product.Name,
	})
	l.Info("patch_product_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("delete_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "id is not a uuid")
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		l.Error("delete_product_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "cannot delete product")
	}

	h.publish(c, id.String(), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})
	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}
