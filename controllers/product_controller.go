package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"product-catalog/models"
	"product-catalog/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"go.uber.org/zap"
)

const maxFormMemory = 1 << 20

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// productJSONRequest accepts price either as a JSON number or a string.
type productJSONRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       json.RawMessage `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// @Summary Get all products
// @Description List every product, newest first
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.service.ListProducts(c.Request.Context())
	if err != nil {
		zap.S().Errorf("Error fetching products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve products",
			Code:    models.CodeStorage,
			Error:   err.Error(),
		})
		return
	}

	view := make([]models.Product, len(products))
	for i, p := range products {
		p.ImageURL = p.DisplayImageURL()
		view[i] = p
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Products retrieved",
		"data":    view,
		"total":   len(view),
	})
}

// @Summary Create product
// @Description Validate and add a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param name formData string true "Product name (min 3 characters)"
// @Param description formData string true "Product description (min 10 characters)"
// @Param price formData number true "Product price (> 0)"
// @Param imageUrl formData string true "Product image URL"
// @Success 201 {object} models.ActionResult
// @Failure 400 {object} models.ActionResult
// @Failure 409 {object} models.ActionResult
// @Failure 500 {object} models.ActionResult
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	form, err := bindProductForm(c)
	if err != nil {
		result := models.ActionResult{
			Success: false,
			Message: "Invalid request body",
			Code:    models.CodeValidation,
		}
		result.AddError(models.FormErrorKey, err.Error())
		c.JSON(http.StatusBadRequest, result)
		return
	}

	result := ctrl.service.SubmitProduct(c.Request.Context(), form)
	c.JSON(statusFor(result, http.StatusCreated), result)
}

// @Summary Delete product
// @Description Delete a product permanently (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ActionResult
// @Failure 400 {object} models.ActionResult
// @Failure 500 {object} models.ActionResult
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	result := ctrl.service.DeleteProduct(c.Request.Context(), c.Param("id"))
	c.JSON(statusFor(result, http.StatusOK), result)
}

// @Summary Find duplicate product names
// @Description List groups of products whose names collide ignoring case (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/products/duplicates [get]
func (ctrl *ProductController) GetDuplicateNames(c *gin.Context) {
	groups, err := ctrl.service.FindDuplicateNames(c.Request.Context())
	if err != nil {
		zap.S().Errorf("Error scanning for duplicate names: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to scan products",
			Code:    models.CodeStorage,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Duplicate names retrieved",
		Data:    groups,
	})
}

func bindProductForm(c *gin.Context) (models.ProductForm, error) {
	var form models.ProductForm

	if c.ContentType() == gin.MIMEJSON {
		var req productJSONRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return form, err
		}
		form.Name = req.Name
		form.Description = req.Description
		form.Price = rawPrice(req.Price)
		form.ImageURL = req.ImageURL
		return form, nil
	}

	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
			return form, err
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return form, err
	}

	if err := formDecoder.Decode(&form, c.Request.PostForm); err != nil {
		return form, err
	}
	return form, nil
}

func rawPrice(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

func statusFor(result models.ActionResult, successStatus int) int {
	if result.Success {
		return successStatus
	}
	switch result.Code {
	case models.CodeValidation, models.CodeIDRequired:
		return http.StatusBadRequest
	case models.CodeDuplicateName:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
