package handler

import (
	"net/http"
	"strconv"

	"toko-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.productService.Get(c.Request().Context(), uint(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c echo.Context) error {
	name := c.FormValue("name")
	priceStr := c.FormValue("price")
	if name == "" || priceStr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and price are required")
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	image, err := h.imageFromForm(c)
	if err != nil {
		return err
	}
	if image == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image is required")
	}
	defer image.close()

	product, err := h.productService.Create(c.Request().Context(), name, price, &image.upload)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	name := c.FormValue("name")
	priceStr := c.FormValue("price")
	if name == "" || priceStr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and price are required")
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	image, err := h.imageFromForm(c)
	if err != nil {
		return err
	}

	var upload *service.ImageUpload
	if image != nil {
		defer image.close()
		upload = &image.upload
	}

	product, err := h.productService.Update(c.Request().Context(), uint(id), name, price, upload)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.productService.Delete(c.Request().Context(), uint(id)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

type formImage struct {
	upload service.ImageUpload
	close  func() error
}

// imageFromForm reads the optional multipart "image" field. A missing
// field is not an error; the caller decides whether it is required.
func (h *ProductHandler) imageFromForm(c echo.Context) (*formImage, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}

	return &formImage{
		upload: service.ImageUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Reader:      f,
		},
		close: f.Close,
	}, nil
}
