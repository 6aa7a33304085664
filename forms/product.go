package forms

import (
	"path/filepath"
	"strings"
)

// allowedImageExtensions mirrors the upload allow list used by the catalog.
var allowedImageExtensions = map[string]bool{
	"txt": true, "pdf": true, "png": true, "jpg": true, "jpeg": true,
	"gif": true, "webp": true, "avif": true, "bmp": true, "tiff": true,
	"ico": true, "svg": true, "psd": true, "eps": true, "ai": true,
	"raw": true, "heic": true, "heif": true,
}

// ImageExtensionAllowed reports whether the uploaded filename carries one of
// the allow-listed extensions.
func ImageExtensionAllowed(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return allowedImageExtensions[ext]
}

// ProductForm validates product registration.
type ProductForm struct {
	InStock          int     `form:"in_stock" validate:"required"`
	ProductName      string  `form:"product_name" validate:"required"`
	ProductUnitPrice float64 `form:"product_unit_price" validate:"required,min=1"`
	Description      string  `form:"description" validate:"required"`
	ProductCategory  string  `form:"product_category" validate:"required"`
	AvailableColors  string  `form:"available_colors" validate:"required"`

	Brand       string `form:"brand"`
	Model       string `form:"model"`
	Battery     string `form:"battery"`
	Cameras     string `form:"cameras"`
	Processor   string `form:"processor"`
	Display     string `form:"display"`
	RAM         string `form:"ram"`
	IsAvailable bool   `form:"is_available"`
}

var productMessages = map[string]string{
	"in_stock.required":           "Product in Stock required!",
	"product_name.required":       "Product Name is required!",
	"product_unit_price.required": "Product Unit Price is required!",
	"product_unit_price.min":      "Unit Price must be a minimum of Kshs 1.00",
	"description.required":        "Product Description is required!",
	"product_category.required":   "Product Category is required!",
	"available_colors.required":   "Product Available Colors is required!",
}

// Validate checks the form fields plus the uploaded image. imageFilename is
// ignored when hasImage is false.
func (f *ProductForm) Validate(imageFilename string, hasImage bool) map[string][]string {
	errs := collect(validate.Struct(f), productMessages)
	if !hasImage {
		errs["product_image"] = append(errs["product_image"], "Product Image is required")
	} else if !ImageExtensionAllowed(imageFilename) {
		errs["product_image"] = append(errs["product_image"], "Product Image file type is not allowed")
	}
	return errs
}

// ProductUpdateForm validates product updates. Unit price arrives as free
// text here; the controller parses and range-checks it before persisting so
// the row invariant still holds.
type ProductUpdateForm struct {
	ProductID        string `form:"product_id" validate:"required"`
	ProductName      string `form:"product_name" validate:"required"`
	ProductUnitPrice string `form:"product_unit_price" validate:"required"`
	Description      string `form:"description" validate:"required"`
	ProductCategory  string `form:"product_category" validate:"required"`
	AvailableColors  string `form:"available_colors" validate:"required"`
	IsAvailable      bool   `form:"is_available"`
}

var productUpdateMessages = map[string]string{
	"product_id.required":         "Product ID is required!",
	"product_name.required":       "Product Name is required!",
	"product_unit_price.required": "Product Unit Price is required!",
	"description.required":        "Product Description is required!",
	"product_category.required":   "Product Category is required!",
	"available_colors.required":   "Product Available Colors is required!",
}

func (f *ProductUpdateForm) Validate() map[string][]string {
	return collect(validate.Struct(f), productUpdateMessages)
}
